package httpserver

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fastshop/internal/catalog"
	"fastshop/internal/checkout"
)

// Deps carries the wired collaborators for the router.
type Deps struct {
	Catalog *catalog.Catalog
	Session *checkout.Session
}

// buildRouter wires the storefront routes.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if deps.Session == nil {
		return nil, fmt.Errorf("session required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps))

	router.GET("/catalog", catalogHandler(deps.Catalog))

	sf := router.Group("/storefront")
	{
		sf.GET("", snapshotHandler(deps.Session))
		sf.POST("/selection", selectionHandler(deps.Session))
		sf.POST("/cart", addToCartHandler(deps.Session))
		sf.PUT("/cart/:key", updateCartHandler(deps.Session))
		sf.DELETE("/cart/:key", removeCartHandler(deps.Session))
		sf.PUT("/shipping", shippingHandler(deps.Session))
		sf.PUT("/payment", paymentHandler(deps.Session))
		sf.PUT("/customer", customerHandler(deps.Session))
		sf.POST("/order/submit", submitHandler(deps.Session))
		sf.POST("/order/confirm", confirmHandler(deps.Session))
		sf.POST("/order/cancel", cancelHandler(deps.Session))
		sf.POST("/order/review-panel", reviewPanelHandler(deps.Session))
		sf.POST("/clear", clearHandler(deps.Session))
	}

	return router, nil
}
