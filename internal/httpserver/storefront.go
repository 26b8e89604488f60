package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fastshop/internal/catalog"
	"fastshop/internal/checkout"
	"fastshop/internal/domain"
)

type selectionRequest struct {
	TemplateID string  `json:"templateId" binding:"required"`
	Size       *string `json:"size"`
	Color      *string `json:"color"`
	Quantity   *int    `json:"quantity"`
}

type addToCartRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type shippingRequest struct {
	Tier string `json:"tier" binding:"required"`
}

type paymentRequest struct {
	Method string `json:"method" binding:"required"`
}

type customerFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func catalogHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"templates": cat.Templates()})
	}
}

func snapshotHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func selectionHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Size != nil {
			if err := session.SelectSize(req.TemplateID, *req.Size); err != nil {
				renderError(c, err)
				return
			}
		}
		if req.Color != nil {
			if err := session.SelectColor(req.TemplateID, *req.Color); err != nil {
				renderError(c, err)
				return
			}
		}
		if req.Quantity != nil {
			if err := session.SetQuantity(req.TemplateID, *req.Quantity); err != nil {
				renderError(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func addToCartHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := session.AddToCart(req.TemplateID); err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func updateCartHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		session.UpdateCartQuantity(c.Param("key"), *req.Quantity)
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func removeCartHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.RemoveFromCart(c.Param("key"))
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func shippingHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req shippingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := session.SetShippingTier(domain.ShippingTier(req.Tier)); err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func paymentHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req paymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := session.SetPaymentMethod(domain.PaymentMethod(req.Method)); err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func customerHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customerFieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := session.SetCustomerField(req.Field, req.Value); err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func submitHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.Submit(); err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func confirmHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := session.Confirm()
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order, "snapshot": session.Snapshot()})
	}
}

func cancelHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.Cancel(); err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func reviewPanelHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.ToggleReviewPanel()
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

func clearHandler(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.ClearAll()
		c.JSON(http.StatusOK, session.Snapshot())
	}
}

// renderError maps domain failures onto HTTP statuses: missing entities are
// 404, workflow misuse is 409, everything else is a recoverable validation
// failure reported as 422.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		body := gin.H{"error": err.Error()}
		var set *domain.ValidationErrors
		if errors.As(err, &set) {
			details := make([]string, 0, len(set.Errs))
			for _, e := range set.Errs {
				details = append(details, e.Error())
			}
			body["details"] = details
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	}
}
