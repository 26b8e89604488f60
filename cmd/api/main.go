package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fastshop/internal/catalog"
	"fastshop/internal/checkout"
	"fastshop/internal/config"
	"fastshop/internal/httpserver"
	"fastshop/internal/pricing"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cat := catalog.Default()
	table := pricing.DefaultTable()
	if cfg.CatalogPath != "" {
		loaded, shipping, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			logger.Fatalf("load catalog: %v", err)
		}
		cat = loaded
		if len(shipping) > 0 {
			table, err = pricing.NewTable(shipping)
			if err != nil {
				logger.Fatalf("load shipping table: %v", err)
			}
		}
		logger.Printf("loaded %d template(s) from %s", cat.Len(), cfg.CatalogPath)
	}

	session, err := checkout.NewSession(cat, table, &checkout.LogNotifier{Logger: logger})
	if err != nil {
		logger.Fatalf("init session: %v", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog: cat,
		Session: session,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
