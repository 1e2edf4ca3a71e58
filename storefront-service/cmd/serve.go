package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/mycogrow/pkg/logger"
	"github.com/fjod/mycogrow/storefront-service/internal/carousel"
	"github.com/fjod/mycogrow/storefront-service/internal/catalog"
	"github.com/fjod/mycogrow/storefront-service/internal/config"
	h "github.com/fjod/mycogrow/storefront-service/internal/http"
	"github.com/fjod/mycogrow/storefront-service/internal/money"
	"github.com/fjod/mycogrow/storefront-service/internal/service"
	"github.com/fjod/mycogrow/storefront-service/internal/store"
	"github.com/fjod/mycogrow/storefront-service/internal/view"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func newServeCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the storefront session over a local JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if *verbose {
				cfg.LogLevel = "debug"
			}

			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	clock := clockwork.NewRealClock()
	cat := catalog.Default()
	cart := store.NewMemoryCartStore(cat)

	testimonials, err := carousel.New(cat.Testimonials(),
		carousel.WithClock(clock),
		carousel.WithInterval(cfg.CarouselInterval),
		carousel.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("create carousel: %w", err)
	}
	if err := testimonials.Start(ctx); err != nil {
		return fmt.Errorf("start carousel: %w", err)
	}
	defer testimonials.Stop()

	handler := h.NewHandler(h.Deps{
		Products: cat,
		Cart:     cart,
		Carousel: testimonials,
		Checkout: service.NewCheckoutService(cart, clock, log),
		View:     view.NewState(),
		Money:    money.NewFormatter(cfg.LanguageTag()),
		Log:      log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(handler.Routes(cfg.RequestTimeout), "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("storefront listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down storefront")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("storefront stopped")
	return nil
}

