package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ibeloyar/inscribe-dashboard/internal/config"
	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/internal/repository/mempool"
	"github.com/ibeloyar/inscribe-dashboard/internal/repository/ordinals"
	"github.com/ibeloyar/inscribe-dashboard/internal/repository/pg"
	"github.com/ibeloyar/inscribe-dashboard/internal/repository/price"
	"github.com/ibeloyar/inscribe-dashboard/internal/service"
	"github.com/ibeloyar/inscribe-dashboard/internal/worker"
	"github.com/ibeloyar/inscribe-dashboard/pgk/auth"
	"github.com/ibeloyar/inscribe-dashboard/pgk/logger"
	"github.com/ibeloyar/inscribe-dashboard/pgk/retryablehttp"

	httpController "github.com/ibeloyar/inscribe-dashboard/internal/controller/http"
)

const shutdownTimeout = 5 * time.Second

// Outgoing request budgets per upstream.
var (
	ordinalsLimit = retryablehttp.RetryConfig{RateLimit: rate.Limit(5), Burst: 5}
	mempoolLimit  = retryablehttp.RetryConfig{RateLimit: rate.Limit(10), Burst: 10}
	priceLimit    = retryablehttp.RetryConfig{RateLimit: rate.Every(2 * time.Second), Burst: 2, MaxRetries: 1}
)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := pg.New(ctx, cfg.DatabaseURI, lg)
	if err != nil {
		return err
	}

	network := cfg.NetworkName()

	ordinalsClient := ordinals.New(cfg.OrdinalsURL(), cfg.OrdinalsAPIKey, network,
		retryablehttp.NewRetryableClient(ordinalsLimit), lg)
	mempoolClient := mempool.New(cfg.MempoolURL(), network,
		retryablehttp.NewRetryableClient(mempoolLimit), lg)
	priceClient := price.New(cfg.PriceAPIURL, network,
		retryablehttp.NewRetryableClient(priceLimit), lg)

	s := service.New(storage, ordinalsClient, mempoolClient, priceClient, service.Config{
		Network:       network,
		TokenSecret:   cfg.SecretKey,
		TokenLifetime: cfg.TokenLifetime,
	}, lg)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(auth.OptionalBearerMiddlewareInit[model.TokenInfo](cfg.SecretKey))

	httpController.New(s, lg).InitRoutes(router)

	srv := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           gziphandler.GzipHandler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	poller := worker.NewPoller(ordinalsClient, storage, network, cfg.PollInterval, cfg.PollWorkers, lg)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		poller.Run(ctx)
	}()

	lg.Infof("starting %s dashboard on %s", network, cfg.RunAddress)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			lg.Errorf("server ListenAndServe error: %v", err)
		}
		stop()
	}
	lg.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown (server) error: %w", err)
	}

	wg.Wait()

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %w", err)
	}

	lg.Info("server shutdown success")
	return nil
}
