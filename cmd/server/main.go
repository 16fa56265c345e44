package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"billsplit/internal/dispute/handler"
	disputemetrics "billsplit/internal/dispute/metrics"
	"billsplit/internal/dispute/service"
	"billsplit/internal/platform/config"
	"billsplit/internal/platform/httpserver"
	"billsplit/internal/platform/logger"
	"billsplit/internal/platform/metrics"
	"billsplit/internal/platform/middleware"
	"billsplit/pkg/platform/httputil"
	"billsplit/pkg/platform/middleware/requesttime"
	"billsplit/pkg/platform/pii"
)

// main wires dependencies, serves the HTTP API and shuts down on SIGINT or
// SIGTERM. Business logic lives in internal/dispute.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "billsplit: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Log)

	infra, err := buildInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer infra.Close()

	svc := service.New(infra.stores.Users, infra.stores.Ledger, infra.stores.History, infra.stores.Reports,
		service.WithLogger(log),
		service.WithTx(infra.tx),
		service.WithResolutionGuard(infra.guard),
		service.WithAuditPublisher(infra.audit),
		service.WithMetrics(disputemetrics.New()),
		service.WithPIIHasher(pii.NewHasher(cfg.PII.HashKey)),
	)

	router := newRouter(cfg, log, svc, infra.health)
	srv := httpserver.New(cfg.Server, router, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting billsplit", "addr", cfg.Server.Addr, "postgres", cfg.UsesPostgres())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func newRouter(cfg *config.Config, log *slog.Logger, svc handler.Service, checks []healthCheck) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.LatencyMiddleware(metrics.New()))

	handler.New(svc, log).Register(r)
	r.Get("/healthz", handleHealth(checks))
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// healthCheck probes one backing service.
type healthCheck struct {
	name  string
	check func(context.Context) error
}

func handleHealth(checks []healthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{}
		code := http.StatusOK
		for _, c := range checks {
			if err := c.check(r.Context()); err != nil {
				status[c.name] = "unavailable"
				code = http.StatusServiceUnavailable
				continue
			}
			status[c.name] = "ok"
		}
		httputil.WriteJSON(w, code, status)
	}
}
