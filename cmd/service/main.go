package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "rolloff/internal/app"
	"rolloff/internal/handlers/rest/dumpster_assign_post"
	"rolloff/internal/handlers/rest/dumpster_post"
	"rolloff/internal/handlers/rest/dumpster_put"
	"rolloff/internal/handlers/rest/dumpster_unassign_post"
	"rolloff/internal/handlers/rest/dumpsters_get"
	"rolloff/internal/handlers/rest/healthcheck_head"
	"rolloff/internal/handlers/rest/order_delete"
	"rolloff/internal/handlers/rest/order_get"
	"rolloff/internal/handlers/rest/order_payment_get"
	"rolloff/internal/handlers/rest/order_put"
	"rolloff/internal/handlers/rest/order_status_post"
	"rolloff/internal/handlers/rest/orders_get"
	"rolloff/internal/handlers/rest/payment_cancel_post"
	"rolloff/internal/handlers/rest/payment_delete"
	"rolloff/internal/handlers/rest/payment_post"
	"rolloff/internal/handlers/rest/payment_refresh_post"
	"rolloff/internal/handlers/rest/payment_send_post"
	"rolloff/internal/handlers/rest/ping_get"
	"rolloff/internal/handlers/rest/quote_post"
	"rolloff/internal/handlers/rest/quote_promote_post"
	"rolloff/internal/handlers/rest/quote_put"
	"rolloff/internal/handlers/rest/quotes_get"
	"rolloff/internal/pkg/config"
	"rolloff/internal/pkg/dotenv"
	metrics_system "rolloff/internal/pkg/metrics"
	"rolloff/internal/pkg/middlewares/graceful_shutdown"
	"rolloff/internal/pkg/middlewares/metrics"
	"rolloff/internal/pkg/middlewares/rate_limiter"
	"rolloff/internal/pkg/middlewares/timeout"
	"rolloff/internal/pkg/postgres"
	"rolloff/pkg/logger"
	"rolloff/pkg/logger/zap_adapter"
	"rolloff/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting rolloff admin service")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown paths intentionally derive from context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(&cfg.Database); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM. It is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// main http server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// main http server

	// pprof http server
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http server

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, so the case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent of ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/quote", quote_post.New(log, app.ServiceQuote)).Methods("POST")
	router.Handle("/quote", quote_put.New(log, app.ServiceQuote)).Methods("PUT")
	router.Handle("/quotes", quotes_get.New(log, app.ServiceQuote)).Methods("GET")
	router.Handle("/quote/promote", quote_promote_post.New(log, app.ServiceQuote)).Methods("POST")

	router.Handle("/order/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/order", order_put.New(log, app.ServiceOrder)).Methods("PUT")
	router.Handle("/order/status", order_status_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/order/{id}", order_delete.New(log, app.ServiceOrder)).Methods("DELETE")

	router.Handle("/dumpster", dumpster_post.New(log, app.ServiceDumpster)).Methods("POST")
	router.Handle("/dumpster", dumpster_put.New(log, app.ServiceDumpster)).Methods("PUT")
	router.Handle("/dumpsters", dumpsters_get.New(log, app.ServiceDumpster, app.ServiceAssignment)).Methods("GET")
	router.Handle("/dumpster/assign", dumpster_assign_post.New(log, app.ServiceAssignment)).Methods("POST")
	router.Handle("/dumpster/unassign", dumpster_unassign_post.New(log, app.ServiceAssignment)).Methods("POST")

	router.Handle("/payment", payment_post.New(log, app.ServicePayment, cfg.Invoicing.DefaultDue)).Methods("POST")
	router.Handle("/payment/send", payment_send_post.New(log, app.ServicePayment)).Methods("POST")
	router.Handle("/payment/refresh", payment_refresh_post.New(log, app.ServicePayment)).Methods("POST")
	router.Handle("/payment/cancel", payment_cancel_post.New(log, app.ServicePayment)).Methods("POST")
	router.Handle("/payment/{id}", payment_delete.New(log, app.ServicePayment)).Methods("DELETE")
	router.Handle("/order/{id}/payment", order_payment_get.New(log, app.ServicePayment)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
