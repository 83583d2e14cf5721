package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/edp-greeting/internal/http/health"
	"github.com/janisto/edp-greeting/internal/http/v1/routes"
	"github.com/janisto/edp-greeting/internal/platform/config"
	applog "github.com/janisto/edp-greeting/internal/platform/logging"
	"github.com/janisto/edp-greeting/internal/platform/metrics"
	appmiddleware "github.com/janisto/edp-greeting/internal/platform/middleware"
	"github.com/janisto/edp-greeting/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const docsPath = "/api-docs"

func main() {
	defer func() {
		// Sync on stdout returns EINVAL on some platforms; nothing useful to do with it.
		_ = applog.Sync()
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		stop()
		_ = applog.Sync()
		os.Exit(1)
	}
	applog.LogInfo(context.Background(), "server exited")
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applog.SetLevel(cfg.LogLevel)

	handler, _ := newRouter(cfg, metrics.New(Version))
	srv := newHTTPServer(cfg.Addr(), handler)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}
	applog.LogInfo(ctx, "server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("version", Version),
		zap.Stringer("logLevel", cfg.LogLevel),
	)
	return serve(ctx, srv, ln, cfg.ShutdownTimeout)
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// serve runs srv on ln until ctx is cancelled, then drains in-flight requests
// for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	listenErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newRouter assembles the middleware stack, operational endpoints and the huma API.
func newRouter(cfg config.Config, m *metrics.Metrics) (http.Handler, huma.API) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.AllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For; only deploy behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		m.Middleware(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(Version))
	router.Method(http.MethodGet, "/metrics", m.Handler())

	humaCfg := huma.DefaultConfig("EDP Greeting API", Version)
	humaCfg.DocsPath = docsPath
	api := humachi.New(router, humaCfg)

	// Document CBOR variants of JSON bodies and problem responses, which the
	// server can negotiate through the registered CBOR format.
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if c, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = c
				}
				if c, ok := resp.Content["application/problem+json"]; ok {
					resp.Content["application/problem+cbor"] = c
				}
			}
		},
	)

	routes.Register(api)
	return router, api
}
