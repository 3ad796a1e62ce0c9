package http

import (
	"context"
	"errors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
	"wordscan/internal/app/adapters/http/handlers"
	"wordscan/internal/app/adapters/http/middlewares"
	"wordscan/internal/app/infrastructure/config"
	"wordscan/internal/app/ports"
	"wordscan/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, registry ports.RegistryPort, stats ports.StatsPort) *Router {
	r := &Router{
		router:      gin.Default(),
		handlers:    handlers.New(log, manager, registry, stats),
		middlewares: middlewares.New(log),
		log:         log,
		manager:     manager,
	}
	cfg := manager.Get()

	// pprof и метрики доступны только при заданном токене
	if cfg.App.AuthToken != "" {
		pprofGroup := r.router.Group("/", gin.BasicAuth(gin.Accounts{
			"admin": cfg.App.AuthToken,
		}))
		pprof.Register(pprofGroup)

		r.router.GET("/metrics", gin.BasicAuth(gin.Accounts{
			"admin": cfg.App.AuthToken,
		}), gin.WrapH(promhttp.Handler()))
	} else {
		log.Warn("Auth token is empty, /metrics and pprof are disabled")
	}

	r.router.GET("/healthz", r.handlers.HealthHandler)

	v1 := r.router.Group("/v1",
		r.middlewares.Auth(cfg.App.AuthToken),
		r.middlewares.RateLimit(cfg.Server.Limiter.Requests, cfg.Server.Limiter.Per),
	)
	v1.GET("/dictionaries", r.handlers.DictionariesHandler)
	v1.POST("/scan/:dict", r.handlers.ScanHandler)

	// изменять словари можно только с токеном
	if cfg.App.AuthToken != "" {
		v1.PUT("/dictionaries/:dict", r.handlers.PutDictionaryHandler)
		v1.DELETE("/dictionaries/:dict", r.handlers.DeleteDictionaryHandler)
	}

	return r
}

func (r *Router) Handler() http.Handler {
	return r.router
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := r.newServer(r.manager.Get().Server.Addr, r.router)

	errCh := make(chan error, 1)
	go func() {
		r.log.Info("HTTP server started", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.log.Info("HTTP server stopping")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (r *Router) newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
}
