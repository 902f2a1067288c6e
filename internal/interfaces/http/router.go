package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/infrastructure/config"
	"github.com/orris-inc/setracker/internal/interfaces/http/handlers"
	"github.com/orris-inc/setracker/internal/interfaces/http/middleware"
	"github.com/orris-inc/setracker/internal/interfaces/http/routes"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
	healthHandler *handlers.HealthHandler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(gdb, cfg, log)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		container.Shutdown()
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return &Router{
		Container:     container,
		healthHandler: handlers.NewHealthHandler(sqlDB, log),
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.Metrics(r.metrics))

	r.engine.GET("/health", r.healthHandler.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    r.hdlrs.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		ProjectHandler:    r.hdlrs.projectHandler,
		TechnologyHandler: r.hdlrs.technologyHandler,
		AuthMiddleware:    r.authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  r.hdlrs.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupReportRoutes(api, &routes.ReportRouteConfig{
		ReportHandler:  r.hdlrs.reportHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to shutdownTimeout.
func (r *Router) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         r.cfg.Server.GetAddr(),
		Handler:      r.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.log.Infow("server starting", "address", srv.Addr, "mode", gin.Mode())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	r.log.Infow("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
