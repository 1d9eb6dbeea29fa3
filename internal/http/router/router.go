// Package router builds the gin engine from the composed application.
package router

import (
	"context"
	"net/http"
	"time"

	apphttp "starzcrm_backend/internal/http"
	"starzcrm_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const readyTimeout = 2 * time.Second

// New creates the gin engine with shared middleware, health endpoints and
// every module's routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(app.Config)))

	engine.GET("/api/health", func(c *gin.Context) {
		httpkit.OK(c, gin.H{"status": "ok"})
	})
	engine.GET("/api/ready", func(c *gin.Context) {
		if app.Health == nil {
			httpkit.OK(c, gin.H{"status": "ready"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := app.Health.Ping(ctx); err != nil {
			app.Logger.WithContext(ctx).Warn("readiness check failed", "error", err)
			httpkit.Error(c, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		httpkit.OK(c, gin.H{"status": "ready"})
	})

	v1 := engine.Group("/api/v1")
	rc := &apphttp.RouterContext{
		Engine:      engine,
		V1:          v1,
		Protected:   v1.Group("", httpkit.AuthRequired(app.Config)),
		Config:      app.Config,
		RateLimiter: httpkit.NewIPRateLimiterFromConfig(app.Config, app.Logger),
	}

	for _, m := range app.Modules {
		m.RegisterRoutes(rc)
		app.Logger.Info("module routes registered", "module", m.Name())
	}

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", httpkit.HeaderRequestID},
		ExposeHeaders:    []string{httpkit.HeaderRequestID},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = cfg.GetCORSOrigins()
	}
	return c
}
