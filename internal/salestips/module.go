// Package salestips provides the sales tip bounded context module.
// It scores leads and recommends call scripts for stored contacts and ad-hoc leads.
package salestips

import (
	apphttp "starzcrm_backend/internal/http"
	"starzcrm_backend/internal/salestips/cache"
	"starzcrm_backend/internal/salestips/engine"
	"starzcrm_backend/internal/salestips/handler"
	"starzcrm_backend/internal/salestips/repository"
	"starzcrm_backend/internal/salestips/service"
	"starzcrm_backend/platform/config"
	"starzcrm_backend/platform/logger"
	"starzcrm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the sales tips bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the sales tips module with all its dependencies.
// The engine's catalog must already be validated.
func NewModule(pool *pgxpool.Pool, eng *engine.Engine, c cache.Cache, val *validator.Validator, cfg config.PhoneConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(eng, repo, c, cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "salestips"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the contact repository.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts the sales tips routes on the protected group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected, ctx.RateLimiter.RateLimit())
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
