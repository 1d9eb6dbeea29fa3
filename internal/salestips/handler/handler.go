package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"starzcrm_backend/internal/salestips/service"
	"starzcrm_backend/internal/salestips/transport"
	"starzcrm_backend/platform/httpkit"
	"starzcrm_backend/platform/validator"
)

// Handler handles HTTP requests for sales tips.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid contact ID"
)

// New creates a new sales tips handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Generate returns tips for a lead described in the request body.
// POST /api/v1/sales-tips/generate
func (h *Handler) Generate(c *gin.Context) {
	var req transport.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Details(err))
		return
	}
	if httpkit.MustGetIdentity(c) == nil {
		return
	}

	result, err := h.svc.Generate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetForContact returns tips for a stored contact of the caller's organization.
// GET /api/v1/sales-tips/contacts/:id
func (h *Handler) GetForContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.ContactTipsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Details(err))
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	tenantID, ok := httpkit.MustGetTenantID(c, identity)
	if !ok {
		return
	}

	result, err := h.svc.GenerateForContact(c.Request.Context(), tenantID, id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Warm precomputes the default tips for a stored contact.
// POST /api/v1/sales-tips/contacts/:id/warm
func (h *Handler) Warm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	tenantID, ok := httpkit.MustGetTenantID(c, identity)
	if !ok {
		return
	}

	if err := h.svc.RequestWarm(c.Request.Context(), tenantID, id); httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusAccepted, gin.H{"status": "accepted"})
}

// Catalog lists every tip the engine can recommend.
// GET /api/v1/sales-tips/catalog
func (h *Handler) Catalog(c *gin.Context) {
	if httpkit.MustGetIdentity(c) == nil {
		return
	}
	httpkit.OK(c, h.svc.Catalog())
}

// RegisterRoutes mounts the sales tips routes on the protected group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, limit gin.HandlerFunc) {
	group := protected.Group("/sales-tips", limit)
	group.POST("/generate", h.Generate)
	group.GET("/contacts/:id", h.GetForContact)
	group.POST("/contacts/:id/warm", h.Warm)
	group.GET("/catalog", h.Catalog)
}
