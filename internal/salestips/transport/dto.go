package transport

import (
	"time"

	"github.com/google/uuid"

	"starzcrm_backend/internal/salestips/domain"
)

// GenerateRequest describes an ad-hoc lead that is not stored as a contact.
type GenerateRequest struct {
	Company       string              `json:"company" validate:"max=200"`
	Notes         string              `json:"notes" validate:"max=5000"`
	Position      string              `json:"position" validate:"max=200"`
	LeadSource    string              `json:"leadSource" validate:"max=50"`
	Budget        int64               `json:"budget" validate:"min=0"`
	LeadAgeHours  *float64            `json:"leadAgeHours,omitempty" validate:"omitempty,min=0"`
	CurrentAction string              `json:"currentAction,omitempty" validate:"max=50"`
	CallContext   *domain.CallContext `json:"callContext,omitempty"`
	ContactName   string              `json:"contactName,omitempty" validate:"max=200"`
	RepName       string              `json:"repName,omitempty" validate:"max=200"`
	Personalize   bool                `json:"personalize"`
}

// ContactTipsRequest holds the query parameters for tips on a stored contact.
type ContactTipsRequest struct {
	Action      string `form:"action" validate:"max=50"`
	Personalize bool   `form:"personalize"`
	RepName     string `form:"repName" validate:"max=200"`
}

// ContactSummary identifies the contact the tips were generated for.
type ContactSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Company    string    `json:"company"`
	Phone      string    `json:"phone,omitempty"`
	City       string    `json:"city,omitempty"`
	LeadSource string    `json:"leadSource,omitempty"`
	CreatedAt  string    `json:"createdAt"`
}

// GenerateResponse is the engine result plus request metadata.
type GenerateResponse struct {
	domain.Result
	Contact     *ContactSummary `json:"contact,omitempty"`
	Cached      bool            `json:"cached"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// CatalogItem is a tip as listed for dashboard filters.
type CatalogItem struct {
	ID             string             `json:"id"`
	Category       domain.TipCategory `json:"category"`
	Priority       domain.Priority    `json:"priority"`
	Title          string             `json:"title"`
	Industry       domain.Industry    `json:"industry,omitempty"`
	LeadSource     domain.LeadSource  `json:"leadSource,omitempty"`
	Confidence     int                `json:"confidence"`
	ExpectedImpact domain.Impact      `json:"expectedImpact"`
}

// CatalogResponse wraps the full tip catalog.
type CatalogResponse struct {
	Items []CatalogItem `json:"items"`
	Total int           `json:"total"`
}
