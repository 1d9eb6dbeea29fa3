package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Contact is the subset of a CRM contact the tip engine reads.
type Contact struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	FirstName      string
	LastName       string
	Company        string
	Position       string
	Notes          string
	LeadSource     string
	Budget         int64
	Phone          string
	City           string
	CreatedAt      time.Time
}

// Cursor is a keyset position over (created_at, id). The zero value starts
// at the beginning.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// After returns the cursor positioned on c.
func (c Contact) After() Cursor {
	return Cursor{CreatedAt: c.CreatedAt, ID: c.ID}
}

// ContactReader loads a single contact scoped to its organization.
type ContactReader interface {
	GetContact(ctx context.Context, organizationID, id uuid.UUID) (Contact, error)
}

// ContactLister pages through recently created contacts across organizations.
type ContactLister interface {
	ListRecentContacts(ctx context.Context, since time.Time, after Cursor, limit int) ([]Contact, error)
}

// Repository combines all contact read operations.
type Repository interface {
	ContactReader
	ContactLister
}
