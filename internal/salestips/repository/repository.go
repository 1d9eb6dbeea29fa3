package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"starzcrm_backend/platform/apperr"
)

const contactNotFoundMessage = "contact not found"

const contactColumns = `
		id, organization_id,
		COALESCE(first_name, ''), COALESCE(last_name, ''),
		COALESCE(company, ''), COALESCE(position, ''), COALESCE(notes, ''),
		COALESCE(lead_source, ''), COALESCE(budget, 0),
		COALESCE(phone, ''), COALESCE(city, ''),
		created_at`

// querier is the part of pgxpool.Pool the repository needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo implements Repository with PostgreSQL.
type Repo struct {
	pool querier
}

// New creates a new contacts repository. pool is usually a *pgxpool.Pool.
func New(pool querier) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetContact retrieves a contact by ID within an organization.
func (r *Repo) GetContact(ctx context.Context, organizationID, id uuid.UUID) (Contact, error) {
	query := `
		SELECT` + contactColumns + `
		FROM contacts
		WHERE id = $1 AND organization_id = $2 AND deleted_at IS NULL`

	c, err := scanContact(r.pool.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Contact{}, apperr.NotFound(contactNotFoundMessage)
		}
		return Contact{}, fmt.Errorf("get contact by id: %w", err)
	}
	return c, nil
}

// ListRecentContacts returns up to limit contacts created at or after since,
// ordered by (created_at, id) and strictly after the cursor.
func (r *Repo) ListRecentContacts(ctx context.Context, since time.Time, after Cursor, limit int) ([]Contact, error) {
	from := after.CreatedAt
	if from.Before(since) {
		from = since
		after.ID = uuid.Nil
	}

	query := `
		SELECT` + contactColumns + `
		FROM contacts
		WHERE deleted_at IS NULL
		  AND (created_at > $1 OR (created_at = $1 AND id > $2))
		ORDER BY created_at ASC, id ASC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, after.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]Contact, 0, limit)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recent contacts: %w", err)
	}
	return contacts, nil
}

func scanContact(row pgx.Row) (Contact, error) {
	var c Contact
	err := row.Scan(
		&c.ID, &c.OrganizationID,
		&c.FirstName, &c.LastName,
		&c.Company, &c.Position, &c.Notes,
		&c.LeadSource, &c.Budget,
		&c.Phone, &c.City,
		&c.CreatedAt,
	)
	return c, err
}
