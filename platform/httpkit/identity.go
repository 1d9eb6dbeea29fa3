// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated caller, extracted from the access token
// so handlers do not read gin context keys directly.
type Identity interface {
	UserID() uuid.UUID
	// TenantID is nil when the token carries no organization.
	TenantID() *uuid.UUID
	Roles() []string
	HasRole(role string) bool
	IsAuthenticated() bool
}

type identity struct {
	userID        uuid.UUID
	tenantID      *uuid.UUID
	roles         []string
	authenticated bool
}

func (i *identity) UserID() uuid.UUID {
	return i.userID
}

func (i *identity) TenantID() *uuid.UUID {
	return i.tenantID
}

func (i *identity) Roles() []string {
	return i.roles
}

func (i *identity) HasRole(role string) bool {
	return slices.Contains(i.roles, role)
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, userOK := c.Get(ContextUserIDKey)
	if !userOK {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	id := &identity{userID: uid, authenticated: true}
	if roles, ok := c.Get(ContextRolesKey); ok {
		id.roles, _ = roles.([]string)
	}
	if tenant, ok := c.Get(ContextTenantIDKey); ok {
		if tid, ok := tenant.(uuid.UUID); ok {
			id.tenantID = &tid
		}
	}
	return id
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the user is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return nil
	}
	return id
}

// MustGetTenantID returns the caller's organization, or writes 400 and false
// when the token has none.
func MustGetTenantID(c *gin.Context, id Identity) (uuid.UUID, bool) {
	tenantID := id.TenantID()
	if tenantID == nil {
		Error(c, http.StatusBadRequest, "tenant ID is required", nil)
		return uuid.UUID{}, false
	}
	return *tenantID, true
}
