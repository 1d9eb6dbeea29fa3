package httpkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starzcrm_backend/platform/apperr"
)

const secret = "secret"

type jwtConfig struct{}

func (jwtConfig) GetJWTAccessSecret() string { return secret }

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func accessClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   uuid.NewString(),
		"type":  "access",
		"roles": []string{"sales"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func identityRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthRequired(jwtConfig{}), func(c *gin.Context) {
		id := MustGetIdentity(c)
		if id == nil {
			return
		}
		tenantID, ok := MustGetTenantID(c, id)
		if !ok {
			return
		}
		OK(c, gin.H{"tenant": tenantID.String(), "sales": id.HasRole("sales")})
	})
	return r
}

func get(r *gin.Engine, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredAcceptsAccessToken(t *testing.T) {
	tenantID := uuid.New()
	claims := accessClaims()
	claims["tenant_id"] = tenantID.String()

	w := get(identityRouter(), sign(t, claims))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, tenantID.String(), body["tenant"])
	assert.Equal(t, true, body["sales"])
}

func TestAuthRequiredRejectsBadTokens(t *testing.T) {
	r := identityRouter()

	refresh := accessClaims()
	refresh["type"] = "refresh"
	expired := accessClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()
	badTenant := accessClaims()
	badTenant["tenant_id"] = "acme"
	badSubject := accessClaims()
	badSubject["sub"] = "42"

	cases := map[string]string{
		"missing":     "",
		"garbage":     "not-a-jwt",
		"refresh":     sign(t, refresh),
		"expired":     sign(t, expired),
		"bad tenant":  sign(t, badTenant),
		"bad subject": sign(t, badSubject),
	}
	for name, bearer := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, get(r, bearer).Code)
		})
	}
}

func TestMustGetTenantIDRequiresTenant(t *testing.T) {
	w := get(identityRouter(), sign(t, accessClaims()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tenant ID is required")
}

func TestHandleError(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperr.NotFound("contact not found"), http.StatusNotFound, "contact not found"},
		{fmt.Errorf("load: %w", apperr.Validation("budget must not be negative")), http.StatusBadRequest, "budget must not be negative"},
		{apperr.Wrap(apperr.KindInternal, "failed to load contact", errors.New("dial tcp")), http.StatusInternalServerError, "Internal Server Error"},
		{errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		assert.True(t, HandleError(c, tc.err))
		assert.Equal(t, tc.status, w.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.message, body.Error)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, HandleError(c, nil))
}

func TestRateLimiterIsPerIP(t *testing.T) {
	limiter := NewIPRateLimiter(0, 1, nil)
	r := gin.New()
	r.GET("/", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2"))
}
