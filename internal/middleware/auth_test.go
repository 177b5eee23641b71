package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chemoward-backend/internal/rbac"
	"chemoward-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(perm rbac.Permission) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), RequirePermission(perm), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingTokenRejected(t *testing.T) {
	r := newTestRouter(rbac.PermViewPatients)
	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMalformedHeaderRejected(t *testing.T) {
	r := newTestRouter(rbac.PermViewPatients)

	for _, header := range []string{"sometoken", "Basic abc123", "Bearer"} {
		w := doRequest(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	r := newTestRouter(rbac.PermViewPatients)
	w := doRequest(r, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidTokenPasses(t *testing.T) {
	token, err := utils.GenerateToken(42, "nurse")
	require.NoError(t, err)

	r := newTestRouter(rbac.PermViewPatients)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInsufficientRoleGets403(t *testing.T) {
	token, err := utils.GenerateToken(42, "nurse")
	require.NoError(t, err)

	// nurses cannot manage users
	r := newTestRouter(rbac.PermManageUsers)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUnknownRoleInTokenFailsClosed(t *testing.T) {
	token, err := utils.GenerateToken(42, "superadmin")
	require.NoError(t, err)

	r := newTestRouter(rbac.PermViewPatients)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestContextCarriesIdentity(t *testing.T) {
	token, err := utils.GenerateToken(7, "doctor")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(), func(c *gin.Context) {
		userID := c.GetUint64("userID")
		role := c.MustGet("role").(rbac.Role)
		assert.Equal(t, uint64(7), userID)
		assert.Equal(t, rbac.RoleDoctor, role)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
