package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saywin/airport-api-service/internal/access"
	"github.com/saywin/airport-api-service/internal/api/middleware"
	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/pkg/jwthelper"
	"github.com/saywin/airport-api-service/internal/repository"
)

const testSigningKey = "test-signing-key"

type fakeUserGetter struct {
	users map[uint]domain.User
}

func (f *fakeUserGetter) GetUser(_ context.Context, id uint) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func newProtectedRouter(t *testing.T, policy access.Policy) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &fakeUserGetter{users: map[uint]domain.User{
		1: {ID: 1, Email: "admin@example.com", IsStaff: true},
		2: {ID: 2, Email: "user@example.com"},
	}}

	router := gin.New()
	group := router.Group(
		"/things",
		middleware.NewAuthenticator(testSigningKey).VerifyJWT(),
		middleware.NewPolicyEnforcer(users).Enforce(policy),
	)
	group.GET("", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	group.POST("", func(ctx *gin.Context) { ctx.Status(http.StatusCreated) })

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method string, userID uint) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, "/things", nil)
	req.Header.Set("User-Agent", "test-agent")

	if userID != 0 {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), userID, "test-agent")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	return resp
}

func TestPolicyEnforcer_AdminWrite(t *testing.T) {
	router := newProtectedRouter(t, access.AdminWrite)

	t.Run("anonymous request gets 401", func(t *testing.T) {
		resp := doRequest(t, router, http.MethodGet, 0)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("authenticated user may read", func(t *testing.T) {
		resp := doRequest(t, router, http.MethodGet, 2)

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("non-staff write gets 403, not 401", func(t *testing.T) {
		resp := doRequest(t, router, http.MethodPost, 2)

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("staff may write", func(t *testing.T) {
		resp := doRequest(t, router, http.MethodPost, 1)

		assert.Equal(t, http.StatusCreated, resp.Code)
	})
}

func TestPolicyEnforcer_OwnerScoped(t *testing.T) {
	router := newProtectedRouter(t, access.OwnerScoped)

	t.Run("any authenticated user may write", func(t *testing.T) {
		resp := doRequest(t, router, http.MethodPost, 2)

		assert.Equal(t, http.StatusCreated, resp.Code)
	})

	t.Run("anonymous request gets 401", func(t *testing.T) {
		resp := doRequest(t, router, http.MethodPost, 0)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestAuthenticator_VerifyJWT(t *testing.T) {
	router := newProtectedRouter(t, access.AdminWrite)

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/things", nil)
		req.Header.Set("Authorization", "not-a-bearer-token")

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("token issued to a different client", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 1, "other-agent")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/things", nil)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("Authorization", "Bearer "+token)

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte("wrong-key"), 1, "test-agent")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/things", nil)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("Authorization", "Bearer "+token)

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}
