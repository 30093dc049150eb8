package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/saywin/airport-api-service/internal/api/handler/v1"
	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/service"
)

type stubAuthService struct {
	signupErr error
	loginErr  error
	lastUser  domain.User
}

func (s *stubAuthService) Signup(_ context.Context, user domain.User) (domain.User, error) {
	if s.signupErr != nil {
		return domain.User{}, s.signupErr
	}

	s.lastUser = user
	user.ID = 1
	user.Password = ""

	return user, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (domain.User, error) {
	if s.loginErr != nil {
		return domain.User{}, s.loginErr
	}

	return domain.User{ID: 1, Email: email}, nil
}

func newAuthRouter(t *testing.T, svc *stubAuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := v1.NewAuthHandler("test-signing-key", svc)

	router := gin.New()
	router.POST("/user/register", handler.Signup)
	router.POST("/user/login", handler.Login)

	return router
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("valid registration", func(t *testing.T) {
		svc := &stubAuthService{}
		router := newAuthRouter(t, svc)

		body := `{
			"email": "user@example.com",
			"password": "password1",
			"confirm_password": "password1",
			"first_name": "Jane",
			"last_name": "Doe"
		}`
		req := httptest.NewRequest(http.MethodPost, "/user/register", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.Equal(t, "user@example.com", svc.lastUser.Email)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		router := newAuthRouter(t, &stubAuthService{})

		body := `{
			"email": "user@example.com",
			"password": "short1",
			"confirm_password": "short1"
		}`
		req := httptest.NewRequest(http.MethodPost, "/user/register", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("mismatched confirmation is rejected", func(t *testing.T) {
		router := newAuthRouter(t, &stubAuthService{})

		body := `{
			"email": "user@example.com",
			"password": "password1",
			"confirm_password": "password2"
		}`
		req := httptest.NewRequest(http.MethodPost, "/user/register", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		router := newAuthRouter(t, &stubAuthService{signupErr: service.ErrUserEmailExists})

		body := `{
			"email": "user@example.com",
			"password": "password1",
			"confirm_password": "password1"
		}`
		req := httptest.NewRequest(http.MethodPost, "/user/register", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusConflict, resp.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns a usable token", func(t *testing.T) {
		router := newAuthRouter(t, &stubAuthService{})

		body := `{"email": "user@example.com", "password": "password1"}`
		req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var got struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.NotEmpty(t, got.Token)
		assert.Equal(t, "user@example.com", got.User.Email)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		for _, svcErr := range []error{service.ErrWrongPassword, service.ErrUserNotFound} {
			router := newAuthRouter(t, &stubAuthService{loginErr: svcErr})

			body := `{"email": "user@example.com", "password": "password1"}`
			req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body))
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusUnauthorized, resp.Code)
		}
	})
}
