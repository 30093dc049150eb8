package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saywin/airport-api-service/internal/api/handler/v1/request"
	"github.com/saywin/airport-api-service/internal/api/handler/v1/response"
	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/pkg/jwthelper"
	"github.com/saywin/airport-api-service/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	signingKey []byte
	svc        AuthService
}

func NewAuthHandler(signingKey string, svc AuthService) AuthHandler {
	return AuthHandler{
		signingKey: []byte(signingKey),
		svc:        svc,
	}
}

// Signup registers a new user account.
//
//	@Summary		Register a new user
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.SignupRequest	true	"credentials"
//	@Success		201		{object}	domain.User
//	@Failure		400		{object}	response.Err
//	@Failure		409		{object}	response.Err
//	@Router			/api/v1/user/register [post]
func (h *AuthHandler) Signup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserEmailExists):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.Signup -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// Login exchanges credentials for a JWT.
//
//	@Summary		Log in
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.LoginRequest	true	"credentials"
//	@Success		200		{object}	response.LoginResponse
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Router			/api/v1/user/login [post]
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrWrongPassword):
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.Login -> %w", err)))
		}

		return
	}

	token, err := jwthelper.GenerateToken(h.signingKey, user.ID, ctx.Request.UserAgent())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("jwthelper.GenerateToken -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewLoginResponse(token, user))
}
