package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saywin/airport-api-service/internal/api/handler/v1/response"
	"github.com/saywin/airport-api-service/internal/api/middleware"
	"github.com/saywin/airport-api-service/internal/domain"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

var errNotAuthenticated = errors.New("authentication credentials were not provided")

// getUserFromContext resolves the authenticated caller. The policy
// middleware stores the loaded user; routes that only run VerifyJWT fall
// back to loading it by the verified user ID.
func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	if v, ok := ctx.Get(middleware.AuthUserKey); ok {
		if user, ok := v.(domain.User); ok {
			return user, nil
		}
	}

	id, ok := ctx.Get(middleware.UserIDKey)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errNotAuthenticated)
	}

	userID, _ := id.(uint)
	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrUnauthorized(fmt.Errorf("unknown user %v", userID))
	}

	return user, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}

	return uint(id), nil
}
