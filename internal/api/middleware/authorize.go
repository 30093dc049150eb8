package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saywin/airport-api-service/internal/access"
	"github.com/saywin/airport-api-service/internal/api/handler/v1/response"
	"github.com/saywin/airport-api-service/internal/domain"
)

// AuthUserKey is the gin context key the loaded caller is stored under
// once a policy check has passed.
const AuthUserKey = "authUser"

var errInsufficientRole = errors.New("you do not have permission to perform this action")

type UserGetter interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// PolicyEnforcer turns an access.Policy into a gin middleware. It runs
// after VerifyJWT: the caller identity is built from the verified user ID
// and the policy is dispatched through access.Allowed.
type PolicyEnforcer struct {
	users UserGetter
}

func NewPolicyEnforcer(users UserGetter) *PolicyEnforcer {
	return &PolicyEnforcer{
		users: users,
	}
}

func (e *PolicyEnforcer) Enforce(policy access.Policy) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		caller := access.Caller{}
		var user domain.User

		if id, ok := ctx.Get(UserIDKey); ok {
			userID, _ := id.(uint)

			var err error
			user, err = e.users.GetUser(ctx.Request.Context(), userID)
			if err != nil {
				response.RenderErr(ctx, response.ErrUnauthorized(fmt.Errorf("unknown user %v", userID)))
				return
			}

			caller = access.Caller{
				ID:            user.ID,
				Authenticated: true,
				IsStaff:       user.IsStaff,
			}
		}

		write := isWrite(ctx.Request.Method)
		switch access.Allowed(policy, caller, write) {
		case access.Allow:
			if caller.Authenticated {
				ctx.Set(AuthUserKey, user)
			}
			ctx.Next()
		case access.DenyUnauthorized:
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
		default:
			response.RenderErr(ctx, response.ErrPermissionDenied(errInsufficientRole))
		}
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
