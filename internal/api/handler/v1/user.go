package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saywin/airport-api-service/internal/api/handler/v1/response"
)

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) UserHandler {
	return UserHandler{
		svc: svc,
	}
}

// Me returns the profile of the authenticated user.
//
//	@Summary		Get the current user
//	@Security		BearerToken
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	domain.User
//	@Failure		401	{object}	response.Err
//	@Router			/api/v1/user/me [get]
func (h *UserHandler) Me(ctx *gin.Context) {
	user, renderErr := getUserFromContext(ctx, h.svc)
	if renderErr != nil {
		response.RenderErr(ctx, renderErr)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
