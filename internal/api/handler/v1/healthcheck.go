package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck responds with a plain 200 so load balancers can probe the
// service.
//
//	@Summary		Check server status
//	@Tags			healthcheck
//	@Success		200
//	@Router			/ [get]
func HealthCheck(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}
