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
	"github.com/saywin/airport-api-service/internal/service"
)

type RouteService interface {
	CreateRoute(ctx context.Context, route domain.Route) (domain.Route, error)
	GetRoute(ctx context.Context, id uint) (domain.Route, error)
	ListRoutes(ctx context.Context, sourceIDs, destinationIDs []uint) ([]domain.Route, error)
	UpdateRoute(ctx context.Context, route domain.Route) (domain.Route, error)
	DeleteRoute(ctx context.Context, id uint) error
}

type RouteHandler struct {
	svc RouteService
}

func NewRouteHandler(svc RouteService) RouteHandler {
	return RouteHandler{
		svc: svc,
	}
}

// CreateRoute adds a new route between two airports.
//
//	@Summary		Create a route
//	@Security		BearerToken
//	@Tags			routes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.RouteRequest	true	"route"
//	@Success		201		{object}	domain.Route
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Router			/api/v1/airport/routes [post]
func (h *RouteHandler) CreateRoute(ctx *gin.Context) {
	var req request.RouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	route, err := h.svc.CreateRoute(ctx.Request.Context(), domain.Route{
		Distance:      req.Distance,
		SourceID:      req.Source,
		DestinationID: req.Destination,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirportNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.CreateRoute -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusCreated, route)
}

// ListRoutes returns routes, optionally filtered by source and
// destination airport IDs given as comma-separated lists.
//
//	@Summary		List routes
//	@Security		BearerToken
//	@Tags			routes
//	@Produce		json
//	@Param			source		query		string	false	"source airport IDs, e.g. 1,3"
//	@Param			destination	query		string	false	"destination airport IDs, e.g. 2,4"
//	@Success		200			{array}		response.RouteList
//	@Failure		401			{object}	response.Err
//	@Router			/api/v1/airport/routes [get]
func (h *RouteHandler) ListRoutes(ctx *gin.Context) {
	sourceIDs := request.GetIDList(ctx, "source")
	destinationIDs := request.GetIDList(ctx, "destination")

	routes, err := h.svc.ListRoutes(ctx.Request.Context(), sourceIDs, destinationIDs)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.ListRoutes -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewRouteLists(routes))
}

// GetRoute returns a single route by ID.
//
//	@Summary		Get a route
//	@Security		BearerToken
//	@Tags			routes
//	@Produce		json
//	@Param			id	path		int	true	"route ID"
//	@Success		200	{object}	domain.Route
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/routes/{id} [get]
func (h *RouteHandler) GetRoute(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	route, err := h.svc.GetRoute(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRouteNotFound):
			response.RenderErr(ctx, response.ErrNotFound("route", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.GetRoute -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, route)
}

// UpdateRoute replaces a route's fields.
//
//	@Summary		Update a route
//	@Security		BearerToken
//	@Tags			routes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"route ID"
//	@Param			request	body		request.RouteRequest	true	"route"
//	@Success		200		{object}	domain.Route
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Failure		404		{object}	response.Err
//	@Router			/api/v1/airport/routes/{id} [put]
func (h *RouteHandler) UpdateRoute(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.RouteRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	route, err := h.svc.UpdateRoute(ctx.Request.Context(), domain.Route{
		ID:            id,
		Distance:      req.Distance,
		SourceID:      req.Source,
		DestinationID: req.Destination,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRouteNotFound):
			response.RenderErr(ctx, response.ErrNotFound("route", "id", id))
		case errors.Is(err, service.ErrAirportNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.UpdateRoute -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, route)
}

// DeleteRoute removes a route.
//
//	@Summary		Delete a route
//	@Security		BearerToken
//	@Tags			routes
//	@Param			id	path	int	true	"route ID"
//	@Success		204
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/routes/{id} [delete]
func (h *RouteHandler) DeleteRoute(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteRoute(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrRouteNotFound):
			response.RenderErr(ctx, response.ErrNotFound("route", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.DeleteRoute -> %w", err)))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}
