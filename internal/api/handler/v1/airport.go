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

type AirportService interface {
	CreateAirport(ctx context.Context, airport domain.Airport) (domain.Airport, error)
	GetAirport(ctx context.Context, id uint) (domain.Airport, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	UpdateAirport(ctx context.Context, airport domain.Airport) (domain.Airport, error)
	DeleteAirport(ctx context.Context, id uint) error
}

type AirportHandler struct {
	svc AirportService
}

func NewAirportHandler(svc AirportService) AirportHandler {
	return AirportHandler{
		svc: svc,
	}
}

// CreateAirport adds a new airport.
//
//	@Summary		Create an airport
//	@Security		BearerToken
//	@Tags			airports
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.AirportRequest	true	"airport"
//	@Success		201		{object}	domain.Airport
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Router			/api/v1/airport/airports [post]
func (h *AirportHandler) CreateAirport(ctx *gin.Context) {
	var req request.AirportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	airport, err := h.svc.CreateAirport(ctx.Request.Context(), domain.Airport{
		Name:           req.Name,
		ClosestBigCity: req.ClosestBigCity,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.CreateAirport -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, airport)
}

// ListAirports returns all airports.
//
//	@Summary		List airports
//	@Security		BearerToken
//	@Tags			airports
//	@Produce		json
//	@Success		200	{array}		domain.Airport
//	@Failure		401	{object}	response.Err
//	@Router			/api/v1/airport/airports [get]
func (h *AirportHandler) ListAirports(ctx *gin.Context) {
	airports, err := h.svc.ListAirports(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.ListAirports -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, airports)
}

// GetAirport returns a single airport by ID.
//
//	@Summary		Get an airport
//	@Security		BearerToken
//	@Tags			airports
//	@Produce		json
//	@Param			id	path		int	true	"airport ID"
//	@Success		200	{object}	domain.Airport
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/airports/{id} [get]
func (h *AirportHandler) GetAirport(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	airport, err := h.svc.GetAirport(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirportNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airport", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.GetAirport -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, airport)
}

// UpdateAirport replaces an airport's fields.
//
//	@Summary		Update an airport
//	@Security		BearerToken
//	@Tags			airports
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"airport ID"
//	@Param			request	body		request.AirportRequest	true	"airport"
//	@Success		200		{object}	domain.Airport
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Failure		404		{object}	response.Err
//	@Router			/api/v1/airport/airports/{id} [put]
func (h *AirportHandler) UpdateAirport(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.AirportRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	airport, err := h.svc.UpdateAirport(ctx.Request.Context(), domain.Airport{
		ID:             id,
		Name:           req.Name,
		ClosestBigCity: req.ClosestBigCity,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirportNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airport", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.UpdateAirport -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, airport)
}

// DeleteAirport removes an airport.
//
//	@Summary		Delete an airport
//	@Security		BearerToken
//	@Tags			airports
//	@Param			id	path	int	true	"airport ID"
//	@Success		204
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/airports/{id} [delete]
func (h *AirportHandler) DeleteAirport(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteAirport(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrAirportNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airport", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.DeleteAirport -> %w", err)))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}
