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

type FlightService interface {
	CreateFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	GetFlight(ctx context.Context, id uint) (service.FlightDetail, error)
	ListFlights(ctx context.Context) ([]service.FlightWithAvailability, error)
	UpdateFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	DeleteFlight(ctx context.Context, id uint) error
}

type FlightHandler struct {
	svc FlightService
}

func NewFlightHandler(svc FlightService) FlightHandler {
	return FlightHandler{
		svc: svc,
	}
}

// CreateFlight schedules a new flight.
//
//	@Summary		Create a flight
//	@Security		BearerToken
//	@Tags			flights
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.FlightRequest	true	"flight"
//	@Success		201		{object}	domain.Flight
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Router			/api/v1/airport/flights [post]
func (h *FlightHandler) CreateFlight(ctx *gin.Context) {
	var req request.FlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	flight, err := h.svc.CreateFlight(ctx.Request.Context(), flightFromRequest(0, req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRouteNotFound),
			errors.Is(err, service.ErrAirplaneNotFound),
			errors.Is(err, service.ErrCrewNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.CreateFlight -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusCreated, flight)
}

// ListFlights returns every flight with its remaining ticket count.
//
//	@Summary		List flights
//	@Security		BearerToken
//	@Tags			flights
//	@Produce		json
//	@Success		200	{array}		response.FlightList
//	@Failure		401	{object}	response.Err
//	@Router			/api/v1/airport/flights [get]
func (h *FlightHandler) ListFlights(ctx *gin.Context) {
	flights, err := h.svc.ListFlights(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.ListFlights -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewFlightLists(flights))
}

// GetFlight returns a single flight with its taken seats.
//
//	@Summary		Get a flight
//	@Security		BearerToken
//	@Tags			flights
//	@Produce		json
//	@Param			id	path		int	true	"flight ID"
//	@Success		200	{object}	response.FlightDetail
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/flights/{id} [get]
func (h *FlightHandler) GetFlight(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	flight, err := h.svc.GetFlight(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFlightNotFound):
			response.RenderErr(ctx, response.ErrNotFound("flight", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.GetFlight -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewFlightDetail(flight))
}

// UpdateFlight replaces a flight's schedule and assignments.
//
//	@Summary		Update a flight
//	@Security		BearerToken
//	@Tags			flights
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"flight ID"
//	@Param			request	body		request.FlightRequest	true	"flight"
//	@Success		200		{object}	domain.Flight
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Failure		404		{object}	response.Err
//	@Router			/api/v1/airport/flights/{id} [put]
func (h *FlightHandler) UpdateFlight(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.FlightRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	flight, err := h.svc.UpdateFlight(ctx.Request.Context(), flightFromRequest(id, req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFlightNotFound):
			response.RenderErr(ctx, response.ErrNotFound("flight", "id", id))
		case errors.Is(err, service.ErrRouteNotFound),
			errors.Is(err, service.ErrAirplaneNotFound),
			errors.Is(err, service.ErrCrewNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.UpdateFlight -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, flight)
}

// DeleteFlight removes a flight.
//
//	@Summary		Delete a flight
//	@Security		BearerToken
//	@Tags			flights
//	@Param			id	path	int	true	"flight ID"
//	@Success		204
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/flights/{id} [delete]
func (h *FlightHandler) DeleteFlight(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteFlight(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrFlightNotFound):
			response.RenderErr(ctx, response.ErrNotFound("flight", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.DeleteFlight -> %w", err)))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

func flightFromRequest(id uint, req request.FlightRequest) domain.Flight {
	crew := make([]domain.Crew, 0, len(req.Crew))
	for _, crewID := range req.Crew {
		crew = append(crew, domain.Crew{ID: crewID})
	}

	return domain.Flight{
		ID:            id,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		RouteID:       req.Route,
		AirplaneID:    req.Airplane,
		Crew:          crew,
	}
}
