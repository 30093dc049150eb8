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

type AirplaneService interface {
	CreateAirplaneType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	GetAirplaneType(ctx context.Context, id uint) (domain.AirplaneType, error)
	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)
	UpdateAirplaneType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	DeleteAirplaneType(ctx context.Context, id uint) error

	CreateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	GetAirplane(ctx context.Context, id uint) (domain.Airplane, error)
	ListAirplanes(ctx context.Context, typeIDs []uint) ([]domain.Airplane, error)
	UpdateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	DeleteAirplane(ctx context.Context, id uint) error
}

type AirplaneHandler struct {
	svc AirplaneService
}

func NewAirplaneHandler(svc AirplaneService) AirplaneHandler {
	return AirplaneHandler{
		svc: svc,
	}
}

// CreateAirplaneType adds a new airplane type.
//
//	@Summary		Create an airplane type
//	@Security		BearerToken
//	@Tags			airplanes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.AirplaneTypeRequest	true	"airplane type"
//	@Success		201		{object}	domain.AirplaneType
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Router			/api/v1/airport/airplane-types [post]
func (h *AirplaneHandler) CreateAirplaneType(ctx *gin.Context) {
	var req request.AirplaneTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	airplaneType, err := h.svc.CreateAirplaneType(ctx.Request.Context(), domain.AirplaneType{
		Name: req.Name,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.CreateAirplaneType -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, airplaneType)
}

// ListAirplaneTypes returns all airplane types.
//
//	@Summary		List airplane types
//	@Security		BearerToken
//	@Tags			airplanes
//	@Produce		json
//	@Success		200	{array}		domain.AirplaneType
//	@Failure		401	{object}	response.Err
//	@Router			/api/v1/airport/airplane-types [get]
func (h *AirplaneHandler) ListAirplaneTypes(ctx *gin.Context) {
	airplaneTypes, err := h.svc.ListAirplaneTypes(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.ListAirplaneTypes -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, airplaneTypes)
}

// GetAirplaneType returns a single airplane type by ID.
//
//	@Summary		Get an airplane type
//	@Security		BearerToken
//	@Tags			airplanes
//	@Produce		json
//	@Param			id	path		int	true	"airplane type ID"
//	@Success		200	{object}	domain.AirplaneType
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/airplane-types/{id} [get]
func (h *AirplaneHandler) GetAirplaneType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	airplaneType, err := h.svc.GetAirplaneType(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirplaneTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airplane type", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.GetAirplaneType -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, airplaneType)
}

// UpdateAirplaneType replaces an airplane type's fields.
//
//	@Summary		Update an airplane type
//	@Security		BearerToken
//	@Tags			airplanes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"airplane type ID"
//	@Param			request	body		request.AirplaneTypeRequest	true	"airplane type"
//	@Success		200		{object}	domain.AirplaneType
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Failure		404		{object}	response.Err
//	@Router			/api/v1/airport/airplane-types/{id} [put]
func (h *AirplaneHandler) UpdateAirplaneType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.AirplaneTypeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	airplaneType, err := h.svc.UpdateAirplaneType(ctx.Request.Context(), domain.AirplaneType{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirplaneTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airplane type", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.UpdateAirplaneType -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, airplaneType)
}

// DeleteAirplaneType removes an airplane type.
//
//	@Summary		Delete an airplane type
//	@Security		BearerToken
//	@Tags			airplanes
//	@Param			id	path	int	true	"airplane type ID"
//	@Success		204
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/airplane-types/{id} [delete]
func (h *AirplaneHandler) DeleteAirplaneType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteAirplaneType(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrAirplaneTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airplane type", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.DeleteAirplaneType -> %w", err)))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateAirplane adds a new airplane.
//
//	@Summary		Create an airplane
//	@Security		BearerToken
//	@Tags			airplanes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.AirplaneRequest	true	"airplane"
//	@Success		201		{object}	domain.Airplane
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Router			/api/v1/airport/airplanes [post]
func (h *AirplaneHandler) CreateAirplane(ctx *gin.Context) {
	var req request.AirplaneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	airplane, err := h.svc.CreateAirplane(ctx.Request.Context(), domain.Airplane{
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneType,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirplaneTypeNotFound), errors.Is(err, service.ErrInvalidSeatGrid):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.CreateAirplane -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusCreated, airplane)
}

// ListAirplanes returns airplanes, optionally filtered by airplane type
// IDs given as a comma-separated list.
//
//	@Summary		List airplanes
//	@Security		BearerToken
//	@Tags			airplanes
//	@Produce		json
//	@Param			airplane_type	query		string	false	"airplane type IDs, e.g. 1,3"
//	@Success		200				{array}		response.AirplaneList
//	@Failure		401				{object}	response.Err
//	@Router			/api/v1/airport/airplanes [get]
func (h *AirplaneHandler) ListAirplanes(ctx *gin.Context) {
	typeIDs := request.GetIDList(ctx, "airplane_type")

	airplanes, err := h.svc.ListAirplanes(ctx.Request.Context(), typeIDs)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.ListAirplanes -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewAirplaneLists(airplanes))
}

// GetAirplane returns a single airplane by ID.
//
//	@Summary		Get an airplane
//	@Security		BearerToken
//	@Tags			airplanes
//	@Produce		json
//	@Param			id	path		int	true	"airplane ID"
//	@Success		200	{object}	domain.Airplane
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/airplanes/{id} [get]
func (h *AirplaneHandler) GetAirplane(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	airplane, err := h.svc.GetAirplane(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirplaneNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airplane", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.GetAirplane -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, airplane)
}

// UpdateAirplane replaces an airplane's fields.
//
//	@Summary		Update an airplane
//	@Security		BearerToken
//	@Tags			airplanes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"airplane ID"
//	@Param			request	body		request.AirplaneRequest	true	"airplane"
//	@Success		200		{object}	domain.Airplane
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Failure		404		{object}	response.Err
//	@Router			/api/v1/airport/airplanes/{id} [put]
func (h *AirplaneHandler) UpdateAirplane(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.AirplaneRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	airplane, err := h.svc.UpdateAirplane(ctx.Request.Context(), domain.Airplane{
		ID:             id,
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneType,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirplaneNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airplane", "id", id))
		case errors.Is(err, service.ErrAirplaneTypeNotFound), errors.Is(err, service.ErrInvalidSeatGrid):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.UpdateAirplane -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, airplane)
}

// DeleteAirplane removes an airplane.
//
//	@Summary		Delete an airplane
//	@Security		BearerToken
//	@Tags			airplanes
//	@Param			id	path	int	true	"airplane ID"
//	@Success		204
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/airplanes/{id} [delete]
func (h *AirplaneHandler) DeleteAirplane(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteAirplane(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrAirplaneNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airplane", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.DeleteAirplane -> %w", err)))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}
