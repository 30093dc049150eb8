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

type CrewService interface {
	CreateCrew(ctx context.Context, crew domain.Crew) (domain.Crew, error)
	GetCrew(ctx context.Context, id uint) (domain.Crew, error)
	ListCrew(ctx context.Context) ([]domain.Crew, error)
	UpdateCrew(ctx context.Context, crew domain.Crew) (domain.Crew, error)
	DeleteCrew(ctx context.Context, id uint) error
}

type CrewHandler struct {
	svc CrewService
}

func NewCrewHandler(svc CrewService) CrewHandler {
	return CrewHandler{
		svc: svc,
	}
}

// CreateCrew adds a new crew member.
//
//	@Summary		Create a crew member
//	@Security		BearerToken
//	@Tags			crew
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.CrewRequest	true	"crew member"
//	@Success		201		{object}	response.Crew
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Router			/api/v1/airport/crew [post]
func (h *CrewHandler) CreateCrew(ctx *gin.Context) {
	var req request.CrewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	crew, err := h.svc.CreateCrew(ctx.Request.Context(), domain.Crew{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.CreateCrew -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewCrew(crew))
}

// ListCrew returns all crew members.
//
//	@Summary		List crew members
//	@Security		BearerToken
//	@Tags			crew
//	@Produce		json
//	@Success		200	{array}		response.CrewList
//	@Failure		401	{object}	response.Err
//	@Router			/api/v1/airport/crew [get]
func (h *CrewHandler) ListCrew(ctx *gin.Context) {
	crew, err := h.svc.ListCrew(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.ListCrew -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCrewLists(crew))
}

// GetCrew returns a single crew member by ID.
//
//	@Summary		Get a crew member
//	@Security		BearerToken
//	@Tags			crew
//	@Produce		json
//	@Param			id	path		int	true	"crew member ID"
//	@Success		200	{object}	response.Crew
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/crew/{id} [get]
func (h *CrewHandler) GetCrew(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	crew, err := h.svc.GetCrew(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCrewNotFound):
			response.RenderErr(ctx, response.ErrNotFound("crew member", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.GetCrew -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewCrew(crew))
}

// UpdateCrew replaces a crew member's fields.
//
//	@Summary		Update a crew member
//	@Security		BearerToken
//	@Tags			crew
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"crew member ID"
//	@Param			request	body		request.CrewRequest	true	"crew member"
//	@Success		200		{object}	response.Crew
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Failure		404		{object}	response.Err
//	@Router			/api/v1/airport/crew/{id} [put]
func (h *CrewHandler) UpdateCrew(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CrewRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	crew, err := h.svc.UpdateCrew(ctx.Request.Context(), domain.Crew{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCrewNotFound):
			response.RenderErr(ctx, response.ErrNotFound("crew member", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.UpdateCrew -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewCrew(crew))
}

// DeleteCrew removes a crew member.
//
//	@Summary		Delete a crew member
//	@Security		BearerToken
//	@Tags			crew
//	@Param			id	path	int	true	"crew member ID"
//	@Success		204
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/airport/crew/{id} [delete]
func (h *CrewHandler) DeleteCrew(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteCrew(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrCrewNotFound):
			response.RenderErr(ctx, response.ErrNotFound("crew member", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.DeleteCrew -> %w", err)))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}
