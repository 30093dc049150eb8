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

type OrderService interface {
	CreateOrder(ctx context.Context, userID uint, tickets []service.TicketRequest) (domain.Order, error)
	GetOrder(ctx context.Context, id, userID uint) (domain.Order, error)
	ListOrders(ctx context.Context, userID uint, offset, limit int) ([]domain.Order, int64, error)
}

type OrderHandler struct {
	svc             OrderService
	users           UserService
	defaultPageSize int
	maxPageSize     int
}

func NewOrderHandler(svc OrderService, users UserService, defaultPageSize, maxPageSize int) OrderHandler {
	return OrderHandler{
		svc:             svc,
		users:           users,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// CreateOrder books one or more tickets for the authenticated user in a
// single atomic order.
//
//	@Summary		Create an order
//	@Security		BearerToken
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.CreateOrderRequest	true	"tickets to book"
//	@Success		201		{object}	response.Order
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		409		{object}	response.Err
//	@Router			/api/v1/user/orders [post]
func (h *OrderHandler) CreateOrder(ctx *gin.Context) {
	user, renderErr := getUserFromContext(ctx, h.users)
	if renderErr != nil {
		response.RenderErr(ctx, renderErr)
		return
	}

	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tickets := make([]service.TicketRequest, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		tickets = append(tickets, service.TicketRequest{
			Row:      t.Row,
			Seat:     t.Seat,
			FlightID: t.Flight,
		})
	}

	order, err := h.svc.CreateOrder(ctx.Request.Context(), user.ID, tickets)
	if err != nil {
		var seatErr *service.InvalidSeatError

		switch {
		case errors.Is(err, service.ErrEmptyOrder), errors.Is(err, service.ErrFlightNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.As(err, &seatErr):
			response.RenderErr(ctx, response.ErrValidation(seatErrFields(seatErr)))
		case errors.Is(err, service.ErrSeatTaken):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.CreateOrder -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.NewOrder(order))
}

// ListOrders returns the authenticated user's orders, newest first.
//
//	@Summary		List my orders
//	@Security		BearerToken
//	@Tags			orders
//	@Produce		json
//	@Param			page		query		int	false	"page number"
//	@Param			page_size	query		int	false	"page size"
//	@Success		200			{object}	response.OrderPage
//	@Failure		401			{object}	response.Err
//	@Router			/api/v1/user/orders [get]
func (h *OrderHandler) ListOrders(ctx *gin.Context) {
	user, renderErr := getUserFromContext(ctx, h.users)
	if renderErr != nil {
		response.RenderErr(ctx, renderErr)
		return
	}

	p := request.GetPagination(ctx, h.defaultPageSize, h.maxPageSize)

	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), user.ID, p.Offset, p.PageSize)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.ListOrders -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewOrderPage(orders, total, p.Page, p.PageSize))
}

// GetOrder returns one of the authenticated user's orders with full
// ticket and flight details. Orders belonging to other users are
// indistinguishable from missing ones.
//
//	@Summary		Get one of my orders
//	@Security		BearerToken
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"order ID"
//	@Success		200	{object}	response.OrderDetail
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/api/v1/user/orders/{id} [get]
func (h *OrderHandler) GetOrder(ctx *gin.Context) {
	user, renderErr := getUserFromContext(ctx, h.users)
	if renderErr != nil {
		response.RenderErr(ctx, renderErr)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	order, err := h.svc.GetOrder(ctx.Request.Context(), id, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.RenderErr(ctx, response.ErrNotFound("order", "id", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("h.svc.GetOrder -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewOrderDetail(order))
}

func seatErrFields(err *service.InvalidSeatError) map[string]string {
	fields := make(map[string]string, len(err.Seat.Fields))
	for field, msg := range err.Seat.Fields {
		fields[fmt.Sprintf("tickets[%d].%s", err.Index, field)] = msg
	}

	return fields
}
