package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/saywin/airport-api-service/internal/api/handler/v1"
	"github.com/saywin/airport-api-service/internal/api/middleware"
	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/service"
)

type stubOrderService struct {
	createdFor uint
	createErr  error
	getOrder   domain.Order
	getErr     error

	listedOffset int
	listedLimit  int
	listOrders   []domain.Order
	listTotal    int64
}

func (s *stubOrderService) CreateOrder(_ context.Context, userID uint, tickets []service.TicketRequest) (domain.Order, error) {
	if s.createErr != nil {
		return domain.Order{}, s.createErr
	}

	s.createdFor = userID

	order := domain.Order{ID: 1, UserID: userID}
	for i, t := range tickets {
		order.Tickets = append(order.Tickets, domain.Ticket{
			ID:       uint(i + 1),
			Row:      t.Row,
			Seat:     t.Seat,
			FlightID: t.FlightID,
		})
	}

	return order, nil
}

func (s *stubOrderService) GetOrder(_ context.Context, _, _ uint) (domain.Order, error) {
	return s.getOrder, s.getErr
}

func (s *stubOrderService) ListOrders(_ context.Context, _ uint, offset, limit int) ([]domain.Order, int64, error) {
	s.listedOffset = offset
	s.listedLimit = limit

	return s.listOrders, s.listTotal, nil
}

type stubUserService struct {
	user domain.User
}

func (s *stubUserService) GetUser(_ context.Context, _ uint) (domain.User, error) {
	return s.user, nil
}

func newOrderRouter(t *testing.T, svc *stubOrderService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := v1.NewOrderHandler(svc, &stubUserService{}, 3, 20)

	router := gin.New()
	// Stand-in for the JWT and policy middleware.
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.AuthUserKey, domain.User{ID: 42, Email: "user@example.com"})
	})
	router.GET("/orders", handler.ListOrders)
	router.POST("/orders", handler.CreateOrder)
	router.GET("/orders/:id", handler.GetOrder)

	return router
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("books tickets for the authenticated user", func(t *testing.T) {
		svc := &stubOrderService{}
		router := newOrderRouter(t, svc)

		body := `{"tickets":[{"row":1,"seat":2,"flight":5},{"row":1,"seat":3,"flight":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Equal(t, uint(42), svc.createdFor)

		var got struct {
			Tickets []struct {
				Flight uint `json:"flight"`
			} `json:"tickets"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		require.Len(t, got.Tickets, 2)
		assert.Equal(t, uint(5), got.Tickets[0].Flight)
	})

	t.Run("empty ticket list is a 400", func(t *testing.T) {
		router := newOrderRouter(t, &stubOrderService{})

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"tickets":[]}`))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("invalid seat renders field-keyed messages", func(t *testing.T) {
		svc := &stubOrderService{
			createErr: &service.InvalidSeatError{
				Index: 1,
				Seat:  &domain.SeatError{Fields: map[string]string{"row": "row must be between 1 and 30"}},
			},
		}
		router := newOrderRouter(t, svc)

		body := `{"tickets":[{"row":1,"seat":1,"flight":5},{"row":99,"seat":1,"flight":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusBadRequest, resp.Code)

		var got struct {
			Fields map[string]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, "row must be between 1 and 30", got.Fields["tickets[1].row"])
	})

	t.Run("taken seat is a retryable 409", func(t *testing.T) {
		svc := &stubOrderService{createErr: service.ErrSeatTaken}
		router := newOrderRouter(t, svc)

		body := `{"tickets":[{"row":1,"seat":1,"flight":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusConflict, resp.Code)
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("applies default pagination", func(t *testing.T) {
		svc := &stubOrderService{listTotal: 7}
		router := newOrderRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, 0, svc.listedOffset)
		assert.Equal(t, 3, svc.listedLimit)

		var got struct {
			Count    int64 `json:"count"`
			Page     int   `json:"page"`
			PageSize int   `json:"page_size"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.Count)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 3, got.PageSize)
	})

	t.Run("caps oversized page_size", func(t *testing.T) {
		svc := &stubOrderService{}
		router := newOrderRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/orders?page_size=1000", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, 20, svc.listedLimit)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("foreign or missing order is a 404", func(t *testing.T) {
		svc := &stubOrderService{getErr: service.ErrOrderNotFound}
		router := newOrderRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/orders/9", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
