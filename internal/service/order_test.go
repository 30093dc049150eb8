package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository"
	"github.com/saywin/airport-api-service/internal/service"
)

type fakeOrderRepository struct {
	created    []domain.Order
	createErr  error
	findOrder  domain.Order
	findErr    error
	listOrders []domain.Order
	listTotal  int64
}

func (f *fakeOrderRepository) CreateWithTickets(_ context.Context, order domain.Order) (domain.Order, error) {
	if f.createErr != nil {
		return domain.Order{}, f.createErr
	}

	order.ID = uint(len(f.created) + 1)
	f.created = append(f.created, order)

	return order, nil
}

func (f *fakeOrderRepository) FindByIDForUser(_ context.Context, _, _ uint) (domain.Order, error) {
	return f.findOrder, f.findErr
}

func (f *fakeOrderRepository) FindByUserID(_ context.Context, _ uint, _, _ int) ([]domain.Order, int64, error) {
	return f.listOrders, f.listTotal, nil
}

type fakeFlightRepository struct {
	flights map[uint]domain.Flight
	lookups int
}

func (f *fakeFlightRepository) FindByID(_ context.Context, id uint) (domain.Flight, error) {
	f.lookups++

	flight, ok := f.flights[id]
	if !ok {
		return domain.Flight{}, repository.ErrFlightNotFound
	}

	return flight, nil
}

func smallFlight(id uint) domain.Flight {
	return domain.Flight{
		ID:       id,
		Airplane: domain.Airplane{Rows: 10, SeatsInRow: 4},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty orders", func(t *testing.T) {
		repo := &fakeOrderRepository{}
		svc := service.NewOrderService(repo, &fakeFlightRepository{})

		_, err := svc.CreateOrder(ctx, 1, nil)

		assert.ErrorIs(t, err, service.ErrEmptyOrder)
		assert.Empty(t, repo.created)
	})

	t.Run("books multiple tickets as one order owned by the caller", func(t *testing.T) {
		repo := &fakeOrderRepository{}
		flights := &fakeFlightRepository{flights: map[uint]domain.Flight{5: smallFlight(5)}}
		svc := service.NewOrderService(repo, flights)

		order, err := svc.CreateOrder(ctx, 42, []service.TicketRequest{
			{Row: 1, Seat: 1, FlightID: 5},
			{Row: 2, Seat: 3, FlightID: 5},
		})

		require.NoError(t, err)
		require.Len(t, repo.created, 1)
		assert.Equal(t, uint(42), order.UserID)
		assert.Len(t, order.Tickets, 2)
		// One flight, one lookup.
		assert.Equal(t, 1, flights.lookups)
	})

	t.Run("invalid seat among valid ones persists nothing", func(t *testing.T) {
		repo := &fakeOrderRepository{}
		flights := &fakeFlightRepository{flights: map[uint]domain.Flight{5: smallFlight(5)}}
		svc := service.NewOrderService(repo, flights)

		_, err := svc.CreateOrder(ctx, 1, []service.TicketRequest{
			{Row: 1, Seat: 1, FlightID: 5},
			{Row: 99, Seat: 1, FlightID: 5},
		})

		var seatErr *service.InvalidSeatError
		require.ErrorAs(t, err, &seatErr)
		assert.Equal(t, 1, seatErr.Index)
		assert.Contains(t, seatErr.Seat.Fields, "row")
		assert.Empty(t, repo.created)
	})

	t.Run("unknown flight fails the whole order", func(t *testing.T) {
		repo := &fakeOrderRepository{}
		svc := service.NewOrderService(repo, &fakeFlightRepository{flights: map[uint]domain.Flight{}})

		_, err := svc.CreateOrder(ctx, 1, []service.TicketRequest{
			{Row: 1, Seat: 1, FlightID: 404},
		})

		assert.ErrorIs(t, err, service.ErrFlightNotFound)
		assert.Empty(t, repo.created)
	})

	t.Run("surfaces concurrent seat conflicts as ErrSeatTaken", func(t *testing.T) {
		repo := &fakeOrderRepository{createErr: repository.ErrSeatTaken}
		flights := &fakeFlightRepository{flights: map[uint]domain.Flight{5: smallFlight(5)}}
		svc := service.NewOrderService(repo, flights)

		_, err := svc.CreateOrder(ctx, 1, []service.TicketRequest{
			{Row: 1, Seat: 1, FlightID: 5},
		})

		assert.ErrorIs(t, err, service.ErrSeatTaken)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	t.Run("foreign order is reported as not found", func(t *testing.T) {
		repo := &fakeOrderRepository{findErr: repository.ErrOrderNotFound}
		svc := service.NewOrderService(repo, &fakeFlightRepository{})

		_, err := svc.GetOrder(context.Background(), 1, 42)

		assert.ErrorIs(t, err, service.ErrOrderNotFound)
	})
}
