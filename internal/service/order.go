package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository"
)

var (
	ErrOrderNotFound = repository.ErrOrderNotFound
	ErrSeatTaken     = repository.ErrSeatTaken
	ErrEmptyOrder    = errors.New("an order must contain at least one ticket")
)

// InvalidSeatError pinpoints which requested ticket failed seat
// validation and carries the field-keyed messages from the validator.
type InvalidSeatError struct {
	Index int
	Seat  *domain.SeatError
}

func (e *InvalidSeatError) Error() string {
	return fmt.Sprintf("tickets[%d]: %v", e.Index, e.Seat)
}

// TicketRequest is one requested seat within an order.
type TicketRequest struct {
	Row      int
	Seat     int
	FlightID uint
}

type OrderRepository interface {
	CreateWithTickets(ctx context.Context, order domain.Order) (domain.Order, error)
	FindByIDForUser(ctx context.Context, id, userID uint) (domain.Order, error)
	FindByUserID(ctx context.Context, userID uint, offset, limit int) ([]domain.Order, int64, error)
}

type OrderFlightRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Flight, error)
}

type OrderService struct {
	repo       OrderRepository
	flightRepo OrderFlightRepository
}

func NewOrderService(repo OrderRepository, flightRepo OrderFlightRepository) *OrderService {
	return &OrderService{
		repo:       repo,
		flightRepo: flightRepo,
	}
}

// CreateOrder validates every requested ticket against its flight's seat
// grid and then persists the order with all tickets as one atomic unit.
// Validation happens before any write, so a failing ticket leaves nothing
// behind. The owner is always the authenticated caller passed in by the
// handler, never anything taken from the request body. A concurrent
// booking of the same seat surfaces as ErrSeatTaken, which callers may
// retry with different seats.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, tickets []TicketRequest) (domain.Order, error) {
	if len(tickets) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	flights := map[uint]domain.Flight{}
	for i, t := range tickets {
		flight, ok := flights[t.FlightID]
		if !ok {
			var err error
			flight, err = s.flightRepo.FindByID(ctx, t.FlightID)
			if err != nil {
				if errors.Is(err, repository.ErrFlightNotFound) {
					return domain.Order{}, ErrFlightNotFound
				}

				return domain.Order{}, fmt.Errorf("s.flightRepo.FindByID -> %w", err)
			}
			flights[t.FlightID] = flight
		}

		if err := domain.ValidateSeat(t.Row, t.Seat, flight.Airplane.Rows, flight.Airplane.SeatsInRow); err != nil {
			var seatErr *domain.SeatError
			if errors.As(err, &seatErr) {
				return domain.Order{}, &InvalidSeatError{Index: i, Seat: seatErr}
			}

			return domain.Order{}, err
		}
	}

	order := domain.Order{
		UserID:  userID,
		Tickets: make([]domain.Ticket, 0, len(tickets)),
	}
	for _, t := range tickets {
		order.Tickets = append(order.Tickets, domain.Ticket{
			Row:      t.Row,
			Seat:     t.Seat,
			FlightID: t.FlightID,
		})
	}

	created, err := s.repo.CreateWithTickets(ctx, order)
	if err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			return domain.Order{}, ErrSeatTaken
		}

		return domain.Order{}, fmt.Errorf("s.repo.CreateWithTickets -> %w", err)
	}

	return created, nil
}

// GetOrder returns the order only when it belongs to userID; anyone
// else's order is reported as not found, never as forbidden.
func (s *OrderService) GetOrder(ctx context.Context, id, userID uint) (domain.Order, error) {
	order, err := s.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.FindByIDForUser -> %w", err)
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint, offset, limit int) ([]domain.Order, int64, error) {
	orders, total, err := s.repo.FindByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return orders, total, nil
}
