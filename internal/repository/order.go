package repository

import (
	"context"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository/dao"
)

var (
	ErrOrderNotFound = dao.ErrOrderNotFound
	ErrSeatTaken     = dao.ErrSeatTaken
)

type OrderDAO interface {
	InsertWithTickets(ctx context.Context, order dao.Order, tickets []dao.Ticket) (dao.Order, error)
	FindByIDForUser(ctx context.Context, id, userID uint) (dao.Order, error)
	FindByUserID(ctx context.Context, userID uint, offset, limit int) ([]dao.Order, int64, error)
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

// CreateWithTickets writes the order and its tickets as one atomic unit.
func (r *OrderRepository) CreateWithTickets(ctx context.Context, order domain.Order) (domain.Order, error) {
	tickets := make([]dao.Ticket, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		tickets = append(tickets, dao.Ticket{
			Row:      t.Row,
			Seat:     t.Seat,
			FlightID: t.FlightID,
		})
	}

	created, err := r.dao.InsertWithTickets(ctx, dao.Order{UserID: order.UserID}, tickets)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.InsertWithTickets -> %w", err)
	}

	return orderDaoToDomain(created), nil
}

func (r *OrderRepository) FindByIDForUser(ctx context.Context, id, userID uint) (domain.Order, error) {
	found, err := r.dao.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.FindByIDForUser -> %w", err)
	}

	return orderDaoToDomain(found), nil
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID uint, offset, limit int) ([]domain.Order, int64, error) {
	found, total, err := r.dao.FindByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	orders := make([]domain.Order, 0, len(found))
	for _, o := range found {
		orders = append(orders, orderDaoToDomain(o))
	}

	return orders, total, nil
}

func orderDaoToDomain(o dao.Order) domain.Order {
	tickets := make([]domain.Ticket, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		ticket := domain.Ticket{
			ID:       t.ID,
			Row:      t.Row,
			Seat:     t.Seat,
			FlightID: t.FlightID,
			OrderID:  t.OrderID,
		}
		if t.Flight.ID != 0 {
			flight := flightDaoToDomain(t.Flight)
			ticket.Flight = &flight
		}
		tickets = append(tickets, ticket)
	}

	return domain.Order{
		ID:        o.ID,
		UserID:    o.UserID,
		CreatedAt: o.CreatedAt,
		Tickets:   tickets,
	}
}
