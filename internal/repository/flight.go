package repository

import (
	"context"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository/dao"
)

var ErrFlightNotFound = dao.ErrFlightNotFound

type FlightDAO interface {
	Insert(ctx context.Context, flight dao.Flight) (dao.Flight, error)
	FindByID(ctx context.Context, id uint) (dao.Flight, error)
	FindAll(ctx context.Context) ([]dao.Flight, error)
	CountTicketsByFlight(ctx context.Context) (map[uint]int, error)
	FindTakenSeats(ctx context.Context, flightID uint) ([]dao.Ticket, error)
	Update(ctx context.Context, flight dao.Flight) (dao.Flight, error)
	Delete(ctx context.Context, id uint) error
}

type FlightRepository struct {
	dao FlightDAO
}

func NewFlightRepository(dao FlightDAO) *FlightRepository {
	return &FlightRepository{
		dao: dao,
	}
}

func (r *FlightRepository) Create(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	created, err := r.dao.Insert(ctx, flightDomainToDao(flight))
	if err != nil {
		return domain.Flight{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return flightDaoToDomain(created), nil
}

func (r *FlightRepository) FindByID(ctx context.Context, id uint) (domain.Flight, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return flightDaoToDomain(found), nil
}

func (r *FlightRepository) FindAll(ctx context.Context) ([]domain.Flight, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	flights := make([]domain.Flight, 0, len(found))
	for _, f := range found {
		flights = append(flights, flightDaoToDomain(f))
	}

	return flights, nil
}

// CountTicketsByFlight reports committed ticket counts keyed by flight ID.
func (r *FlightRepository) CountTicketsByFlight(ctx context.Context) (map[uint]int, error) {
	counts, err := r.dao.CountTicketsByFlight(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountTicketsByFlight -> %w", err)
	}

	return counts, nil
}

func (r *FlightRepository) FindTakenSeats(ctx context.Context, flightID uint) ([]domain.SeatPlace, error) {
	tickets, err := r.dao.FindTakenSeats(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTakenSeats -> %w", err)
	}

	places := make([]domain.SeatPlace, 0, len(tickets))
	for _, t := range tickets {
		places = append(places, domain.SeatPlace{Row: t.Row, Seat: t.Seat})
	}

	return places, nil
}

func (r *FlightRepository) Update(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	updated, err := r.dao.Update(ctx, flightDomainToDao(flight))
	if err != nil {
		return domain.Flight{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return flightDaoToDomain(updated), nil
}

func (r *FlightRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func flightDomainToDao(f domain.Flight) dao.Flight {
	crew := make([]dao.Crew, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, dao.Crew{ID: c.ID})
	}

	return dao.Flight{
		ID:            f.ID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		RouteID:       f.RouteID,
		AirplaneID:    f.AirplaneID,
		Crew:          crew,
	}
}

func flightDaoToDomain(f dao.Flight) domain.Flight {
	crew := make([]domain.Crew, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, crewDaoToDomain(c))
	}

	return domain.Flight{
		ID:            f.ID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		RouteID:       f.RouteID,
		AirplaneID:    f.AirplaneID,
		Route:         routeDaoToDomain(f.Route),
		Airplane:      airplaneDaoToDomain(f.Airplane),
		Crew:          crew,
	}
}
