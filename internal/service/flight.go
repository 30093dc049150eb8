package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository"
)

var ErrFlightNotFound = repository.ErrFlightNotFound

type FlightRepository interface {
	Create(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	FindByID(ctx context.Context, id uint) (domain.Flight, error)
	FindAll(ctx context.Context) ([]domain.Flight, error)
	CountTicketsByFlight(ctx context.Context) (map[uint]int, error)
	FindTakenSeats(ctx context.Context, flightID uint) ([]domain.SeatPlace, error)
	Update(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	Delete(ctx context.Context, id uint) error
}

type FlightRouteRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Route, error)
}

type FlightAirplaneRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Airplane, error)
}

type FlightCrewRepository interface {
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Crew, error)
}

// FlightWithAvailability pairs a flight with its remaining sellable seat
// count for list views.
type FlightWithAvailability struct {
	domain.Flight
	TicketsAvailable int
}

// FlightDetail pairs a flight with the concrete (row, seat) pairs already
// taken, for detail views.
type FlightDetail struct {
	domain.Flight
	TakenSeats []domain.SeatPlace
}

type FlightService struct {
	repo         FlightRepository
	routeRepo    FlightRouteRepository
	airplaneRepo FlightAirplaneRepository
	crewRepo     FlightCrewRepository
}

func NewFlightService(
	repo FlightRepository,
	routeRepo FlightRouteRepository,
	airplaneRepo FlightAirplaneRepository,
	crewRepo FlightCrewRepository,
) *FlightService {
	return &FlightService{
		repo:         repo,
		routeRepo:    routeRepo,
		airplaneRepo: airplaneRepo,
		crewRepo:     crewRepo,
	}
}

func (s *FlightService) CreateFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	if err := s.checkReferences(ctx, flight); err != nil {
		return domain.Flight{}, err
	}

	created, err := s.repo.Create(ctx, flight)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListFlights returns every flight together with its computed
// availability: seat-grid capacity minus committed tickets. Counts come
// from a single grouped query so one flight's availability never reflects
// another request's uncommitted tickets.
func (s *FlightService) ListFlights(ctx context.Context) ([]FlightWithAvailability, error) {
	flights, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	sold, err := s.repo.CountTicketsByFlight(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CountTicketsByFlight -> %w", err)
	}

	listed := make([]FlightWithAvailability, 0, len(flights))
	for _, f := range flights {
		listed = append(listed, FlightWithAvailability{
			Flight: f,
			TicketsAvailable: domain.TicketsAvailable(
				f.Airplane.Rows, f.Airplane.SeatsInRow, sold[f.ID],
			),
		})
	}

	return listed, nil
}

func (s *FlightService) GetFlight(ctx context.Context, id uint) (FlightDetail, error) {
	flight, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return FlightDetail{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	taken, err := s.repo.FindTakenSeats(ctx, id)
	if err != nil {
		return FlightDetail{}, fmt.Errorf("s.repo.FindTakenSeats -> %w", err)
	}

	return FlightDetail{
		Flight:     flight,
		TakenSeats: taken,
	}, nil
}

func (s *FlightService) UpdateFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	if err := s.checkReferences(ctx, flight); err != nil {
		return domain.Flight{}, err
	}

	updated, err := s.repo.Update(ctx, flight)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *FlightService) DeleteFlight(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *FlightService) checkReferences(ctx context.Context, flight domain.Flight) error {
	if _, err := s.routeRepo.FindByID(ctx, flight.RouteID); err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return ErrRouteNotFound
		}

		return fmt.Errorf("s.routeRepo.FindByID -> %w", err)
	}

	if _, err := s.airplaneRepo.FindByID(ctx, flight.AirplaneID); err != nil {
		if errors.Is(err, repository.ErrAirplaneNotFound) {
			return ErrAirplaneNotFound
		}

		return fmt.Errorf("s.airplaneRepo.FindByID -> %w", err)
	}

	if len(flight.Crew) > 0 {
		ids := make([]uint, 0, len(flight.Crew))
		for _, c := range flight.Crew {
			ids = append(ids, c.ID)
		}
		if _, err := s.crewRepo.FindByIDs(ctx, ids); err != nil {
			if errors.Is(err, repository.ErrCrewNotFound) {
				return ErrCrewNotFound
			}

			return fmt.Errorf("s.crewRepo.FindByIDs -> %w", err)
		}
	}

	return nil
}
