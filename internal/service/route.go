package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository"
)

var ErrRouteNotFound = repository.ErrRouteNotFound

type RouteRepository interface {
	Create(ctx context.Context, route domain.Route) (domain.Route, error)
	FindByID(ctx context.Context, id uint) (domain.Route, error)
	FindAll(ctx context.Context, sourceIDs, destinationIDs []uint) ([]domain.Route, error)
	Update(ctx context.Context, route domain.Route) (domain.Route, error)
	Delete(ctx context.Context, id uint) error
}

type RouteAirportRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Airport, error)
}

type RouteService struct {
	repo        RouteRepository
	airportRepo RouteAirportRepository
}

func NewRouteService(repo RouteRepository, airportRepo RouteAirportRepository) *RouteService {
	return &RouteService{
		repo:        repo,
		airportRepo: airportRepo,
	}
}

func (s *RouteService) CreateRoute(ctx context.Context, route domain.Route) (domain.Route, error) {
	if err := s.checkAirports(ctx, route); err != nil {
		return domain.Route{}, err
	}

	created, err := s.repo.Create(ctx, route)
	if err != nil {
		return domain.Route{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *RouteService) GetRoute(ctx context.Context, id uint) (domain.Route, error) {
	route, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Route{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return route, nil
}

// ListRoutes narrows the listing by source/destination airport IDs when
// the slices are non-empty.
func (s *RouteService) ListRoutes(ctx context.Context, sourceIDs, destinationIDs []uint) ([]domain.Route, error) {
	routes, err := s.repo.FindAll(ctx, sourceIDs, destinationIDs)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return routes, nil
}

func (s *RouteService) UpdateRoute(ctx context.Context, route domain.Route) (domain.Route, error) {
	if err := s.checkAirports(ctx, route); err != nil {
		return domain.Route{}, err
	}

	updated, err := s.repo.Update(ctx, route)
	if err != nil {
		return domain.Route{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *RouteService) checkAirports(ctx context.Context, route domain.Route) error {
	for _, id := range []uint{route.SourceID, route.DestinationID} {
		if _, err := s.airportRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrAirportNotFound) {
				return ErrAirportNotFound
			}

			return fmt.Errorf("s.airportRepo.FindByID -> %w", err)
		}
	}

	return nil
}
