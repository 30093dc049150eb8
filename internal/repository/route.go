package repository

import (
	"context"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository/dao"
)

type RouteDAO interface {
	Insert(ctx context.Context, route dao.Route) (dao.Route, error)
	FindByID(ctx context.Context, id uint) (dao.Route, error)
	FindAll(ctx context.Context, sourceIDs, destinationIDs []uint) ([]dao.Route, error)
	Update(ctx context.Context, route dao.Route) (dao.Route, error)
	Delete(ctx context.Context, id uint) error
}

type RouteRepository struct {
	dao RouteDAO
}

func NewRouteRepository(dao RouteDAO) *RouteRepository {
	return &RouteRepository{
		dao: dao,
	}
}

func (r *RouteRepository) Create(ctx context.Context, route domain.Route) (domain.Route, error) {
	created, err := r.dao.Insert(ctx, dao.Route{
		Distance:      route.Distance,
		SourceID:      route.SourceID,
		DestinationID: route.DestinationID,
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return routeDaoToDomain(created), nil
}

func (r *RouteRepository) FindByID(ctx context.Context, id uint) (domain.Route, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Route{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return routeDaoToDomain(found), nil
}

func (r *RouteRepository) FindAll(ctx context.Context, sourceIDs, destinationIDs []uint) ([]domain.Route, error) {
	found, err := r.dao.FindAll(ctx, sourceIDs, destinationIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	routes := make([]domain.Route, 0, len(found))
	for _, rt := range found {
		routes = append(routes, routeDaoToDomain(rt))
	}

	return routes, nil
}

func (r *RouteRepository) Update(ctx context.Context, route domain.Route) (domain.Route, error) {
	updated, err := r.dao.Update(ctx, dao.Route{
		ID:            route.ID,
		Distance:      route.Distance,
		SourceID:      route.SourceID,
		DestinationID: route.DestinationID,
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return routeDaoToDomain(updated), nil
}

func (r *RouteRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func routeDaoToDomain(rt dao.Route) domain.Route {
	return domain.Route{
		ID:            rt.ID,
		Distance:      rt.Distance,
		SourceID:      rt.SourceID,
		DestinationID: rt.DestinationID,
		Source: domain.Airport{
			ID:             rt.Source.ID,
			Name:           rt.Source.Name,
			ClosestBigCity: rt.Source.ClosestBigCity,
		},
		Destination: domain.Airport{
			ID:             rt.Destination.ID,
			Name:           rt.Destination.Name,
			ClosestBigCity: rt.Destination.ClosestBigCity,
		},
	}
}
