package repository

import (
	"context"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository/dao"
)

var (
	ErrAirportNotFound = dao.ErrAirportNotFound
	ErrRouteNotFound   = dao.ErrRouteNotFound
)

type AirportDAO interface {
	Insert(ctx context.Context, airport dao.Airport) (dao.Airport, error)
	FindByID(ctx context.Context, id uint) (dao.Airport, error)
	FindAll(ctx context.Context) ([]dao.Airport, error)
	Update(ctx context.Context, airport dao.Airport) (dao.Airport, error)
	Delete(ctx context.Context, id uint) error
}

type AirportRepository struct {
	dao AirportDAO
}

func NewAirportRepository(dao AirportDAO) *AirportRepository {
	return &AirportRepository{
		dao: dao,
	}
}

func (r *AirportRepository) Create(ctx context.Context, airport domain.Airport) (domain.Airport, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(airport))
	if err != nil {
		return domain.Airport{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AirportRepository) FindByID(ctx context.Context, id uint) (domain.Airport, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AirportRepository) FindAll(ctx context.Context) ([]domain.Airport, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	airports := make([]domain.Airport, 0, len(found))
	for _, a := range found {
		airports = append(airports, r.daoToDomain(a))
	}

	return airports, nil
}

func (r *AirportRepository) Update(ctx context.Context, airport domain.Airport) (domain.Airport, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(airport))
	if err != nil {
		return domain.Airport{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *AirportRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *AirportRepository) domainToDao(a domain.Airport) dao.Airport {
	return dao.Airport{
		ID:             a.ID,
		Name:           a.Name,
		ClosestBigCity: a.ClosestBigCity,
	}
}

func (r *AirportRepository) daoToDomain(a dao.Airport) domain.Airport {
	return domain.Airport{
		ID:             a.ID,
		Name:           a.Name,
		ClosestBigCity: a.ClosestBigCity,
	}
}
