package repository

import (
	"context"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository/dao"
)

var (
	ErrAirplaneTypeNotFound = dao.ErrAirplaneTypeNotFound
	ErrAirplaneNotFound     = dao.ErrAirplaneNotFound
)

type AirplaneTypeDAO interface {
	Insert(ctx context.Context, airplaneType dao.AirplaneType) (dao.AirplaneType, error)
	FindByID(ctx context.Context, id uint) (dao.AirplaneType, error)
	FindAll(ctx context.Context) ([]dao.AirplaneType, error)
	Update(ctx context.Context, airplaneType dao.AirplaneType) (dao.AirplaneType, error)
	Delete(ctx context.Context, id uint) error
}

type AirplaneDAO interface {
	Insert(ctx context.Context, airplane dao.Airplane) (dao.Airplane, error)
	FindByID(ctx context.Context, id uint) (dao.Airplane, error)
	FindAll(ctx context.Context, typeIDs []uint) ([]dao.Airplane, error)
	Update(ctx context.Context, airplane dao.Airplane) (dao.Airplane, error)
	Delete(ctx context.Context, id uint) error
}

type AirplaneTypeRepository struct {
	dao AirplaneTypeDAO
}

func NewAirplaneTypeRepository(dao AirplaneTypeDAO) *AirplaneTypeRepository {
	return &AirplaneTypeRepository{
		dao: dao,
	}
}

func (r *AirplaneTypeRepository) Create(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	created, err := r.dao.Insert(ctx, dao.AirplaneType{Name: airplaneType.Name})
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return airplaneTypeDaoToDomain(created), nil
}

func (r *AirplaneTypeRepository) FindByID(ctx context.Context, id uint) (domain.AirplaneType, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return airplaneTypeDaoToDomain(found), nil
}

func (r *AirplaneTypeRepository) FindAll(ctx context.Context) ([]domain.AirplaneType, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	airplaneTypes := make([]domain.AirplaneType, 0, len(found))
	for _, t := range found {
		airplaneTypes = append(airplaneTypes, airplaneTypeDaoToDomain(t))
	}

	return airplaneTypes, nil
}

func (r *AirplaneTypeRepository) Update(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	updated, err := r.dao.Update(ctx, dao.AirplaneType{ID: airplaneType.ID, Name: airplaneType.Name})
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return airplaneTypeDaoToDomain(updated), nil
}

func (r *AirplaneTypeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

type AirplaneRepository struct {
	dao AirplaneDAO
}

func NewAirplaneRepository(dao AirplaneDAO) *AirplaneRepository {
	return &AirplaneRepository{
		dao: dao,
	}
}

func (r *AirplaneRepository) Create(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	created, err := r.dao.Insert(ctx, dao.Airplane{
		Name:           airplane.Name,
		Rows:           airplane.Rows,
		SeatsInRow:     airplane.SeatsInRow,
		AirplaneTypeID: airplane.AirplaneTypeID,
	})
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return airplaneDaoToDomain(created), nil
}

func (r *AirplaneRepository) FindByID(ctx context.Context, id uint) (domain.Airplane, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return airplaneDaoToDomain(found), nil
}

func (r *AirplaneRepository) FindAll(ctx context.Context, typeIDs []uint) ([]domain.Airplane, error) {
	found, err := r.dao.FindAll(ctx, typeIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	airplanes := make([]domain.Airplane, 0, len(found))
	for _, a := range found {
		airplanes = append(airplanes, airplaneDaoToDomain(a))
	}

	return airplanes, nil
}

func (r *AirplaneRepository) Update(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	updated, err := r.dao.Update(ctx, dao.Airplane{
		ID:             airplane.ID,
		Name:           airplane.Name,
		Rows:           airplane.Rows,
		SeatsInRow:     airplane.SeatsInRow,
		AirplaneTypeID: airplane.AirplaneTypeID,
	})
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return airplaneDaoToDomain(updated), nil
}

func (r *AirplaneRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func airplaneTypeDaoToDomain(t dao.AirplaneType) domain.AirplaneType {
	return domain.AirplaneType{
		ID:   t.ID,
		Name: t.Name,
	}
}

func airplaneDaoToDomain(a dao.Airplane) domain.Airplane {
	return domain.Airplane{
		ID:             a.ID,
		Name:           a.Name,
		Rows:           a.Rows,
		SeatsInRow:     a.SeatsInRow,
		AirplaneTypeID: a.AirplaneTypeID,
		AirplaneType:   airplaneTypeDaoToDomain(a.AirplaneType),
	}
}
