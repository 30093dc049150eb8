package repository

import (
	"context"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository/dao"
)

var ErrCrewNotFound = dao.ErrCrewNotFound

type CrewDAO interface {
	Insert(ctx context.Context, crew dao.Crew) (dao.Crew, error)
	FindByID(ctx context.Context, id uint) (dao.Crew, error)
	FindAll(ctx context.Context) ([]dao.Crew, error)
	FindByIDs(ctx context.Context, ids []uint) ([]dao.Crew, error)
	Update(ctx context.Context, crew dao.Crew) (dao.Crew, error)
	Delete(ctx context.Context, id uint) error
}

type CrewRepository struct {
	dao CrewDAO
}

func NewCrewRepository(dao CrewDAO) *CrewRepository {
	return &CrewRepository{
		dao: dao,
	}
}

func (r *CrewRepository) Create(ctx context.Context, crew domain.Crew) (domain.Crew, error) {
	created, err := r.dao.Insert(ctx, dao.Crew{
		FirstName: crew.FirstName,
		LastName:  crew.LastName,
	})
	if err != nil {
		return domain.Crew{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return crewDaoToDomain(created), nil
}

func (r *CrewRepository) FindByID(ctx context.Context, id uint) (domain.Crew, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Crew{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return crewDaoToDomain(found), nil
}

func (r *CrewRepository) FindAll(ctx context.Context) ([]domain.Crew, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	crew := make([]domain.Crew, 0, len(found))
	for _, c := range found {
		crew = append(crew, crewDaoToDomain(c))
	}

	return crew, nil
}

func (r *CrewRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Crew, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	crew := make([]domain.Crew, 0, len(found))
	for _, c := range found {
		crew = append(crew, crewDaoToDomain(c))
	}

	return crew, nil
}

func (r *CrewRepository) Update(ctx context.Context, crew domain.Crew) (domain.Crew, error) {
	updated, err := r.dao.Update(ctx, dao.Crew{
		ID:        crew.ID,
		FirstName: crew.FirstName,
		LastName:  crew.LastName,
	})
	if err != nil {
		return domain.Crew{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return crewDaoToDomain(updated), nil
}

func (r *CrewRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func crewDaoToDomain(c dao.Crew) domain.Crew {
	return domain.Crew{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}
