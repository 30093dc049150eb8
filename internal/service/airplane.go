package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository"
)

var (
	ErrAirplaneTypeNotFound = repository.ErrAirplaneTypeNotFound
	ErrAirplaneNotFound     = repository.ErrAirplaneNotFound
	ErrInvalidSeatGrid      = errors.New("rows and seats_in_row must both be positive")
)

type AirplaneTypeRepository interface {
	Create(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	FindByID(ctx context.Context, id uint) (domain.AirplaneType, error)
	FindAll(ctx context.Context) ([]domain.AirplaneType, error)
	Update(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	Delete(ctx context.Context, id uint) error
}

type AirplaneRepository interface {
	Create(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	FindByID(ctx context.Context, id uint) (domain.Airplane, error)
	FindAll(ctx context.Context, typeIDs []uint) ([]domain.Airplane, error)
	Update(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	Delete(ctx context.Context, id uint) error
}

type AirplaneService struct {
	repo     AirplaneRepository
	typeRepo AirplaneTypeRepository
}

func NewAirplaneService(repo AirplaneRepository, typeRepo AirplaneTypeRepository) *AirplaneService {
	return &AirplaneService{
		repo:     repo,
		typeRepo: typeRepo,
	}
}

func (s *AirplaneService) CreateAirplaneType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	created, err := s.typeRepo.Create(ctx, airplaneType)
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("s.typeRepo.Create -> %w", err)
	}

	return created, nil
}

func (s *AirplaneService) GetAirplaneType(ctx context.Context, id uint) (domain.AirplaneType, error) {
	airplaneType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("s.typeRepo.FindByID -> %w", err)
	}

	return airplaneType, nil
}

func (s *AirplaneService) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	airplaneTypes, err := s.typeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.typeRepo.FindAll -> %w", err)
	}

	return airplaneTypes, nil
}

func (s *AirplaneService) UpdateAirplaneType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	updated, err := s.typeRepo.Update(ctx, airplaneType)
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("s.typeRepo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AirplaneService) DeleteAirplaneType(ctx context.Context, id uint) error {
	if err := s.typeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.typeRepo.Delete -> %w", err)
	}

	return nil
}

func (s *AirplaneService) CreateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	if airplane.Rows < 1 || airplane.SeatsInRow < 1 {
		return domain.Airplane{}, ErrInvalidSeatGrid
	}

	if _, err := s.typeRepo.FindByID(ctx, airplane.AirplaneTypeID); err != nil {
		if errors.Is(err, repository.ErrAirplaneTypeNotFound) {
			return domain.Airplane{}, ErrAirplaneTypeNotFound
		}

		return domain.Airplane{}, fmt.Errorf("s.typeRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, airplane)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AirplaneService) GetAirplane(ctx context.Context, id uint) (domain.Airplane, error) {
	airplane, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return airplane, nil
}

// ListAirplanes narrows the listing to the given airplane type IDs when
// the slice is non-empty.
func (s *AirplaneService) ListAirplanes(ctx context.Context, typeIDs []uint) ([]domain.Airplane, error) {
	airplanes, err := s.repo.FindAll(ctx, typeIDs)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return airplanes, nil
}

func (s *AirplaneService) UpdateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	if airplane.Rows < 1 || airplane.SeatsInRow < 1 {
		return domain.Airplane{}, ErrInvalidSeatGrid
	}

	updated, err := s.repo.Update(ctx, airplane)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AirplaneService) DeleteAirplane(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
