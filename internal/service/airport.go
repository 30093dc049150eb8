package service

import (
	"context"
	"fmt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository"
)

var ErrAirportNotFound = repository.ErrAirportNotFound

type AirportRepository interface {
	Create(ctx context.Context, airport domain.Airport) (domain.Airport, error)
	FindByID(ctx context.Context, id uint) (domain.Airport, error)
	FindAll(ctx context.Context) ([]domain.Airport, error)
	Update(ctx context.Context, airport domain.Airport) (domain.Airport, error)
	Delete(ctx context.Context, id uint) error
}

type AirportService struct {
	repo AirportRepository
}

func NewAirportService(repo AirportRepository) *AirportService {
	return &AirportService{
		repo: repo,
	}
}

func (s *AirportService) CreateAirport(ctx context.Context, airport domain.Airport) (domain.Airport, error) {
	created, err := s.repo.Create(ctx, airport)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AirportService) GetAirport(ctx context.Context, id uint) (domain.Airport, error) {
	airport, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return airport, nil
}

func (s *AirportService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	airports, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return airports, nil
}

func (s *AirportService) UpdateAirport(ctx context.Context, airport domain.Airport) (domain.Airport, error) {
	updated, err := s.repo.Update(ctx, airport)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AirportService) DeleteAirport(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
