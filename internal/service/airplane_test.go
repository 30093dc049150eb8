package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository"
	"github.com/saywin/airport-api-service/internal/service"
)

type fakeAirplaneRepo struct {
	airplanes []domain.Airplane
}

func (f *fakeAirplaneRepo) Create(_ context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	airplane.ID = uint(len(f.airplanes) + 1)
	f.airplanes = append(f.airplanes, airplane)

	return airplane, nil
}

func (f *fakeAirplaneRepo) FindByID(_ context.Context, id uint) (domain.Airplane, error) {
	for _, a := range f.airplanes {
		if a.ID == id {
			return a, nil
		}
	}

	return domain.Airplane{}, repository.ErrAirplaneNotFound
}

func (f *fakeAirplaneRepo) FindAll(_ context.Context, typeIDs []uint) ([]domain.Airplane, error) {
	if len(typeIDs) == 0 {
		return f.airplanes, nil
	}

	var filtered []domain.Airplane
	for _, a := range f.airplanes {
		for _, id := range typeIDs {
			if a.AirplaneTypeID == id {
				filtered = append(filtered, a)
			}
		}
	}

	return filtered, nil
}

func (f *fakeAirplaneRepo) Update(_ context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	return airplane, nil
}

func (f *fakeAirplaneRepo) Delete(_ context.Context, _ uint) error {
	return nil
}

type fakeAirplaneTypeRepo struct {
	types map[uint]domain.AirplaneType
}

func (f *fakeAirplaneTypeRepo) Create(_ context.Context, t domain.AirplaneType) (domain.AirplaneType, error) {
	return t, nil
}

func (f *fakeAirplaneTypeRepo) FindByID(_ context.Context, id uint) (domain.AirplaneType, error) {
	t, ok := f.types[id]
	if !ok {
		return domain.AirplaneType{}, repository.ErrAirplaneTypeNotFound
	}

	return t, nil
}

func (f *fakeAirplaneTypeRepo) FindAll(_ context.Context) ([]domain.AirplaneType, error) {
	return nil, nil
}

func (f *fakeAirplaneTypeRepo) Update(_ context.Context, t domain.AirplaneType) (domain.AirplaneType, error) {
	return t, nil
}

func (f *fakeAirplaneTypeRepo) Delete(_ context.Context, _ uint) error {
	return nil
}

func TestAirplaneService_CreateAirplane(t *testing.T) {
	ctx := context.Background()
	types := &fakeAirplaneTypeRepo{types: map[uint]domain.AirplaneType{1: {ID: 1, Name: "Jet"}}}

	t.Run("valid airplane", func(t *testing.T) {
		repo := &fakeAirplaneRepo{}
		svc := service.NewAirplaneService(repo, types)

		created, err := svc.CreateAirplane(ctx, domain.Airplane{
			Name:           "Blue 1",
			Rows:           30,
			SeatsInRow:     6,
			AirplaneTypeID: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, 180, created.Capacity())
	})

	t.Run("rejects non-positive seat grid", func(t *testing.T) {
		repo := &fakeAirplaneRepo{}
		svc := service.NewAirplaneService(repo, types)

		for _, grid := range [][2]int{{0, 6}, {30, 0}, {-1, -1}} {
			_, err := svc.CreateAirplane(ctx, domain.Airplane{
				Name:           "Broken",
				Rows:           grid[0],
				SeatsInRow:     grid[1],
				AirplaneTypeID: 1,
			})

			assert.ErrorIs(t, err, service.ErrInvalidSeatGrid)
		}
		assert.Empty(t, repo.airplanes)
	})

	t.Run("rejects unknown airplane type", func(t *testing.T) {
		repo := &fakeAirplaneRepo{}
		svc := service.NewAirplaneService(repo, types)

		_, err := svc.CreateAirplane(ctx, domain.Airplane{
			Name:           "Orphan",
			Rows:           10,
			SeatsInRow:     4,
			AirplaneTypeID: 99,
		})

		assert.ErrorIs(t, err, service.ErrAirplaneTypeNotFound)
	})
}
