package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/service"
)

type fakeFlightStore struct {
	flights []domain.Flight
	sold    map[uint]int
	taken   []domain.SeatPlace
}

func (f *fakeFlightStore) Create(_ context.Context, flight domain.Flight) (domain.Flight, error) {
	flight.ID = uint(len(f.flights) + 1)
	f.flights = append(f.flights, flight)

	return flight, nil
}

func (f *fakeFlightStore) FindByID(_ context.Context, id uint) (domain.Flight, error) {
	for _, flight := range f.flights {
		if flight.ID == id {
			return flight, nil
		}
	}

	return domain.Flight{}, service.ErrFlightNotFound
}

func (f *fakeFlightStore) FindAll(_ context.Context) ([]domain.Flight, error) {
	return f.flights, nil
}

func (f *fakeFlightStore) CountTicketsByFlight(_ context.Context) (map[uint]int, error) {
	return f.sold, nil
}

func (f *fakeFlightStore) FindTakenSeats(_ context.Context, _ uint) ([]domain.SeatPlace, error) {
	return f.taken, nil
}

func (f *fakeFlightStore) Update(_ context.Context, flight domain.Flight) (domain.Flight, error) {
	return flight, nil
}

func (f *fakeFlightStore) Delete(_ context.Context, _ uint) error {
	return nil
}

type fakeRouteStore struct{}

func (fakeRouteStore) FindByID(_ context.Context, id uint) (domain.Route, error) {
	return domain.Route{ID: id}, nil
}

type fakeAirplaneStore struct{}

func (fakeAirplaneStore) FindByID(_ context.Context, id uint) (domain.Airplane, error) {
	return domain.Airplane{ID: id, Rows: 10, SeatsInRow: 6}, nil
}

type fakeCrewStore struct{}

func (fakeCrewStore) FindByIDs(_ context.Context, ids []uint) ([]domain.Crew, error) {
	crew := make([]domain.Crew, 0, len(ids))
	for _, id := range ids {
		crew = append(crew, domain.Crew{ID: id})
	}

	return crew, nil
}

func TestFlightService_ListFlights(t *testing.T) {
	store := &fakeFlightStore{
		flights: []domain.Flight{
			{ID: 1, Airplane: domain.Airplane{Rows: 10, SeatsInRow: 10}},
			{ID: 2, Airplane: domain.Airplane{Rows: 2, SeatsInRow: 2}},
		},
		sold: map[uint]int{1: 3, 2: 4},
	}
	svc := service.NewFlightService(store, fakeRouteStore{}, fakeAirplaneStore{}, fakeCrewStore{})

	flights, err := svc.ListFlights(context.Background())

	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, 97, flights[0].TicketsAvailable)
	assert.Equal(t, 0, flights[1].TicketsAvailable)
}

func TestFlightService_GetFlight(t *testing.T) {
	store := &fakeFlightStore{
		flights: []domain.Flight{{ID: 1, Airplane: domain.Airplane{Rows: 5, SeatsInRow: 5}}},
		taken: []domain.SeatPlace{
			{Row: 1, Seat: 1},
			{Row: 2, Seat: 4},
		},
	}
	svc := service.NewFlightService(store, fakeRouteStore{}, fakeAirplaneStore{}, fakeCrewStore{})

	detail, err := svc.GetFlight(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, uint(1), detail.ID)
	assert.Equal(t, []domain.SeatPlace{{Row: 1, Seat: 1}, {Row: 2, Seat: 4}}, detail.TakenSeats)
}
