package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saywin/airport-api-service/internal/domain"
)

func TestValidateSeat(t *testing.T) {
	const rows, seatsInRow = 30, 6

	t.Run("accepts all boundary positions", func(t *testing.T) {
		for _, place := range []domain.SeatPlace{
			{Row: 1, Seat: 1},
			{Row: 1, Seat: seatsInRow},
			{Row: rows, Seat: 1},
			{Row: rows, Seat: seatsInRow},
		} {
			assert.NoError(t, domain.ValidateSeat(place.Row, place.Seat, rows, seatsInRow))
		}
	})

	t.Run("rejects out-of-range row", func(t *testing.T) {
		for _, row := range []int{0, -1, rows + 1} {
			err := domain.ValidateSeat(row, 1, rows, seatsInRow)
			require.Error(t, err)

			var seatErr *domain.SeatError
			require.ErrorAs(t, err, &seatErr)
			assert.Equal(t, "row must be between 1 and 30", seatErr.Fields["row"])
			assert.NotContains(t, seatErr.Fields, "seat")
		}
	})

	t.Run("rejects out-of-range seat", func(t *testing.T) {
		for _, seat := range []int{0, -1, seatsInRow + 1} {
			err := domain.ValidateSeat(1, seat, rows, seatsInRow)
			require.Error(t, err)

			var seatErr *domain.SeatError
			require.ErrorAs(t, err, &seatErr)
			assert.Equal(t, "seat must be between 1 and 6", seatErr.Fields["seat"])
			assert.NotContains(t, seatErr.Fields, "row")
		}
	})

	t.Run("reports both violations independently", func(t *testing.T) {
		err := domain.ValidateSeat(0, 99, rows, seatsInRow)
		require.Error(t, err)

		var seatErr *domain.SeatError
		require.ErrorAs(t, err, &seatErr)
		assert.Len(t, seatErr.Fields, 2)
	})
}

func TestTicketsAvailable(t *testing.T) {
	t.Run("empty flight has full capacity", func(t *testing.T) {
		assert.Equal(t, 100, domain.TicketsAvailable(10, 10, 0))
	})

	t.Run("full flight has zero availability", func(t *testing.T) {
		assert.Equal(t, 0, domain.TicketsAvailable(10, 10, 100))
	})

	t.Run("partially sold flight", func(t *testing.T) {
		assert.Equal(t, 97, domain.TicketsAvailable(10, 10, 3))
	})
}
