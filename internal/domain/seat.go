package domain

import (
	"fmt"
	"sort"
	"strings"
)

// SeatError reports why a (row, seat) pair does not fit an airplane's seat
// grid. Fields holds one message per offending coordinate, keyed by "row"
// or "seat", so callers can surface field-level validation messages.
type SeatError struct {
	Fields map[string]string
}

func (e *SeatError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}

	return strings.Join(msgs, "; ")
}

// ValidateSeat checks a ticket coordinate against the legal seat grid
// [1..rows] x [1..seatsInRow]. Row and seat are judged independently and
// both are reported when both are out of range.
func ValidateSeat(row, seat, rows, seatsInRow int) error {
	fields := map[string]string{}

	if row < 1 || row > rows {
		fields["row"] = fmt.Sprintf("row must be between 1 and %d", rows)
	}
	if seat < 1 || seat > seatsInRow {
		fields["seat"] = fmt.Sprintf("seat must be between 1 and %d", seatsInRow)
	}

	if len(fields) > 0 {
		return &SeatError{Fields: fields}
	}

	return nil
}

// TicketsAvailable is the number of seats still sellable on a flight:
// grid capacity minus committed tickets. The result is deliberately not
// clamped, so an oversold flight shows up as a negative number instead of
// being masked as zero.
func TicketsAvailable(rows, seatsInRow, sold int) int {
	return rows*seatsInRow - sold
}
