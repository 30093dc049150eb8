package response

import (
	"time"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/service"
)

// FlightList is the list view: airport and crew names flattened, plus
// the computed number of tickets still available.
type FlightList struct {
	ID               uint      `json:"id"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Route            RouteList `json:"route"`
	Airplane         string    `json:"airplane"`
	Crew             []string  `json:"crew"`
	TicketsAvailable int       `json:"tickets_available"`
}

// FlightDetail is the retrieve view: full nested objects and the literal
// taken seats instead of an availability number.
type FlightDetail struct {
	ID            uint               `json:"id"`
	DepartureTime time.Time          `json:"departure_time"`
	ArrivalTime   time.Time          `json:"arrival_time"`
	Route         RouteList          `json:"route"`
	Airplane      domain.Airplane    `json:"airplane"`
	Crew          []Crew             `json:"crew"`
	TakenSeats    []domain.SeatPlace `json:"taken_seats"`
}

// FlightSummary is the compact form nested inside order tickets.
type FlightSummary struct {
	ID            uint      `json:"id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Route         RouteList `json:"route"`
	Airplane      string    `json:"airplane"`
}

func NewFlightList(f service.FlightWithAvailability) FlightList {
	crew := make([]string, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, c.FullName())
	}

	return FlightList{
		ID:               f.ID,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		Route:            NewRouteList(f.Route),
		Airplane:         f.Airplane.Name,
		Crew:             crew,
		TicketsAvailable: f.TicketsAvailable,
	}
}

func NewFlightLists(flights []service.FlightWithAvailability) []FlightList {
	out := make([]FlightList, 0, len(flights))
	for _, f := range flights {
		out = append(out, NewFlightList(f))
	}

	return out
}

func NewFlightDetail(f service.FlightDetail) FlightDetail {
	crew := make([]Crew, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, NewCrew(c))
	}

	taken := f.TakenSeats
	if taken == nil {
		taken = []domain.SeatPlace{}
	}

	return FlightDetail{
		ID:            f.ID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Route:         NewRouteList(f.Route),
		Airplane:      f.Airplane,
		Crew:          crew,
		TakenSeats:    taken,
	}
}

func NewFlightSummary(f domain.Flight) FlightSummary {
	return FlightSummary{
		ID:            f.ID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Route:         NewRouteList(f.Route),
		Airplane:      f.Airplane.Name,
	}
}
