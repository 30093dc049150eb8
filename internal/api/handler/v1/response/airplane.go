package response

import "github.com/saywin/airport-api-service/internal/domain"

// AirplaneList flattens the type to its name, for list views.
type AirplaneList struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType string `json:"airplane_type"`
}

func NewAirplaneList(airplane domain.Airplane) AirplaneList {
	return AirplaneList{
		ID:           airplane.ID,
		Name:         airplane.Name,
		Rows:         airplane.Rows,
		SeatsInRow:   airplane.SeatsInRow,
		AirplaneType: airplane.AirplaneType.Name,
	}
}

func NewAirplaneLists(airplanes []domain.Airplane) []AirplaneList {
	out := make([]AirplaneList, 0, len(airplanes))
	for _, a := range airplanes {
		out = append(out, NewAirplaneList(a))
	}

	return out
}
