package domain

type AirplaneType struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Airplane carries the seat-grid configuration every ticket is validated
// against: rows and seats per row are both 1-based and must be positive.
type Airplane struct {
	ID             uint         `json:"id"`
	Name           string       `json:"name"`
	Rows           int          `json:"rows"`
	SeatsInRow     int          `json:"seats_in_row"`
	AirplaneTypeID uint         `json:"airplane_type_id"`
	AirplaneType   AirplaneType `json:"airplane_type"`
}

// Capacity is the total number of sellable seats on the airplane.
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}
