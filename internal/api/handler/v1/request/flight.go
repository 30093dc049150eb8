package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errArrivalBeforeDeparture = errors.New("arrival_time must be after departure_time")

type FlightRequest struct {
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Route         uint      `json:"route"`
	Airplane      uint      `json:"airplane"`
	Crew          []uint    `json:"crew"`
}

func (req *FlightRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.DepartureTime, validation.Required),
		validation.Field(&req.ArrivalTime, validation.Required),
		validation.Field(&req.Route, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Airplane, validation.Required, validation.Min(uint(1))),
	)
	if err != nil {
		return err
	}

	if !req.ArrivalTime.After(req.DepartureTime) {
		return errArrivalBeforeDeparture
	}

	return nil
}
