package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AirplaneTypeRequest struct {
	Name string `json:"name"`
}

func (req *AirplaneTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type AirplaneRequest struct {
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType uint   `json:"airplane_type"`
}

func (req *AirplaneRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Rows, validation.Required, validation.Min(1)),
		validation.Field(&req.SeatsInRow, validation.Required, validation.Min(1)),
		validation.Field(&req.AirplaneType, validation.Required, validation.Min(uint(1))),
	)
}
