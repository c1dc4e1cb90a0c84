package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type TicketRequest struct {
	PerformanceID uint `json:"performance_id"`
	Row           int  `json:"row"`
	Seat          int  `json:"seat"`
}

func (req TicketRequest) Validate() error {
	// Row and seat bounds are checked against the hall grid by the booking
	// service, which knows the valid range; only the reference is required
	// here.
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.PerformanceID, validation.Required, validation.Min(uint(1))),
	)
}

type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets"`
}

func (req *CreateReservationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Tickets, validation.Required, validation.Length(1, 0)),
	)
}
