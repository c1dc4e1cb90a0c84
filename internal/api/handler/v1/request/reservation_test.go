package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateReservationRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		req := CreateReservationRequest{Tickets: []TicketRequest{
			{PerformanceID: 1, Row: 1, Seat: 1},
			{PerformanceID: 1, Row: 1, Seat: 2},
		}}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing ticket list", func(t *testing.T) {
		req := CreateReservationRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("empty ticket list", func(t *testing.T) {
		req := CreateReservationRequest{Tickets: []TicketRequest{}}
		assert.Error(t, req.Validate())
	})

	t.Run("ticket without performance", func(t *testing.T) {
		req := CreateReservationRequest{Tickets: []TicketRequest{
			{Row: 1, Seat: 1},
		}}
		assert.Error(t, req.Validate())
	})

	t.Run("row and seat bounds are not checked here", func(t *testing.T) {
		// The booking service owns grid validation; the request only needs a
		// performance reference.
		req := CreateReservationRequest{Tickets: []TicketRequest{
			{PerformanceID: 1, Row: 0, Seat: -5},
		}}
		assert.NoError(t, req.Validate())
	})
}

func TestCreateHallRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&CreateHallRequest{Name: "Main Stage", Rows: 20, SeatsInRow: 20}).Validate())
	assert.Error(t, (&CreateHallRequest{Rows: 20, SeatsInRow: 20}).Validate())
	assert.Error(t, (&CreateHallRequest{Name: "Main Stage", Rows: 0, SeatsInRow: 20}).Validate())
	assert.Error(t, (&CreateHallRequest{Name: "Main Stage", Rows: 20, SeatsInRow: -1}).Validate())
}

func TestCreatePerformanceRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreatePerformanceRequest{PlayID: 1, TheatreHallID: 1, ShowTime: "2026-03-14T19:30:00Z"}
	assert.NoError(t, valid.Validate())

	missingTime := CreatePerformanceRequest{PlayID: 1, TheatreHallID: 1}
	assert.Error(t, missingTime.Validate())

	badTime := CreatePerformanceRequest{PlayID: 1, TheatreHallID: 1, ShowTime: "tomorrow evening"}
	assert.Error(t, badTime.Validate())
}
