package domain

import "time"

// Ticket is a sold seat for a single performance. Tickets are append-only:
// once booked they are never updated or deleted.
type Ticket struct {
	ID            uint `json:"id"`
	Row           int  `json:"row"`
	Seat          int  `json:"seat"`
	PerformanceID uint `json:"performance_id"`
	ReservationID uint `json:"-"`

	// Performance is populated on reservation list reads.
	Performance *Performance `json:"performance,omitempty"`
}

// Reservation groups the tickets a user bought in one atomic purchase.
// A reservation always owns at least one ticket.
type Reservation struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

// TicketRequest is one desired seat in a booking attempt.
type TicketRequest struct {
	PerformanceID uint
	Row           int
	Seat          int
}
