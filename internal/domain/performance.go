package domain

import "time"

// Performance is a scheduled showing of a play in a hall. Its seating
// capacity is inherited from the hall; several performances may share one.
type Performance struct {
	ID          uint        `json:"id"`
	Play        Play        `json:"play"`
	TheatreHall TheatreHall `json:"theatre_hall"`
	ShowTime    time.Time   `json:"show_time"`

	// TicketsAvailable is populated on list reads only; it is an advisory
	// snapshot and may be stale relative to bookings in flight.
	TicketsAvailable int `json:"tickets_available"`
}

// TakenPlace is a seat already sold for a performance.
type TakenPlace struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// PerformanceFilter narrows performance listings. Zero values mean "no
// filter". Date matches the calendar day of the show time.
type PerformanceFilter struct {
	Date   time.Time
	PlayID uint
}
