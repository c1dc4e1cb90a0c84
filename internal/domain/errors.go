package domain

import "fmt"

// RangeError reports a ticket row or seat outside the hall's grid. Field is
// "row" or "seat"; Min and Max describe the valid inclusive range.
type RangeError struct {
	Field string
	Min   int
	Max   int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("%v number must be in available range: (%v, %v)", e.Field, e.Min, e.Max)
}

// SeatTakenError reports that a ticket for the (performance, row, seat)
// triple already exists. The losing side of a concurrent booking race
// receives this error.
type SeatTakenError struct {
	PerformanceID uint
	Row           int
	Seat          int
}

func (e SeatTakenError) Error() string {
	return fmt.Sprintf(
		"seat already taken: performance %v, row %v, seat %v",
		e.PerformanceID, e.Row, e.Seat,
	)
}
