package domain

// TheatreHall is a physical venue with a fixed grid of seats: Rows rows,
// each with SeatsInRow seats. Both counts are positive and never change
// after the hall is created.
type TheatreHall struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
}

// Capacity is the total number of seats in the hall.
func (h TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

// HasRow reports whether row is a valid 1-based row number. The upper
// boundary is inclusive.
func (h TheatreHall) HasRow(row int) bool {
	return row >= 1 && row <= h.Rows
}

// HasSeat reports whether seat is a valid 1-based seat number within a row.
func (h TheatreHall) HasSeat(seat int) bool {
	return seat >= 1 && seat <= h.SeatsInRow
}
