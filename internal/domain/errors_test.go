package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeError_Error(t *testing.T) {
	t.Parallel()

	err := RangeError{Field: "row", Min: 1, Max: 20}
	assert.Equal(t, "row number must be in available range: (1, 20)", err.Error())

	err = RangeError{Field: "seat", Min: 1, Max: 30}
	assert.Equal(t, "seat number must be in available range: (1, 30)", err.Error())
}

func TestSeatTakenError_Error(t *testing.T) {
	t.Parallel()

	err := SeatTakenError{PerformanceID: 7, Row: 3, Seat: 12}
	assert.Equal(t, "seat already taken: performance 7, row 3, seat 12", err.Error())
}
