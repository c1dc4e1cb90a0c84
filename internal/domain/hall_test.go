package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheatreHall_Capacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hall TheatreHall
		want int
	}{
		{
			name: "20x20 hall",
			hall: TheatreHall{Rows: 20, SeatsInRow: 20},
			want: 400,
		},
		{
			name: "single seat",
			hall: TheatreHall{Rows: 1, SeatsInRow: 1},
			want: 1,
		},
		{
			name: "asymmetric grid",
			hall: TheatreHall{Rows: 15, SeatsInRow: 30},
			want: 450,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hall.Capacity())
		})
	}
}

func TestTheatreHall_HasRow(t *testing.T) {
	t.Parallel()

	hall := TheatreHall{Rows: 20, SeatsInRow: 30}

	assert.True(t, hall.HasRow(1))
	assert.True(t, hall.HasRow(20))
	assert.False(t, hall.HasRow(0))
	assert.False(t, hall.HasRow(21))
	assert.False(t, hall.HasRow(-3))
}

func TestTheatreHall_HasSeat(t *testing.T) {
	t.Parallel()

	hall := TheatreHall{Rows: 20, SeatsInRow: 30}

	assert.True(t, hall.HasSeat(1))
	assert.True(t, hall.HasSeat(30))
	assert.False(t, hall.HasSeat(0))
	assert.False(t, hall.HasSeat(31))
}
