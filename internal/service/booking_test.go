package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/theatre-api/internal/domain"
)

type fakePerformanceRepo struct {
	performances map[uint]domain.Performance
}

func (f *fakePerformanceRepo) FindPerformancesByIDs(_ context.Context, ids []uint) ([]domain.Performance, error) {
	var found []domain.Performance
	for _, id := range ids {
		if p, ok := f.performances[id]; ok {
			found = append(found, p)
		}
	}

	return found, nil
}

type fakeReservationRepo struct {
	createCalls  int
	createErr    error
	reservations []domain.Reservation
	nextID       uint
}

func (f *fakeReservationRepo) CreateWithTickets(_ context.Context, userID uint, requests []domain.TicketRequest) (domain.Reservation, error) {
	f.createCalls++
	if f.createErr != nil {
		return domain.Reservation{}, f.createErr
	}

	f.nextID++
	res := domain.Reservation{ID: f.nextID, UserID: userID}
	for i, req := range requests {
		res.Tickets = append(res.Tickets, domain.Ticket{
			ID:            f.nextID*100 + uint(i),
			Row:           req.Row,
			Seat:          req.Seat,
			PerformanceID: req.PerformanceID,
		})
	}
	f.reservations = append(f.reservations, res)

	return res, nil
}

func (f *fakeReservationRepo) FindByUser(_ context.Context, userID uint, limit, offset int) ([]domain.Reservation, error) {
	var mine []domain.Reservation
	for _, res := range f.reservations {
		if res.UserID == userID {
			mine = append(mine, res)
		}
	}
	if offset >= len(mine) {
		return nil, nil
	}
	mine = mine[offset:]
	if limit < len(mine) {
		mine = mine[:limit]
	}

	return mine, nil
}

func (f *fakeReservationRepo) CountByUser(_ context.Context, userID uint) (int64, error) {
	var total int64
	for _, res := range f.reservations {
		if res.UserID == userID {
			total++
		}
	}

	return total, nil
}

func smallHallPerformance(id uint) domain.Performance {
	return domain.Performance{
		ID:          id,
		TheatreHall: domain.TheatreHall{ID: 1, Name: "Main Stage", Rows: 20, SeatsInRow: 20},
	}
}

func TestValidateTicket(t *testing.T) {
	t.Parallel()

	performance := smallHallPerformance(1)

	tests := []struct {
		name    string
		row     int
		seat    int
		wantErr error
	}{
		{
			name: "valid seat",
			row:  5,
			seat: 5,
		},
		{
			name: "boundary seats are valid",
			row:  20,
			seat: 20,
		},
		{
			name: "first row first seat is valid",
			row:  1,
			seat: 1,
		},
		{
			name:    "row above range",
			row:     21,
			seat:    5,
			wantErr: domain.RangeError{Field: "row", Min: 1, Max: 20},
		},
		{
			name:    "row zero",
			row:     0,
			seat:    5,
			wantErr: domain.RangeError{Field: "row", Min: 1, Max: 20},
		},
		{
			name:    "negative row",
			row:     -1,
			seat:    5,
			wantErr: domain.RangeError{Field: "row", Min: 1, Max: 20},
		},
		{
			name:    "seat above range",
			row:     5,
			seat:    21,
			wantErr: domain.RangeError{Field: "seat", Min: 1, Max: 20},
		},
		{
			name:    "seat zero",
			row:     5,
			seat:    0,
			wantErr: domain.RangeError{Field: "seat", Min: 1, Max: 20},
		},
		{
			name:    "row checked before seat",
			row:     0,
			seat:    0,
			wantErr: domain.RangeError{Field: "row", Min: 1, Max: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTicket(performance, tt.row, tt.seat)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantErr, err)
			}
		})
	}
}

func TestValidateTicket_Deterministic(t *testing.T) {
	t.Parallel()

	performance := smallHallPerformance(1)

	first := ValidateTicket(performance, 21, 5)
	second := ValidateTicket(performance, 21, 5)
	assert.Equal(t, first, second)

	assert.NoError(t, ValidateTicket(performance, 10, 10))
	assert.NoError(t, ValidateTicket(performance, 10, 10))
}

func TestBookingService_CreateReservation(t *testing.T) {
	t.Parallel()

	t.Run("books all requested seats", func(t *testing.T) {
		performances := &fakePerformanceRepo{performances: map[uint]domain.Performance{
			1: smallHallPerformance(1),
		}}
		reservations := &fakeReservationRepo{}
		svc := NewBookingService(reservations, performances)

		res, err := svc.CreateReservation(context.Background(), 42, []domain.TicketRequest{
			{PerformanceID: 1, Row: 1, Seat: 1},
			{PerformanceID: 1, Row: 1, Seat: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(42), res.UserID)
		assert.Len(t, res.Tickets, 2)
		assert.Equal(t, 1, reservations.createCalls)
	})

	t.Run("empty ticket list is rejected", func(t *testing.T) {
		performances := &fakePerformanceRepo{performances: map[uint]domain.Performance{}}
		reservations := &fakeReservationRepo{}
		svc := NewBookingService(reservations, performances)

		_, err := svc.CreateReservation(context.Background(), 42, nil)
		assert.ErrorIs(t, err, ErrEmptyTicketList)
		assert.Zero(t, reservations.createCalls)
	})

	t.Run("unknown performance aborts before any write", func(t *testing.T) {
		performances := &fakePerformanceRepo{performances: map[uint]domain.Performance{
			1: smallHallPerformance(1),
		}}
		reservations := &fakeReservationRepo{}
		svc := NewBookingService(reservations, performances)

		_, err := svc.CreateReservation(context.Background(), 42, []domain.TicketRequest{
			{PerformanceID: 1, Row: 1, Seat: 1},
			{PerformanceID: 99, Row: 1, Seat: 2},
		})
		assert.ErrorIs(t, err, ErrPerformanceNotFound)
		assert.Contains(t, err.Error(), "99")
		assert.Zero(t, reservations.createCalls)
	})

	t.Run("one invalid seat rejects the whole batch", func(t *testing.T) {
		performances := &fakePerformanceRepo{performances: map[uint]domain.Performance{
			1: smallHallPerformance(1),
		}}
		reservations := &fakeReservationRepo{}
		svc := NewBookingService(reservations, performances)

		_, err := svc.CreateReservation(context.Background(), 42, []domain.TicketRequest{
			{PerformanceID: 1, Row: 1, Seat: 1},
			{PerformanceID: 1, Row: 2, Seat: 2},
			{PerformanceID: 1, Row: 21, Seat: 3},
		})

		var rangeErr domain.RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "row", rangeErr.Field)
		assert.Equal(t, 1, rangeErr.Min)
		assert.Equal(t, 20, rangeErr.Max)
		assert.Zero(t, reservations.createCalls, "no persistence call when validation fails")
	})

	t.Run("seat conflict from storage surfaces unchanged", func(t *testing.T) {
		performances := &fakePerformanceRepo{performances: map[uint]domain.Performance{
			1: smallHallPerformance(1),
		}}
		reservations := &fakeReservationRepo{
			createErr: domain.SeatTakenError{PerformanceID: 1, Row: 1, Seat: 1},
		}
		svc := NewBookingService(reservations, performances)

		_, err := svc.CreateReservation(context.Background(), 42, []domain.TicketRequest{
			{PerformanceID: 1, Row: 1, Seat: 1},
		})

		var takenErr domain.SeatTakenError
		require.ErrorAs(t, err, &takenErr)
		assert.Equal(t, uint(1), takenErr.PerformanceID)
		assert.Equal(t, 1, takenErr.Row)
		assert.Equal(t, 1, takenErr.Seat)
	})

	t.Run("tickets across several performances validate against each hall", func(t *testing.T) {
		wide := domain.Performance{
			ID:          2,
			TheatreHall: domain.TheatreHall{ID: 2, Name: "Grand Hall", Rows: 5, SeatsInRow: 50},
		}
		performances := &fakePerformanceRepo{performances: map[uint]domain.Performance{
			1: smallHallPerformance(1),
			2: wide,
		}}
		reservations := &fakeReservationRepo{}
		svc := NewBookingService(reservations, performances)

		// Row 10 fits hall 1 but not hall 2.
		_, err := svc.CreateReservation(context.Background(), 42, []domain.TicketRequest{
			{PerformanceID: 1, Row: 10, Seat: 10},
			{PerformanceID: 2, Row: 10, Seat: 10},
		})

		var rangeErr domain.RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "row", rangeErr.Field)
		assert.Equal(t, 5, rangeErr.Max)
		assert.Zero(t, reservations.createCalls)
	})
}

func TestBookingService_ListReservations(t *testing.T) {
	t.Parallel()

	performances := &fakePerformanceRepo{performances: map[uint]domain.Performance{
		1: smallHallPerformance(1),
	}}
	reservations := &fakeReservationRepo{}
	svc := NewBookingService(reservations, performances)

	for i := 0; i < 7; i++ {
		_, err := svc.CreateReservation(context.Background(), 42, []domain.TicketRequest{
			{PerformanceID: 1, Row: 1, Seat: i + 1},
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateReservation(context.Background(), 7, []domain.TicketRequest{
		{PerformanceID: 1, Row: 2, Seat: 1},
	})
	require.NoError(t, err)

	page, total, err := svc.ListReservations(context.Background(), 42, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total, "count covers all of the user's reservations, not the page")
	assert.Len(t, page, 5)

	page, total, err = svc.ListReservations(context.Background(), 42, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, page, 2)

	page, total, err = svc.ListReservations(context.Background(), 1000, 5, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, page)
}

func TestBookingService_CreateReservation_WrapsRepoErrors(t *testing.T) {
	t.Parallel()

	performances := &fakePerformanceRepo{performances: map[uint]domain.Performance{
		1: smallHallPerformance(1),
	}}
	repoErr := errors.New("connection reset")
	reservations := &fakeReservationRepo{createErr: repoErr}
	svc := NewBookingService(reservations, performances)

	_, err := svc.CreateReservation(context.Background(), 42, []domain.TicketRequest{
		{PerformanceID: 1, Row: 1, Seat: 1},
	})
	assert.ErrorIs(t, err, repoErr)
}
