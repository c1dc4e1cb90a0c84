package dao

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/theatre-api/internal/domain"
)

// seedPerformance creates a play, hall and performance to book against.
func seedPerformance(t *testing.T, rows, seatsInRow int) Performance {
	t.Helper()

	db := requireTestDB(t)
	theatreDAO := NewTheatreDAO(db)
	ctx := context.Background()

	play, err := theatreDAO.InsertPlay(ctx, Play{Title: "Hamlet"})
	require.NoError(t, err)

	hall, err := theatreDAO.InsertHall(ctx, TheatreHall{
		Name:       "Main Stage",
		Rows:       rows,
		SeatsInRow: seatsInRow,
	})
	require.NoError(t, err)

	performance, err := theatreDAO.InsertPerformance(ctx, Performance{
		PlayID:        play.ID,
		TheatreHallID: hall.ID,
		ShowTime:      time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return performance
}

func seedUser(t *testing.T, email string) User {
	t.Helper()

	db := requireTestDB(t)
	userDAO := NewUserDAO(db)

	user, err := userDAO.Insert(context.Background(), User{
		Email:    email,
		Password: "irrelevant-hash",
		Name:     "Test User",
	})
	require.NoError(t, err)

	return user
}

func TestReservationDAO_InsertWithTickets(t *testing.T) {
	db := requireTestDB(t)
	reservationDAO := NewReservationDAO(db)
	theatreDAO := NewTheatreDAO(db)
	ctx := context.Background()

	t.Run("creates reservation with all tickets", func(t *testing.T) {
		performance := seedPerformance(t, 20, 20)
		user := seedUser(t, "insert@example.com")

		created, err := reservationDAO.InsertWithTickets(ctx,
			Reservation{UserID: user.ID},
			[]Ticket{
				{PerformanceID: performance.ID, Row: 1, Seat: 1},
				{PerformanceID: performance.ID, Row: 1, Seat: 2},
			},
		)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		require.Len(t, created.Tickets, 2)
		for _, ticket := range created.Tickets {
			assert.Equal(t, created.ID, ticket.ReservationID)
		}

		counts, err := theatreDAO.CountTicketsByPerformance(ctx, []uint{performance.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts[performance.ID])
	})

	t.Run("duplicate seat returns SeatTakenError", func(t *testing.T) {
		performance := seedPerformance(t, 20, 20)
		user := seedUser(t, "duplicate@example.com")

		_, err := reservationDAO.InsertWithTickets(ctx,
			Reservation{UserID: user.ID},
			[]Ticket{{PerformanceID: performance.ID, Row: 5, Seat: 5}},
		)
		require.NoError(t, err)

		_, err = reservationDAO.InsertWithTickets(ctx,
			Reservation{UserID: user.ID},
			[]Ticket{{PerformanceID: performance.ID, Row: 5, Seat: 5}},
		)

		var takenErr domain.SeatTakenError
		require.ErrorAs(t, err, &takenErr)
		assert.Equal(t, performance.ID, takenErr.PerformanceID)
		assert.Equal(t, 5, takenErr.Row)
		assert.Equal(t, 5, takenErr.Seat)
	})

	t.Run("same seat in another performance is fine", func(t *testing.T) {
		first := seedPerformance(t, 20, 20)
		second := seedPerformance(t, 20, 20)
		user := seedUser(t, "two-shows@example.com")

		_, err := reservationDAO.InsertWithTickets(ctx,
			Reservation{UserID: user.ID},
			[]Ticket{{PerformanceID: first.ID, Row: 7, Seat: 7}},
		)
		require.NoError(t, err)

		_, err = reservationDAO.InsertWithTickets(ctx,
			Reservation{UserID: user.ID},
			[]Ticket{{PerformanceID: second.ID, Row: 7, Seat: 7}},
		)
		require.NoError(t, err)
	})

	t.Run("one conflicting ticket rolls back the whole reservation", func(t *testing.T) {
		performance := seedPerformance(t, 20, 20)
		user := seedUser(t, "rollback@example.com")

		_, err := reservationDAO.InsertWithTickets(ctx,
			Reservation{UserID: user.ID},
			[]Ticket{{PerformanceID: performance.ID, Row: 1, Seat: 1}},
		)
		require.NoError(t, err)

		before, err := reservationDAO.CountByUser(ctx, user.ID)
		require.NoError(t, err)

		_, err = reservationDAO.InsertWithTickets(ctx,
			Reservation{UserID: user.ID},
			[]Ticket{
				{PerformanceID: performance.ID, Row: 2, Seat: 1},
				{PerformanceID: performance.ID, Row: 2, Seat: 2},
				{PerformanceID: performance.ID, Row: 1, Seat: 1}, // already sold
			},
		)
		var takenErr domain.SeatTakenError
		require.ErrorAs(t, err, &takenErr)

		after, err := reservationDAO.CountByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after, "failed booking must not leave a reservation behind")

		counts, err := theatreDAO.CountTicketsByPerformance(ctx, []uint{performance.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[performance.ID], "no ticket from the failed batch may survive")
	})

	t.Run("concurrent bookings of the same seat produce one winner", func(t *testing.T) {
		performance := seedPerformance(t, 20, 20)
		alice := seedUser(t, "alice-race@example.com")
		bob := seedUser(t, "bob-race@example.com")

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, userID := range []uint{alice.ID, bob.ID} {
			wg.Add(1)
			go func(i int, userID uint) {
				defer wg.Done()
				_, errs[i] = reservationDAO.InsertWithTickets(ctx,
					Reservation{UserID: userID},
					[]Ticket{{PerformanceID: performance.ID, Row: 10, Seat: 10}},
				)
			}(i, userID)
		}
		wg.Wait()

		var successes, conflicts int
		for _, err := range errs {
			switch {
			case err == nil:
				successes++
			default:
				var takenErr domain.SeatTakenError
				require.ErrorAs(t, err, &takenErr)
				conflicts++
			}
		}
		assert.Equal(t, 1, successes, "exactly one booking wins the race")
		assert.Equal(t, 1, conflicts, "the loser gets a seat-taken error")

		counts, err := theatreDAO.CountTicketsByPerformance(ctx, []uint{performance.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[performance.ID])
	})
}

func TestReservationDAO_FindByUser(t *testing.T) {
	db := requireTestDB(t)
	reservationDAO := NewReservationDAO(db)
	ctx := context.Background()

	performance := seedPerformance(t, 20, 20)
	user := seedUser(t, "pagination@example.com")

	for seat := 1; seat <= 7; seat++ {
		_, err := reservationDAO.InsertWithTickets(ctx,
			Reservation{UserID: user.ID},
			[]Ticket{{PerformanceID: performance.ID, Row: 3, Seat: seat}},
		)
		require.NoError(t, err)
	}

	total, err := reservationDAO.CountByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	page, err := reservationDAO.FindByUser(ctx, user.ID, 5, 0)
	require.NoError(t, err)
	assert.Len(t, page, 5)

	rest, err := reservationDAO.FindByUser(ctx, user.ID, 5, 5)
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	require.NotEmpty(t, page[0].Tickets)
	loaded := page[0].Tickets[0].Performance
	assert.Equal(t, "Hamlet", loaded.Play.Title)
	assert.Equal(t, "Main Stage", loaded.TheatreHall.Name)
}

func TestTheatreDAO_Availability(t *testing.T) {
	db := requireTestDB(t)
	reservationDAO := NewReservationDAO(db)
	theatreDAO := NewTheatreDAO(db)
	ctx := context.Background()

	performance := seedPerformance(t, 20, 20)
	user := seedUser(t, "availability@example.com")

	_, err := reservationDAO.InsertWithTickets(ctx,
		Reservation{UserID: user.ID},
		[]Ticket{
			{PerformanceID: performance.ID, Row: 1, Seat: 1},
			{PerformanceID: performance.ID, Row: 1, Seat: 2},
		},
	)
	require.NoError(t, err)

	counts, err := theatreDAO.CountTicketsByPerformance(ctx, []uint{performance.ID})
	require.NoError(t, err)

	capacity := performance.TheatreHall.Rows * performance.TheatreHall.SeatsInRow
	assert.Equal(t, 398, capacity-int(counts[performance.ID]))

	taken, err := theatreDAO.FindTakenPlaces(ctx, performance.ID)
	require.NoError(t, err)
	require.Len(t, taken, 2)
	assert.Equal(t, 1, taken[0].Row)
	assert.Equal(t, 1, taken[0].Seat)
	assert.Equal(t, 2, taken[1].Seat)
}
