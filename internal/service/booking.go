package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stagedoor/theatre-api/internal/domain"
	"github.com/stagedoor/theatre-api/internal/repository"
)

var (
	ErrPerformanceNotFound = repository.ErrPerformanceNotFound
	ErrEmptyTicketList     = errors.New("ticket list must not be empty")
)

type BookingPerformanceRepository interface {
	FindPerformancesByIDs(ctx context.Context, ids []uint) ([]domain.Performance, error)
}

type BookingReservationRepository interface {
	CreateWithTickets(ctx context.Context, userID uint, requests []domain.TicketRequest) (domain.Reservation, error)
	FindByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.Reservation, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

// BookingService owns the reservation write path: it validates every
// requested seat against the hall grid, then hands the whole set to the
// repository for a single atomic insert. Range validation and uniqueness
// enforcement are independent; both must pass.
type BookingService struct {
	reservations BookingReservationRepository
	performances BookingPerformanceRepository
}

func NewBookingService(reservations BookingReservationRepository, performances BookingPerformanceRepository) *BookingService {
	return &BookingService{
		reservations: reservations,
		performances: performances,
	}
}

// ValidateTicket checks a candidate (row, seat) against the performance's
// hall. It is a pure check: same inputs always yield the same result. The
// hall boundaries themselves are valid (inclusive range).
func ValidateTicket(performance domain.Performance, row, seat int) error {
	hall := performance.TheatreHall

	if !hall.HasRow(row) {
		return domain.RangeError{Field: "row", Min: 1, Max: hall.Rows}
	}
	if !hall.HasSeat(seat) {
		return domain.RangeError{Field: "seat", Min: 1, Max: hall.SeatsInRow}
	}

	return nil
}

// CreateReservation books all requested seats for the user or none of them.
// Validation failures and unknown performances abort before any write; a
// concurrent double booking surfaces as domain.SeatTakenError after the
// database rolls the transaction back.
func (s *BookingService) CreateReservation(ctx context.Context, userID uint, requests []domain.TicketRequest) (domain.Reservation, error) {
	if len(requests) == 0 {
		return domain.Reservation{}, ErrEmptyTicketList
	}

	seen := make(map[uint]bool, len(requests))
	ids := make([]uint, 0, len(requests))
	for _, req := range requests {
		if !seen[req.PerformanceID] {
			seen[req.PerformanceID] = true
			ids = append(ids, req.PerformanceID)
		}
	}

	performances, err := s.performances.FindPerformancesByIDs(ctx, ids)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.performances.FindPerformancesByIDs -> %w", err)
	}

	byID := make(map[uint]domain.Performance, len(performances))
	for _, p := range performances {
		byID[p.ID] = p
	}

	for _, req := range requests {
		performance, ok := byID[req.PerformanceID]
		if !ok {
			return domain.Reservation{}, fmt.Errorf("performance %v: %w", req.PerformanceID, ErrPerformanceNotFound)
		}
		if err := ValidateTicket(performance, req.Row, req.Seat); err != nil {
			return domain.Reservation{}, err
		}
	}

	created, err := s.reservations.CreateWithTickets(ctx, userID, requests)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.reservations.CreateWithTickets -> %w", err)
	}

	return created, nil
}

// ListReservations returns one page of the user's reservations, newest
// first, together with the total count for pagination.
func (s *BookingService) ListReservations(ctx context.Context, userID uint, limit, offset int) ([]domain.Reservation, int64, error) {
	reservations, err := s.reservations.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("s.reservations.FindByUser -> %w", err)
	}

	total, err := s.reservations.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("s.reservations.CountByUser -> %w", err)
	}

	return reservations, total, nil
}
