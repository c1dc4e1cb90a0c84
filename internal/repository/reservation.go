package repository

import (
	"context"
	"fmt"

	"github.com/stagedoor/theatre-api/internal/domain"
	"github.com/stagedoor/theatre-api/internal/repository/dao"
)

type ReservationDAO interface {
	InsertWithTickets(ctx context.Context, reservation dao.Reservation, tickets []dao.Ticket) (dao.Reservation, error)
	FindByUser(ctx context.Context, userID uint, limit, offset int) ([]dao.Reservation, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type ReservationRepository struct {
	dao ReservationDAO
}

func NewReservationRepository(dao ReservationDAO) *ReservationRepository {
	return &ReservationRepository{
		dao: dao,
	}
}

// CreateWithTickets persists a reservation and its tickets atomically. The
// returned error is a domain.SeatTakenError when the unique index rejects a
// ticket; in that case nothing was persisted.
func (r *ReservationRepository) CreateWithTickets(ctx context.Context, userID uint, requests []domain.TicketRequest) (domain.Reservation, error) {
	tickets := make([]dao.Ticket, len(requests))
	for i, req := range requests {
		tickets[i] = dao.Ticket{
			PerformanceID: req.PerformanceID,
			Row:           req.Row,
			Seat:          req.Seat,
		}
	}

	created, err := r.dao.InsertWithTickets(ctx, dao.Reservation{UserID: userID}, tickets)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.InsertWithTickets -> %w", err)
	}

	return reservationDaoToDomain(created), nil
}

func (r *ReservationRepository) FindByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.Reservation, error) {
	found, err := r.dao.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUser -> %w", err)
	}

	reservations := make([]domain.Reservation, len(found))
	for i, res := range found {
		reservations[i] = reservationDaoToDomain(res)
	}

	return reservations, nil
}

func (r *ReservationRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	total, err := r.dao.CountByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByUser -> %w", err)
	}

	return total, nil
}

func reservationDaoToDomain(res dao.Reservation) domain.Reservation {
	reservation := domain.Reservation{
		ID:        res.ID,
		UserID:    res.UserID,
		CreatedAt: res.CreatedAt,
	}
	for _, t := range res.Tickets {
		ticket := domain.Ticket{
			ID:            t.ID,
			Row:           t.Row,
			Seat:          t.Seat,
			PerformanceID: t.PerformanceID,
			ReservationID: t.ReservationID,
		}
		if t.Performance.ID != 0 {
			performance := performanceDaoToDomain(t.Performance)
			ticket.Performance = &performance
		}
		reservation.Tickets = append(reservation.Tickets, ticket)
	}

	return reservation
}
