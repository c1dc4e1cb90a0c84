package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stagedoor/theatre-api/internal/domain"
)

type Reservation struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	Tickets   []Ticket  `gorm:"foreignKey:ReservationID"`
}

// Ticket carries the composite unique index on (performance_id, row, seat).
// The index is the final arbiter against double booking: two transactions
// inserting the same triple cannot both commit.
type Ticket struct {
	ID            uint        `gorm:"primaryKey"`
	PerformanceID uint        `gorm:"not null;uniqueIndex:uniq_ticket_performance_row_seat"`
	Performance   Performance `gorm:"foreignKey:PerformanceID"`
	Row           int         `gorm:"not null;uniqueIndex:uniq_ticket_performance_row_seat"`
	Seat          int         `gorm:"not null;uniqueIndex:uniq_ticket_performance_row_seat"`
	ReservationID uint        `gorm:"not null;index"`
}

type ReservationDAO struct {
	db *gorm.DB
}

func NewReservationDAO(db *gorm.DB) *ReservationDAO {
	return &ReservationDAO{
		db: db,
	}
}

// InsertWithTickets creates a reservation and all of its tickets inside one
// database transaction. On a unique violation of the ticket index the whole
// transaction is rolled back and a domain.SeatTakenError naming the losing
// seat is returned; no partial reservation survives any error.
func (d *ReservationDAO) InsertWithTickets(ctx context.Context, reservation Reservation, tickets []Ticket) (Reservation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		for i := range tickets {
			tickets[i].ReservationID = reservation.ID
			if err := tx.Create(&tickets[i]).Error; err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) &&
					pgErr.Code == pgerrcode.UniqueViolation &&
					strings.Contains(pgErr.ConstraintName, "uniq_ticket_performance_row_seat") {
					return domain.SeatTakenError{
						PerformanceID: tickets[i].PerformanceID,
						Row:           tickets[i].Row,
						Seat:          tickets[i].Seat,
					}
				}

				return err
			}
		}

		reservation.Tickets = tickets

		return nil
	})
	if err != nil {
		return Reservation{}, err
	}

	return reservation, nil
}

// FindByUser returns the user's reservations, newest first, with tickets and
// their performances preloaded for display.
func (d *ReservationDAO) FindByUser(ctx context.Context, userID uint, limit, offset int) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Tickets.Performance.Play").
		Preload("Tickets.Performance.TheatreHall").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reservations)
	if result.Error != nil {
		return nil, result.Error
	}

	return reservations, nil
}

// CountByUser supports pagination of FindByUser.
func (d *ReservationDAO) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var total int64

	result := d.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("user_id = ?", userID).
		Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}
