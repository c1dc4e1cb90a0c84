package response

import (
	"time"

	"github.com/stagedoor/theatre-api/internal/domain"
)

type Ticket struct {
	ID            uint `json:"id"`
	Row           int  `json:"row"`
	Seat          int  `json:"seat"`
	PerformanceID uint `json:"performance_id"`
}

type Reservation struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

func NewReservation(res domain.Reservation) Reservation {
	tickets := make([]Ticket, len(res.Tickets))
	for i, t := range res.Tickets {
		tickets[i] = Ticket{
			ID:            t.ID,
			Row:           t.Row,
			Seat:          t.Seat,
			PerformanceID: t.PerformanceID,
		}
	}

	return Reservation{
		ID:        res.ID,
		CreatedAt: res.CreatedAt,
		Tickets:   tickets,
	}
}

// PerformanceSummary describes a ticket's performance in reservation
// listings. No availability count here; that belongs to the listing path.
type PerformanceSummary struct {
	ID              uint      `json:"id"`
	ShowTime        time.Time `json:"show_time"`
	PlayTitle       string    `json:"play_title"`
	TheatreHallName string    `json:"theatre_hall_name"`
}

// TicketDetail embeds the performance summary for reservation listings.
type TicketDetail struct {
	ID          uint                `json:"id"`
	Row         int                 `json:"row"`
	Seat        int                 `json:"seat"`
	Performance *PerformanceSummary `json:"performance,omitempty"`
}

type ReservationDetail struct {
	ID        uint           `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Tickets   []TicketDetail `json:"tickets"`
}

// ReservationPage is one page of a user's reservations.
type ReservationPage struct {
	Count   int64               `json:"count"`
	Results []ReservationDetail `json:"results"`
}

func NewReservationPage(reservations []domain.Reservation, total int64) ReservationPage {
	results := make([]ReservationDetail, len(reservations))
	for i, res := range reservations {
		detail := ReservationDetail{
			ID:        res.ID,
			CreatedAt: res.CreatedAt,
			Tickets:   make([]TicketDetail, len(res.Tickets)),
		}
		for j, t := range res.Tickets {
			ticket := TicketDetail{
				ID:   t.ID,
				Row:  t.Row,
				Seat: t.Seat,
			}
			if t.Performance != nil {
				p := *t.Performance
				ticket.Performance = &PerformanceSummary{
					ID:              p.ID,
					ShowTime:        p.ShowTime,
					PlayTitle:       p.Play.Title,
					TheatreHallName: p.TheatreHall.Name,
				}
			}
			detail.Tickets[j] = ticket
		}
		results[i] = detail
	}

	return ReservationPage{
		Count:   total,
		Results: results,
	}
}
