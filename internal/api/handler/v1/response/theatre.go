package response

import (
	"time"

	"github.com/stagedoor/theatre-api/internal/domain"
)

// PerformanceListItem is the flattened listing row; TicketsAvailable is the
// advisory unsold-seat count computed in bulk for the whole page.
type PerformanceListItem struct {
	ID                  uint      `json:"id"`
	ShowTime            time.Time `json:"show_time"`
	PlayTitle           string    `json:"play_title"`
	TheatreHallName     string    `json:"theatre_hall_name"`
	TheatreHallCapacity int       `json:"theatre_hall_capacity"`
	TicketsAvailable    int       `json:"tickets_available"`
}

func NewPerformanceList(performances []domain.Performance) []PerformanceListItem {
	items := make([]PerformanceListItem, len(performances))
	for i, p := range performances {
		items[i] = PerformanceListItem{
			ID:                  p.ID,
			ShowTime:            p.ShowTime,
			PlayTitle:           p.Play.Title,
			TheatreHallName:     p.TheatreHall.Name,
			TheatreHallCapacity: p.TheatreHall.Capacity(),
			TicketsAvailable:    p.TicketsAvailable,
		}
	}

	return items
}

// PerformanceDetail exposes the seats already sold instead of a count.
type PerformanceDetail struct {
	ID          uint                `json:"id"`
	Play        domain.Play         `json:"play"`
	TheatreHall domain.TheatreHall  `json:"theatre_hall"`
	ShowTime    time.Time           `json:"show_time"`
	TakenPlaces []domain.TakenPlace `json:"taken_places"`
}

func NewPerformanceDetail(p domain.Performance, taken []domain.TakenPlace) PerformanceDetail {
	if taken == nil {
		taken = []domain.TakenPlace{}
	}

	return PerformanceDetail{
		ID:          p.ID,
		Play:        p.Play,
		TheatreHall: p.TheatreHall,
		ShowTime:    p.ShowTime,
		TakenPlaces: taken,
	}
}
