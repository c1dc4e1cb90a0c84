package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPlayNotFound        = errors.New("play not found")
	ErrHallNotFound        = errors.New("theatre hall not found")
	ErrPerformanceNotFound = errors.New("performance not found")
)

type Actor struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
}

type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

type Play struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	Genres      []Genre `gorm:"many2many:play_genres;"`
	Actors      []Actor `gorm:"many2many:play_actors;"`
}

type TheatreHall struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Rows       int    `gorm:"not null"`
	SeatsInRow int    `gorm:"not null"`
}

type Performance struct {
	ID            uint        `gorm:"primaryKey"`
	PlayID        uint        `gorm:"not null;index"`
	Play          Play        `gorm:"foreignKey:PlayID"`
	TheatreHallID uint        `gorm:"not null;index"`
	TheatreHall   TheatreHall `gorm:"foreignKey:TheatreHallID"`
	ShowTime      time.Time   `gorm:"not null;index"`
}

// PerformanceFilter narrows FindPerformances. Zero values disable a filter.
type PerformanceFilter struct {
	Date   time.Time
	PlayID uint
}

// PlayFilter narrows FindPlays. Zero values disable a filter.
type PlayFilter struct {
	Title    string
	GenreIDs []uint
	ActorIDs []uint
}

type TheatreDAO struct {
	db *gorm.DB
}

func NewTheatreDAO(db *gorm.DB) *TheatreDAO {
	return &TheatreDAO{
		db: db,
	}
}

func (d *TheatreDAO) InsertActor(ctx context.Context, actor Actor) (Actor, error) {
	result := d.db.WithContext(ctx).Create(&actor)
	if result.Error != nil {
		return Actor{}, result.Error
	}

	return actor, nil
}

func (d *TheatreDAO) FindActors(ctx context.Context) ([]Actor, error) {
	var actors []Actor

	result := d.db.WithContext(ctx).Order("id").Find(&actors)
	if result.Error != nil {
		return nil, result.Error
	}

	return actors, nil
}

func (d *TheatreDAO) InsertGenre(ctx context.Context, genre Genre) (Genre, error) {
	result := d.db.WithContext(ctx).Create(&genre)
	if result.Error != nil {
		return Genre{}, result.Error
	}

	return genre, nil
}

func (d *TheatreDAO) FindGenres(ctx context.Context) ([]Genre, error) {
	var genres []Genre

	result := d.db.WithContext(ctx).Order("id").Find(&genres)
	if result.Error != nil {
		return nil, result.Error
	}

	return genres, nil
}

func (d *TheatreDAO) InsertPlay(ctx context.Context, play Play) (Play, error) {
	result := d.db.WithContext(ctx).Create(&play)
	if result.Error != nil {
		return Play{}, result.Error
	}

	return d.FindPlayByID(ctx, play.ID)
}

func (d *TheatreDAO) FindPlayByID(ctx context.Context, id uint) (Play, error) {
	var play Play

	result := d.db.WithContext(ctx).
		Preload("Genres").
		Preload("Actors").
		First(&play, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Play{}, ErrPlayNotFound
		}

		return Play{}, result.Error
	}

	return play, nil
}

func (d *TheatreDAO) FindPlays(ctx context.Context, filter PlayFilter) ([]Play, error) {
	query := d.db.WithContext(ctx).
		Model(&Play{}).
		Preload("Genres").
		Preload("Actors").
		Order("plays.id")

	if filter.Title != "" {
		query = query.Where("plays.title ILIKE ?", "%"+filter.Title+"%")
	}
	if len(filter.GenreIDs) > 0 {
		query = query.
			Joins("JOIN play_genres ON play_genres.play_id = plays.id").
			Where("play_genres.genre_id IN ?", filter.GenreIDs)
	}
	if len(filter.ActorIDs) > 0 {
		query = query.
			Joins("JOIN play_actors ON play_actors.play_id = plays.id").
			Where("play_actors.actor_id IN ?", filter.ActorIDs)
	}

	var plays []Play
	result := query.Distinct().Find(&plays)
	if result.Error != nil {
		return nil, result.Error
	}

	return plays, nil
}

func (d *TheatreDAO) InsertHall(ctx context.Context, hall TheatreHall) (TheatreHall, error) {
	result := d.db.WithContext(ctx).Create(&hall)
	if result.Error != nil {
		return TheatreHall{}, result.Error
	}

	return hall, nil
}

func (d *TheatreDAO) FindHallByID(ctx context.Context, id uint) (TheatreHall, error) {
	var hall TheatreHall

	result := d.db.WithContext(ctx).First(&hall, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TheatreHall{}, ErrHallNotFound
		}

		return TheatreHall{}, result.Error
	}

	return hall, nil
}

func (d *TheatreDAO) FindHalls(ctx context.Context) ([]TheatreHall, error) {
	var halls []TheatreHall

	result := d.db.WithContext(ctx).Order("id").Find(&halls)
	if result.Error != nil {
		return nil, result.Error
	}

	return halls, nil
}

func (d *TheatreDAO) InsertPerformance(ctx context.Context, performance Performance) (Performance, error) {
	result := d.db.WithContext(ctx).Create(&performance)
	if result.Error != nil {
		return Performance{}, result.Error
	}

	return d.FindPerformanceByID(ctx, performance.ID)
}

func (d *TheatreDAO) FindPerformanceByID(ctx context.Context, id uint) (Performance, error) {
	var performance Performance

	result := d.db.WithContext(ctx).
		Preload("Play.Genres").
		Preload("Play.Actors").
		Preload("TheatreHall").
		First(&performance, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Performance{}, ErrPerformanceNotFound
		}

		return Performance{}, result.Error
	}

	return performance, nil
}

// FindPerformancesByIDs loads the given performances with their halls. A
// missing ID is not an error here; callers compare lengths.
func (d *TheatreDAO) FindPerformancesByIDs(ctx context.Context, ids []uint) ([]Performance, error) {
	var performances []Performance

	result := d.db.WithContext(ctx).
		Preload("TheatreHall").
		Where("id IN ?", ids).
		Find(&performances)
	if result.Error != nil {
		return nil, result.Error
	}

	return performances, nil
}

func (d *TheatreDAO) FindPerformances(ctx context.Context, filter PerformanceFilter) ([]Performance, error) {
	query := d.db.WithContext(ctx).
		Model(&Performance{}).
		Preload("Play").
		Preload("TheatreHall").
		Order("show_time")

	if !filter.Date.IsZero() {
		dayStart := filter.Date.Truncate(24 * time.Hour)
		query = query.Where("show_time >= ? AND show_time < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}
	if filter.PlayID != 0 {
		query = query.Where("play_id = ?", filter.PlayID)
	}

	var performances []Performance
	result := query.Find(&performances)
	if result.Error != nil {
		return nil, result.Error
	}

	return performances, nil
}

// CountTicketsByPerformance aggregates sold tickets for all given
// performances in a single GROUP BY query. Performances with no tickets are
// absent from the returned map.
func (d *TheatreDAO) CountTicketsByPerformance(ctx context.Context, performanceIDs []uint) (map[uint]int64, error) {
	if len(performanceIDs) == 0 {
		return map[uint]int64{}, nil
	}

	var rows []struct {
		PerformanceID uint
		Total         int64
	}
	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Select("performance_id, count(*) AS total").
		Where("performance_id IN ?", performanceIDs).
		Group("performance_id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.PerformanceID] = row.Total
	}

	return counts, nil
}

// FindTakenPlaces lists the sold (row, seat) pairs of a performance in
// deterministic row-major order.
func (d *TheatreDAO) FindTakenPlaces(ctx context.Context, performanceID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Where("performance_id = ?", performanceID).
		Order(`"row", seat`).
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}
