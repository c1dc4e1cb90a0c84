package repository

import (
	"context"
	"fmt"

	"github.com/stagedoor/theatre-api/internal/domain"
	"github.com/stagedoor/theatre-api/internal/repository/dao"
)

var (
	ErrPlayNotFound        = dao.ErrPlayNotFound
	ErrHallNotFound        = dao.ErrHallNotFound
	ErrPerformanceNotFound = dao.ErrPerformanceNotFound
)

type TheatreDAO interface {
	InsertActor(ctx context.Context, actor dao.Actor) (dao.Actor, error)
	FindActors(ctx context.Context) ([]dao.Actor, error)
	InsertGenre(ctx context.Context, genre dao.Genre) (dao.Genre, error)
	FindGenres(ctx context.Context) ([]dao.Genre, error)
	InsertPlay(ctx context.Context, play dao.Play) (dao.Play, error)
	FindPlayByID(ctx context.Context, id uint) (dao.Play, error)
	FindPlays(ctx context.Context, filter dao.PlayFilter) ([]dao.Play, error)
	InsertHall(ctx context.Context, hall dao.TheatreHall) (dao.TheatreHall, error)
	FindHallByID(ctx context.Context, id uint) (dao.TheatreHall, error)
	FindHalls(ctx context.Context) ([]dao.TheatreHall, error)
	InsertPerformance(ctx context.Context, performance dao.Performance) (dao.Performance, error)
	FindPerformanceByID(ctx context.Context, id uint) (dao.Performance, error)
	FindPerformancesByIDs(ctx context.Context, ids []uint) ([]dao.Performance, error)
	FindPerformances(ctx context.Context, filter dao.PerformanceFilter) ([]dao.Performance, error)
	CountTicketsByPerformance(ctx context.Context, performanceIDs []uint) (map[uint]int64, error)
	FindTakenPlaces(ctx context.Context, performanceID uint) ([]dao.Ticket, error)
}

type TheatreRepository struct {
	dao TheatreDAO
}

func NewTheatreRepository(dao TheatreDAO) *TheatreRepository {
	return &TheatreRepository{
		dao: dao,
	}
}

func (r *TheatreRepository) CreateActor(ctx context.Context, actor domain.Actor) (domain.Actor, error) {
	created, err := r.dao.InsertActor(ctx, dao.Actor{
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
	})
	if err != nil {
		return domain.Actor{}, fmt.Errorf("r.dao.InsertActor -> %w", err)
	}

	return actorDaoToDomain(created), nil
}

func (r *TheatreRepository) FindActors(ctx context.Context) ([]domain.Actor, error) {
	found, err := r.dao.FindActors(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActors -> %w", err)
	}

	actors := make([]domain.Actor, len(found))
	for i, a := range found {
		actors[i] = actorDaoToDomain(a)
	}

	return actors, nil
}

func (r *TheatreRepository) CreateGenre(ctx context.Context, genre domain.Genre) (domain.Genre, error) {
	created, err := r.dao.InsertGenre(ctx, dao.Genre{Name: genre.Name})
	if err != nil {
		return domain.Genre{}, fmt.Errorf("r.dao.InsertGenre -> %w", err)
	}

	return genreDaoToDomain(created), nil
}

func (r *TheatreRepository) FindGenres(ctx context.Context) ([]domain.Genre, error) {
	found, err := r.dao.FindGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindGenres -> %w", err)
	}

	genres := make([]domain.Genre, len(found))
	for i, g := range found {
		genres[i] = genreDaoToDomain(g)
	}

	return genres, nil
}

func (r *TheatreRepository) CreatePlay(ctx context.Context, play domain.Play, genreIDs, actorIDs []uint) (domain.Play, error) {
	daoPlay := dao.Play{
		Title:       play.Title,
		Description: play.Description,
	}
	for _, id := range genreIDs {
		daoPlay.Genres = append(daoPlay.Genres, dao.Genre{ID: id})
	}
	for _, id := range actorIDs {
		daoPlay.Actors = append(daoPlay.Actors, dao.Actor{ID: id})
	}

	created, err := r.dao.InsertPlay(ctx, daoPlay)
	if err != nil {
		return domain.Play{}, fmt.Errorf("r.dao.InsertPlay -> %w", err)
	}

	return playDaoToDomain(created), nil
}

func (r *TheatreRepository) FindPlayByID(ctx context.Context, id uint) (domain.Play, error) {
	found, err := r.dao.FindPlayByID(ctx, id)
	if err != nil {
		return domain.Play{}, fmt.Errorf("r.dao.FindPlayByID -> %w", err)
	}

	return playDaoToDomain(found), nil
}

func (r *TheatreRepository) FindPlays(ctx context.Context, filter domain.PlayFilter) ([]domain.Play, error) {
	found, err := r.dao.FindPlays(ctx, dao.PlayFilter{
		Title:    filter.Title,
		GenreIDs: filter.GenreIDs,
		ActorIDs: filter.ActorIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPlays -> %w", err)
	}

	plays := make([]domain.Play, len(found))
	for i, p := range found {
		plays[i] = playDaoToDomain(p)
	}

	return plays, nil
}

func (r *TheatreRepository) CreateHall(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error) {
	created, err := r.dao.InsertHall(ctx, dao.TheatreHall{
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
	})
	if err != nil {
		return domain.TheatreHall{}, fmt.Errorf("r.dao.InsertHall -> %w", err)
	}

	return hallDaoToDomain(created), nil
}

func (r *TheatreRepository) FindHallByID(ctx context.Context, id uint) (domain.TheatreHall, error) {
	found, err := r.dao.FindHallByID(ctx, id)
	if err != nil {
		return domain.TheatreHall{}, fmt.Errorf("r.dao.FindHallByID -> %w", err)
	}

	return hallDaoToDomain(found), nil
}

func (r *TheatreRepository) FindHalls(ctx context.Context) ([]domain.TheatreHall, error) {
	found, err := r.dao.FindHalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindHalls -> %w", err)
	}

	halls := make([]domain.TheatreHall, len(found))
	for i, h := range found {
		halls[i] = hallDaoToDomain(h)
	}

	return halls, nil
}

func (r *TheatreRepository) CreatePerformance(ctx context.Context, playID, hallID uint, performance domain.Performance) (domain.Performance, error) {
	created, err := r.dao.InsertPerformance(ctx, dao.Performance{
		PlayID:        playID,
		TheatreHallID: hallID,
		ShowTime:      performance.ShowTime,
	})
	if err != nil {
		return domain.Performance{}, fmt.Errorf("r.dao.InsertPerformance -> %w", err)
	}

	return performanceDaoToDomain(created), nil
}

func (r *TheatreRepository) FindPerformanceByID(ctx context.Context, id uint) (domain.Performance, error) {
	found, err := r.dao.FindPerformanceByID(ctx, id)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("r.dao.FindPerformanceByID -> %w", err)
	}

	return performanceDaoToDomain(found), nil
}

// FindPerformancesByIDs loads performances with their halls for seat
// validation. Missing IDs simply do not appear in the result.
func (r *TheatreRepository) FindPerformancesByIDs(ctx context.Context, ids []uint) ([]domain.Performance, error) {
	found, err := r.dao.FindPerformancesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPerformancesByIDs -> %w", err)
	}

	performances := make([]domain.Performance, len(found))
	for i, p := range found {
		performances[i] = performanceDaoToDomain(p)
	}

	return performances, nil
}

func (r *TheatreRepository) FindPerformances(ctx context.Context, filter domain.PerformanceFilter) ([]domain.Performance, error) {
	found, err := r.dao.FindPerformances(ctx, dao.PerformanceFilter{
		Date:   filter.Date,
		PlayID: filter.PlayID,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPerformances -> %w", err)
	}

	performances := make([]domain.Performance, len(found))
	for i, p := range found {
		performances[i] = performanceDaoToDomain(p)
	}

	return performances, nil
}

func (r *TheatreRepository) CountTicketsByPerformance(ctx context.Context, performanceIDs []uint) (map[uint]int64, error) {
	counts, err := r.dao.CountTicketsByPerformance(ctx, performanceIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountTicketsByPerformance -> %w", err)
	}

	return counts, nil
}

func (r *TheatreRepository) FindTakenPlaces(ctx context.Context, performanceID uint) ([]domain.TakenPlace, error) {
	tickets, err := r.dao.FindTakenPlaces(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTakenPlaces -> %w", err)
	}

	places := make([]domain.TakenPlace, len(tickets))
	for i, t := range tickets {
		places[i] = domain.TakenPlace{Row: t.Row, Seat: t.Seat}
	}

	return places, nil
}

func actorDaoToDomain(a dao.Actor) domain.Actor {
	return domain.Actor{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

func genreDaoToDomain(g dao.Genre) domain.Genre {
	return domain.Genre{
		ID:   g.ID,
		Name: g.Name,
	}
}

func playDaoToDomain(p dao.Play) domain.Play {
	play := domain.Play{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
	}
	for _, g := range p.Genres {
		play.Genres = append(play.Genres, genreDaoToDomain(g))
	}
	for _, a := range p.Actors {
		play.Actors = append(play.Actors, actorDaoToDomain(a))
	}

	return play
}

func hallDaoToDomain(h dao.TheatreHall) domain.TheatreHall {
	return domain.TheatreHall{
		ID:         h.ID,
		Name:       h.Name,
		Rows:       h.Rows,
		SeatsInRow: h.SeatsInRow,
	}
}

func performanceDaoToDomain(p dao.Performance) domain.Performance {
	return domain.Performance{
		ID:          p.ID,
		Play:        playDaoToDomain(p.Play),
		TheatreHall: hallDaoToDomain(p.TheatreHall),
		ShowTime:    p.ShowTime,
	}
}
