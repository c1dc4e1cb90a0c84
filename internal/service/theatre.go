package service

import (
	"context"
	"fmt"

	"github.com/stagedoor/theatre-api/internal/domain"
	"github.com/stagedoor/theatre-api/internal/repository"
)

var (
	ErrPlayNotFound = repository.ErrPlayNotFound
	ErrHallNotFound = repository.ErrHallNotFound
)

type TheatreRepository interface {
	CreateActor(ctx context.Context, actor domain.Actor) (domain.Actor, error)
	FindActors(ctx context.Context) ([]domain.Actor, error)
	CreateGenre(ctx context.Context, genre domain.Genre) (domain.Genre, error)
	FindGenres(ctx context.Context) ([]domain.Genre, error)
	CreatePlay(ctx context.Context, play domain.Play, genreIDs, actorIDs []uint) (domain.Play, error)
	FindPlayByID(ctx context.Context, id uint) (domain.Play, error)
	FindPlays(ctx context.Context, filter domain.PlayFilter) ([]domain.Play, error)
	CreateHall(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error)
	FindHallByID(ctx context.Context, id uint) (domain.TheatreHall, error)
	FindHalls(ctx context.Context) ([]domain.TheatreHall, error)
	CreatePerformance(ctx context.Context, playID, hallID uint, performance domain.Performance) (domain.Performance, error)
	FindPerformanceByID(ctx context.Context, id uint) (domain.Performance, error)
	FindPerformances(ctx context.Context, filter domain.PerformanceFilter) ([]domain.Performance, error)
	CountTicketsByPerformance(ctx context.Context, performanceIDs []uint) (map[uint]int64, error)
	FindTakenPlaces(ctx context.Context, performanceID uint) ([]domain.TakenPlace, error)
}

type TheatreService struct {
	repo TheatreRepository
}

func NewTheatreService(repo TheatreRepository) *TheatreService {
	return &TheatreService{
		repo: repo,
	}
}

func (s *TheatreService) CreateActor(ctx context.Context, actor domain.Actor) (domain.Actor, error) {
	created, err := s.repo.CreateActor(ctx, actor)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("s.repo.CreateActor -> %w", err)
	}

	return created, nil
}

func (s *TheatreService) GetActors(ctx context.Context) ([]domain.Actor, error) {
	actors, err := s.repo.FindActors(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActors -> %w", err)
	}

	return actors, nil
}

func (s *TheatreService) CreateGenre(ctx context.Context, genre domain.Genre) (domain.Genre, error) {
	created, err := s.repo.CreateGenre(ctx, genre)
	if err != nil {
		return domain.Genre{}, fmt.Errorf("s.repo.CreateGenre -> %w", err)
	}

	return created, nil
}

func (s *TheatreService) GetGenres(ctx context.Context) ([]domain.Genre, error) {
	genres, err := s.repo.FindGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindGenres -> %w", err)
	}

	return genres, nil
}

func (s *TheatreService) CreatePlay(ctx context.Context, play domain.Play, genreIDs, actorIDs []uint) (domain.Play, error) {
	created, err := s.repo.CreatePlay(ctx, play, genreIDs, actorIDs)
	if err != nil {
		return domain.Play{}, fmt.Errorf("s.repo.CreatePlay -> %w", err)
	}

	return created, nil
}

func (s *TheatreService) GetPlay(ctx context.Context, id uint) (domain.Play, error) {
	play, err := s.repo.FindPlayByID(ctx, id)
	if err != nil {
		return domain.Play{}, fmt.Errorf("s.repo.FindPlayByID -> %w", err)
	}

	return play, nil
}

func (s *TheatreService) GetPlays(ctx context.Context, filter domain.PlayFilter) ([]domain.Play, error) {
	plays, err := s.repo.FindPlays(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPlays -> %w", err)
	}

	return plays, nil
}

func (s *TheatreService) CreateHall(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error) {
	created, err := s.repo.CreateHall(ctx, hall)
	if err != nil {
		return domain.TheatreHall{}, fmt.Errorf("s.repo.CreateHall -> %w", err)
	}

	return created, nil
}

func (s *TheatreService) GetHalls(ctx context.Context) ([]domain.TheatreHall, error) {
	halls, err := s.repo.FindHalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindHalls -> %w", err)
	}

	return halls, nil
}

// CreatePerformance verifies the play and hall exist before scheduling.
func (s *TheatreService) CreatePerformance(ctx context.Context, playID, hallID uint, performance domain.Performance) (domain.Performance, error) {
	if _, err := s.repo.FindPlayByID(ctx, playID); err != nil {
		return domain.Performance{}, fmt.Errorf("s.repo.FindPlayByID -> %w", err)
	}
	if _, err := s.repo.FindHallByID(ctx, hallID); err != nil {
		return domain.Performance{}, fmt.Errorf("s.repo.FindHallByID -> %w", err)
	}

	created, err := s.repo.CreatePerformance(ctx, playID, hallID, performance)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("s.repo.CreatePerformance -> %w", err)
	}

	return created, nil
}

// GetPerformances lists performances matching the filter and annotates each
// with the number of unsold seats. The counts come from one GROUP BY
// aggregation, never one query per performance, and are advisory: a booking
// committing concurrently can invalidate them before the caller sees them.
func (s *TheatreService) GetPerformances(ctx context.Context, filter domain.PerformanceFilter) ([]domain.Performance, error) {
	performances, err := s.repo.FindPerformances(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPerformances -> %w", err)
	}

	ids := make([]uint, len(performances))
	for i, p := range performances {
		ids[i] = p.ID
	}

	counts, err := s.repo.CountTicketsByPerformance(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CountTicketsByPerformance -> %w", err)
	}

	for i := range performances {
		p := &performances[i]
		p.TicketsAvailable = p.TheatreHall.Capacity() - int(counts[p.ID])
	}

	return performances, nil
}

// GetPerformance returns a single performance and the seats already sold
// for it. The detail view lists taken places instead of a numeric count.
func (s *TheatreService) GetPerformance(ctx context.Context, id uint) (domain.Performance, []domain.TakenPlace, error) {
	performance, err := s.repo.FindPerformanceByID(ctx, id)
	if err != nil {
		return domain.Performance{}, nil, fmt.Errorf("s.repo.FindPerformanceByID -> %w", err)
	}

	taken, err := s.repo.FindTakenPlaces(ctx, id)
	if err != nil {
		return domain.Performance{}, nil, fmt.Errorf("s.repo.FindTakenPlaces -> %w", err)
	}

	return performance, taken, nil
}
