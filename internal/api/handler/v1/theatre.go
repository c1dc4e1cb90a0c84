package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stagedoor/theatre-api/internal/api/handler/v1/request"
	"github.com/stagedoor/theatre-api/internal/api/handler/v1/response"
	"github.com/stagedoor/theatre-api/internal/domain"
	"github.com/stagedoor/theatre-api/internal/service"
)

type TheatreService interface {
	CreateActor(ctx context.Context, actor domain.Actor) (domain.Actor, error)
	GetActors(ctx context.Context) ([]domain.Actor, error)
	CreateGenre(ctx context.Context, genre domain.Genre) (domain.Genre, error)
	GetGenres(ctx context.Context) ([]domain.Genre, error)
	CreatePlay(ctx context.Context, play domain.Play, genreIDs, actorIDs []uint) (domain.Play, error)
	GetPlay(ctx context.Context, id uint) (domain.Play, error)
	GetPlays(ctx context.Context, filter domain.PlayFilter) ([]domain.Play, error)
	CreateHall(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error)
	GetHalls(ctx context.Context) ([]domain.TheatreHall, error)
}

type TheatreHandler struct {
	svc TheatreService
}

func NewTheatreHandler(svc TheatreService) *TheatreHandler {
	return &TheatreHandler{
		svc: svc,
	}
}

// HandleCreateActor godoc
// @Summary      Create an actor
// @Tags         catalog
// @Produce      json
// @Param        request  body      request.CreateActorRequest true "request body"
// @Success      201      {object}  domain.Actor
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /actors [post]
// @Security BearerAuth
func (h *TheatreHandler) HandleCreateActor(ctx *gin.Context) {
	var req request.CreateActorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	actor, err := h.svc.CreateActor(ctx.Request.Context(), domain.Actor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateActor -> h.svc.CreateActor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, actor)
}

// HandleGetActors godoc
// @Summary      List actors
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Actor
// @Failure      500  {object}  response.Err
// @Router       /actors [get]
// @Security BearerAuth
func (h *TheatreHandler) HandleGetActors(ctx *gin.Context) {
	actors, err := h.svc.GetActors(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetActors -> h.svc.GetActors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, actors)
}

// HandleCreateGenre godoc
// @Summary      Create a genre
// @Tags         catalog
// @Produce      json
// @Param        request  body      request.CreateGenreRequest true "request body"
// @Success      201      {object}  domain.Genre
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /genres [post]
// @Security BearerAuth
func (h *TheatreHandler) HandleCreateGenre(ctx *gin.Context) {
	var req request.CreateGenreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	genre, err := h.svc.CreateGenre(ctx.Request.Context(), domain.Genre{Name: req.Name})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateGenre -> h.svc.CreateGenre -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, genre)
}

// HandleGetGenres godoc
// @Summary      List genres
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Genre
// @Failure      500  {object}  response.Err
// @Router       /genres [get]
// @Security BearerAuth
func (h *TheatreHandler) HandleGetGenres(ctx *gin.Context) {
	genres, err := h.svc.GetGenres(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetGenres -> h.svc.GetGenres -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, genres)
}

// HandleCreatePlay godoc
// @Summary      Create a play
// @Tags         catalog
// @Produce      json
// @Param        request  body      request.CreatePlayRequest true "request body"
// @Success      201      {object}  domain.Play
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /plays [post]
// @Security BearerAuth
func (h *TheatreHandler) HandleCreatePlay(ctx *gin.Context) {
	var req request.CreatePlayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	play, err := h.svc.CreatePlay(ctx.Request.Context(), domain.Play{
		Title:       req.Title,
		Description: req.Description,
	}, req.GenreIDs, req.ActorIDs)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreatePlay -> h.svc.CreatePlay -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, play)
}

// HandleGetPlay godoc
// @Summary      Get a play by ID
// @Tags         catalog
// @Produce      json
// @Param        playID  path      int  true  "Play ID"
// @Success      200     {object}  domain.Play
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /plays/{playID} [get]
// @Security BearerAuth
func (h *TheatreHandler) HandleGetPlay(ctx *gin.Context) {
	playID, err := strconv.ParseUint(ctx.Param("playID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid play ID: %w", err)))
		return
	}

	play, err := h.svc.GetPlay(ctx.Request.Context(), uint(playID))
	if err != nil {
		if errors.Is(err, service.ErrPlayNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("play", "ID", playID))
			return
		}

		err = fmt.Errorf("v1.HandleGetPlay -> h.svc.GetPlay -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, play)
}

// HandleGetPlays godoc
// @Summary      List plays
// @Tags         catalog
// @Produce      json
// @Param        title   query     string  false  "Filter by title substring"
// @Param        genres  query     string  false  "Comma-separated genre IDs"
// @Param        actors  query     string  false  "Comma-separated actor IDs"
// @Success      200     {array}   domain.Play
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /plays [get]
// @Security BearerAuth
func (h *TheatreHandler) HandleGetPlays(ctx *gin.Context) {
	filter := domain.PlayFilter{
		Title: ctx.Query("title"),
	}

	var err error
	if filter.GenreIDs, err = parseIDList(ctx.Query("genres")); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid genres filter: %w", err)))
		return
	}
	if filter.ActorIDs, err = parseIDList(ctx.Query("actors")); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid actors filter: %w", err)))
		return
	}

	plays, err := h.svc.GetPlays(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPlays -> h.svc.GetPlays -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, plays)
}

// HandleCreateHall godoc
// @Summary      Create a theatre hall
// @Tags         catalog
// @Produce      json
// @Param        request  body      request.CreateHallRequest true "request body"
// @Success      201      {object}  domain.TheatreHall
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /theatre-halls [post]
// @Security BearerAuth
func (h *TheatreHandler) HandleCreateHall(ctx *gin.Context) {
	var req request.CreateHallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	hall, err := h.svc.CreateHall(ctx.Request.Context(), domain.TheatreHall{
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateHall -> h.svc.CreateHall -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, hall)
}

// HandleGetHalls godoc
// @Summary      List theatre halls
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.TheatreHall
// @Failure      500  {object}  response.Err
// @Router       /theatre-halls [get]
// @Security BearerAuth
func (h *TheatreHandler) HandleGetHalls(ctx *gin.Context) {
	halls, err := h.svc.GetHalls(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetHalls -> h.svc.GetHalls -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, halls)
}

func parseIDList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}

	return ids, nil
}
