package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stagedoor/theatre-api/internal/api/handler/v1/request"
	"github.com/stagedoor/theatre-api/internal/api/handler/v1/response"
	"github.com/stagedoor/theatre-api/internal/domain"
	"github.com/stagedoor/theatre-api/internal/service"
)

type PerformanceService interface {
	CreatePerformance(ctx context.Context, playID, hallID uint, performance domain.Performance) (domain.Performance, error)
	GetPerformances(ctx context.Context, filter domain.PerformanceFilter) ([]domain.Performance, error)
	GetPerformance(ctx context.Context, id uint) (domain.Performance, []domain.TakenPlace, error)
}

type PerformanceHandler struct {
	svc PerformanceService
}

func NewPerformanceHandler(svc PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{
		svc: svc,
	}
}

// HandleCreatePerformance godoc
// @Summary      Schedule a performance
// @Description  Schedules a play in a theatre hall at a given show time.
// @Tags         performances
// @Produce      json
// @Param        request  body      request.CreatePerformanceRequest true "request body"
// @Success      201      {object}  response.PerformanceDetail
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /performances [post]
// @Security BearerAuth
func (h *PerformanceHandler) HandleCreatePerformance(ctx *gin.Context) {
	var req request.CreatePerformanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	showTime, err := time.Parse(time.RFC3339, req.ShowTime)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid show_time: %w", err)))
		return
	}

	created, err := h.svc.CreatePerformance(ctx.Request.Context(), req.PlayID, req.TheatreHallID, domain.Performance{
		ShowTime: showTime,
	})
	if err != nil {
		if errors.Is(err, service.ErrPlayNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("play", "ID", req.PlayID))
			return
		}
		if errors.Is(err, service.ErrHallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("theatre hall", "ID", req.TheatreHallID))
			return
		}

		err = fmt.Errorf("v1.HandleCreatePerformance -> h.svc.CreatePerformance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewPerformanceDetail(created, nil))
}

// HandleGetPerformances godoc
// @Summary      List performances
// @Description  Lists performances with the number of tickets still available.
// @Tags         performances
// @Produce      json
// @Param        date  query     string  false  "Filter by calendar day (YYYY-MM-DD)"
// @Param        play  query     int     false  "Filter by play ID"
// @Success      200   {array}   response.PerformanceListItem
// @Failure      400   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /performances [get]
// @Security BearerAuth
func (h *PerformanceHandler) HandleGetPerformances(ctx *gin.Context) {
	var filter domain.PerformanceFilter

	if raw := ctx.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date filter: %w", err)))
			return
		}
		filter.Date = date
	}

	if raw := ctx.Query("play"); raw != "" {
		playID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid play filter: %w", err)))
			return
		}
		filter.PlayID = uint(playID)
	}

	performances, err := h.svc.GetPerformances(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPerformances -> h.svc.GetPerformances -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPerformanceList(performances))
}

// HandleGetPerformance godoc
// @Summary      Get a performance by ID
// @Description  Returns the performance with the list of seats already taken.
// @Tags         performances
// @Produce      json
// @Param        performanceID  path      int  true  "Performance ID"
// @Success      200            {object}  response.PerformanceDetail
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /performances/{performanceID} [get]
// @Security BearerAuth
func (h *PerformanceHandler) HandleGetPerformance(ctx *gin.Context) {
	performanceID, err := strconv.ParseUint(ctx.Param("performanceID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid performance ID: %w", err)))
		return
	}

	performance, taken, err := h.svc.GetPerformance(ctx.Request.Context(), uint(performanceID))
	if err != nil {
		if errors.Is(err, service.ErrPerformanceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("performance", "ID", performanceID))
			return
		}

		err = fmt.Errorf("v1.HandleGetPerformance -> h.svc.GetPerformance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPerformanceDetail(performance, taken))
}
