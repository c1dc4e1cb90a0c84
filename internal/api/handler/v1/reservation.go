package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stagedoor/theatre-api/internal/api/handler/v1/request"
	"github.com/stagedoor/theatre-api/internal/api/handler/v1/response"
	"github.com/stagedoor/theatre-api/internal/domain"
	"github.com/stagedoor/theatre-api/internal/service"
)

const (
	defaultReservationPageSize = 5
	maxReservationPageSize     = 10
)

type BookingService interface {
	CreateReservation(ctx context.Context, userID uint, requests []domain.TicketRequest) (domain.Reservation, error)
	ListReservations(ctx context.Context, userID uint, limit, offset int) ([]domain.Reservation, int64, error)
}

type ReservationHandler struct {
	svc BookingService
}

func NewReservationHandler(svc BookingService) *ReservationHandler {
	return &ReservationHandler{
		svc: svc,
	}
}

// HandleCreateReservation godoc
// @Summary      Book seats
// @Description  Books all requested seats atomically; if any seat is out of
// @Description  range or already taken, nothing is booked.
// @Tags         reservations
// @Produce      json
// @Param        request  body      request.CreateReservationRequest true "request body"
// @Success      201      {object}  response.Reservation
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /reservations [post]
// @Security BearerAuth
func (h *ReservationHandler) HandleCreateReservation(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	requests := make([]domain.TicketRequest, len(req.Tickets))
	for i, t := range req.Tickets {
		requests[i] = domain.TicketRequest{
			PerformanceID: t.PerformanceID,
			Row:           t.Row,
			Seat:          t.Seat,
		}
	}

	reservation, err := h.svc.CreateReservation(ctx.Request.Context(), userID, requests)
	if err != nil {
		var rangeErr domain.RangeError
		if errors.As(err, &rangeErr) {
			response.RenderErr(ctx, response.ErrBadRequest(rangeErr))
			return
		}

		var takenErr domain.SeatTakenError
		if errors.As(err, &takenErr) {
			response.RenderErr(ctx, response.ErrConflict(takenErr))
			return
		}

		if errors.Is(err, service.ErrEmptyTicketList) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		if errors.Is(err, service.ErrPerformanceNotFound) {
			// The service error names the offending performance ID.
			response.RenderErr(ctx, &response.Err{
				StatusCode: http.StatusNotFound,
				ErrorMsg:   err.Error(),
			})
			return
		}

		err = fmt.Errorf("v1.HandleCreateReservation -> h.svc.CreateReservation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewReservation(reservation))
}

// HandleGetReservations godoc
// @Summary      List the caller's reservations
// @Description  Returns the authenticated user's reservations, newest first,
// @Description  paginated with a default page size of 5 and a maximum of 10.
// @Tags         reservations
// @Produce      json
// @Param        page       query     int  false  "Page number, starting at 1"
// @Param        page_size  query     int  false  "Page size (max 10)"
// @Success      200        {object}  response.ReservationPage
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /reservations [get]
// @Security BearerAuth
func (h *ReservationHandler) HandleGetReservations(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	page, err := parsePositiveInt(ctx.DefaultQuery("page", "1"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid page: %w", err)))
		return
	}

	pageSize, err := parsePositiveInt(ctx.DefaultQuery("page_size", strconv.Itoa(defaultReservationPageSize)))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid page_size: %w", err)))
		return
	}
	if pageSize > maxReservationPageSize {
		pageSize = maxReservationPageSize
	}

	reservations, total, err := h.svc.ListReservations(ctx.Request.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetReservations -> h.svc.ListReservations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewReservationPage(reservations, total))
}

func parsePositiveInt(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, fmt.Errorf("%d is not a positive number", value)
	}

	return value, nil
}
