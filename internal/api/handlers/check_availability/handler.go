package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/Restaurant-ReservationService/internal/api/handlers"
	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	checkAvailability "github.com/m04kA/Restaurant-ReservationService/internal/usecase/check_availability"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

const (
	msgMissingDate      = "дата обязательна"
	msgMissingGuests    = "количество гостей обязательно"
	msgInvalidGuests    = "некорректное количество гостей"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange = "некорректный временной диапазон, ожидается startTime и endTime в формате HH:MM"
	msgInvalidQuery     = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), guests (required),
// time (HH:MM) либо startTime+endTime (HH:MM) - ровно один вариант
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	guestsStr := query.Get("guests")
	if guestsStr == "" {
		h.logger.Warn("GET /availability - Missing guests")
		handlers.RespondBadRequest(w, msgMissingGuests)
		return
	}

	guests, err := strconv.Atoi(guestsStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid guests: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuests)
		return
	}

	useCaseReq := &checkAvailability.Request{
		Date:   dateStr,
		Guests: guests,
	}

	// Точное время
	if timeStr := query.Get("time"); timeStr != "" {
		t, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		useCaseReq.Time = &t
	}

	// Временной диапазон
	startStr, endStr := query.Get("startTime"), query.Get("endTime")
	if startStr != "" || endStr != "" {
		start, err := types.NewTimeStringFromString(startStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid startTime: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)
			return
		}
		end, err := types.NewTimeStringFromString(endStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid endTime: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)
			return
		}
		useCaseReq.TimeRange = &domain.TimeRange{Start: start, End: end}
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid query: date=%s, guests=%s, error=%v", dateStr, guestsStr, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /availability - Failed to check availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability checked: date=%s, guests=%d, slots_count=%d",
		dateStr, guests, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
