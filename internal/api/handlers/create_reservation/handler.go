package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/Restaurant-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/Restaurant-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidRequest     = "некорректные данные бронирования"
	msgNoAvailability     = "нет свободных мест на выбранную дату"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
// Если запрошенное время занято, бронирование не создается -
// в ответе приходят ближайшие свободные слоты.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid request: customer=%q, date=%s, error=%v",
				req.CustomerName, req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createReservation.ErrNoAvailability):
			h.logger.Warn("POST /reservations - No availability: date=%s, guests=%d", req.Date, req.Guests)
			handlers.RespondConflict(w, msgNoAvailability)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: customer=%q, date=%s, error=%v",
				req.CustomerName, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Слот занят - бронирование не создано, возвращаем альтернативы
	if result.Reservation == nil {
		h.logger.Info("POST /reservations - Slot taken, suggestions returned: date=%s, time=%s, suggestions=%d",
			req.Date, req.Time, len(result.AvailableSlots))
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, customer=%q, date=%s",
		result.Reservation.ID, req.CustomerName, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
