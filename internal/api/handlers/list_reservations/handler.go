package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/Restaurant-ReservationService/internal/api/handlers"
	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/internal/service/reservations"
	"github.com/m04kA/Restaurant-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/Restaurant-ReservationService/pkg/ptr"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidGuests = "некорректное количество гостей"
	msgInvalidPage   = "некорректный номер страницы"
	msgInvalidLimit  = "некорректный размер страницы"
	msgInvalidSortBy = "некорректное поле сортировки, ожидается date или guests"
	msgInvalidOrder  = "некорректный порядок сортировки, ожидается ASC или DESC"
	msgInvalidQuery  = "некорректные параметры запроса"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: customerName, date, guests, page, limit, sortBy (date|guests), order (ASC|DESC)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := models.ListRequest{}

	if name := query.Get("customerName"); name != "" {
		req.Filter.CustomerName = ptr.Ptr(name)
	}

	if dateStr := query.Get("date"); dateStr != "" {
		if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
			h.logger.Warn("GET /reservations - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Filter.Date = ptr.Ptr(dateStr)
	}

	if guestsStr := query.Get("guests"); guestsStr != "" {
		guests, err := strconv.Atoi(guestsStr)
		if err != nil || guests < domain.MinGuests {
			h.logger.Warn("GET /reservations - Invalid guests filter: %s", guestsStr)
			handlers.RespondBadRequest(w, msgInvalidGuests)
			return
		}
		req.Filter.Guests = ptr.Ptr(guests)
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			h.logger.Warn("GET /reservations - Invalid page: %s", pageStr)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		req.Pagination.Page = page
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			h.logger.Warn("GET /reservations - Invalid limit: %s", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Pagination.Limit = limit
	}

	if sortByStr := query.Get("sortBy"); sortByStr != "" {
		sortBy := domain.SortField(sortByStr)
		if !sortBy.IsValid() {
			h.logger.Warn("GET /reservations - Invalid sortBy: %s", sortByStr)
			handlers.RespondBadRequest(w, msgInvalidSortBy)
			return
		}
		req.Sort.SortBy = &sortBy
	}

	if orderStr := query.Get("order"); orderStr != "" {
		switch domain.SortOrder(orderStr) {
		case domain.SortOrderAsc, domain.SortOrderDesc:
			req.Sort.Order = domain.SortOrder(orderStr)
		default:
			h.logger.Warn("GET /reservations - Invalid order: %s", orderStr)
			handlers.RespondBadRequest(w, msgInvalidOrder)
			return
		}
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: count=%d, total=%d",
		len(result.Items), result.TotalCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
