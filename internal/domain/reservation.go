package domain

import (
	"time"

	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

// Reservation represents a table reservation in the system
type Reservation struct {
	ID         int64
	Date       string // YYYY-MM-DD
	Time       types.TimeString
	Guests     int
	CustomerID int64

	// Denormalized customer name for listings
	CustomerName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the minute-of-day interval [start, end) the reservation
// would occupy given the configured reservation duration
func (r *Reservation) Window(reservationDurationMinutes int) (int, int) {
	start := r.Time.Minutes()
	return start, start + reservationDurationMinutes
}

// Customer represents a guest who owns one or more reservations
type Customer struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// TimeRange половинно-открытый интервал времени [Start, End) для поиска
// доступных слотов
type TimeRange struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// SortField поле сортировки списка бронирований
type SortField string

const (
	SortByDate   SortField = "date"
	SortByGuests SortField = "guests"
)

// IsValid reports whether the sort field is one of the supported columns
func (f SortField) IsValid() bool {
	return f == SortByDate || f == SortByGuests
}

// SortOrder направление сортировки
type SortOrder string

const (
	SortOrderAsc  SortOrder = "ASC"
	SortOrderDesc SortOrder = "DESC"
)

// ReservationFilter фильтр списка бронирований (все поля опциональны)
type ReservationFilter struct {
	CustomerName *string `json:"customerName,omitempty"`
	Date         *string `json:"date,omitempty"`
	Guests       *int    `json:"guests,omitempty"`
}

// Sort параметры сортировки списка бронирований
type Sort struct {
	SortBy *SortField `json:"sortBy,omitempty"`
	Order  SortOrder  `json:"order,omitempty"`
}

// Pagination параметры пагинации списка бронирований
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize заполняет нулевые значения пагинации значениями по умолчанию
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	return p
}

// Offset returns the row offset for the current page
func (p Pagination) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit)
}
