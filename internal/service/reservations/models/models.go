package models

import (
	"time"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

// ListRequest запрос списка бронирований
type ListRequest struct {
	Filter     domain.ReservationFilter
	Pagination domain.Pagination
	Sort       domain.Sort
}

// ListResponse страница бронирований с общим количеством без учета пагинации.
// Сериализуется в кеш как есть, поэтому поля несут json-теги.
type ListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	TotalCount int64                  `json:"totalCount"`
}

// UpdateRequest запрос обновления бронирования (nil-поля не меняются)
type UpdateRequest struct {
	ID     int64
	Date   *string
	Time   *types.TimeString
	Guests *int
}

// ReservationResponse бронирование в ответе сервиса
type ReservationResponse struct {
	ID           int64            `json:"id"`
	Date         string           `json:"date"`
	Time         types.TimeString `json:"time"`
	Guests       int              `json:"guests"`
	CustomerID   int64            `json:"customerId"`
	CustomerName string           `json:"customerName"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// FromDomainReservation конвертирует доменную модель в ответ сервиса
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:           res.ID,
		Date:         res.Date,
		Time:         res.Time,
		Guests:       res.Guests,
		CustomerID:   res.CustomerID,
		CustomerName: res.CustomerName,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует слайс доменных моделей
func FromDomainReservationList(list []*domain.Reservation) []*ReservationResponse {
	items := make([]*ReservationResponse, 0, len(list))
	for _, res := range list {
		items = append(items, FromDomainReservation(res))
	}
	return items
}
