package create_reservation

import (
	"time"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName string           // Имя клиента (клиент создается при первом бронировании)
	Date         string           // Дата бронирования (YYYY-MM-DD)
	Time         types.TimeString // Время начала (HH:MM)
	Guests       int              // Количество гостей
}

// Response модель ответа создания бронирования.
// При занятом окне Reservation пуст, а AvailableSlots содержит ближайшие
// альтернативы - бронирование в этом случае НЕ создается.
type Response struct {
	Message        string             // Человекочитаемый итог
	AvailableSlots []types.TimeString // Предлагаемые альтернативные слоты
	Reservation    *ReservationData   // Созданное бронирование (nil для предложений)
}

// ReservationData данные созданного бронирования
type ReservationData struct {
	ID           int64
	Date         string
	Time         types.TimeString
	Guests       int
	CustomerID   int64
	CustomerName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// fromDomain конвертирует доменную модель в данные ответа
func fromDomain(res *domain.Reservation) *ReservationData {
	return &ReservationData{
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
