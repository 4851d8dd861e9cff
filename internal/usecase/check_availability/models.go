package check_availability

import (
	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

// Request модель запроса проверки доступности.
// Ровно одно из полей Time / TimeRange должно быть заполнено.
type Request struct {
	Date      string            // Дата (YYYY-MM-DD)
	Time      *types.TimeString // Конкретное время начала (взаимоисключимо с TimeRange)
	TimeRange *domain.TimeRange // Диапазон поиска слотов (взаимоисключимо с Time)
	Guests    int               // Количество гостей
}

// Response модель ответа проверки доступности.
// Сериализуется в кеш как есть, поэтому поля несут json-теги.
type Response struct {
	Message        string             `json:"message"`        // Человекочитаемый итог
	AvailableSlots []types.TimeString `json:"availableSlots"` // Доступные слоты (пусто, если ничего не найдено)
}
