package cache

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

// Семейства ключей. Любая мутация инвалидирует оба семейства целиком:
// одна запись может изменить ответ любого закешированного запроса на эту дату.
const (
	ListingKeyPrefix      = "reservations:"
	AvailabilityKeyPrefix = "availability:"
)

// ListingKey строит детерминированный ключ для закешированного списка
// бронирований из полной семантики запроса (фильтр, пагинация, сортировка)
func ListingKey(filter domain.ReservationFilter, pagination domain.Pagination, sort domain.Sort) string {
	// json.Marshal детерминирован для структур (порядок полей фиксирован)
	filterJSON, _ := json.Marshal(filter)
	paginationJSON, _ := json.Marshal(pagination)
	sortJSON, _ := json.Marshal(sort)

	return fmt.Sprintf("%s%s:%s:%s", ListingKeyPrefix, filterJSON, paginationJSON, sortJSON)
}

// AvailabilityKey строит детерминированный ключ для закешированного ответа
// проверки доступности: дата, время или диапазон, количество гостей
func AvailabilityKey(date string, t *types.TimeString, timeRange *domain.TimeRange, guests int) string {
	start := "none"
	end := "none"

	if t != nil {
		start = t.String()
	} else if timeRange != nil {
		start = timeRange.Start.String()
	}
	if timeRange != nil {
		end = timeRange.End.String()
	}

	return fmt.Sprintf("%s%s:%s-%s:%d", AvailabilityKeyPrefix, date, start, end, guests)
}
