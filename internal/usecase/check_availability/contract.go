package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByDate получает все бронирования на конкретную дату
	GetByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
}

// AvailabilityCache интерфейс кеша результатов проверки доступности
type AvailabilityCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
