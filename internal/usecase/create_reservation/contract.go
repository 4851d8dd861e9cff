package create_reservation

import (
	"context"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	// GetOrCreate возвращает клиента по имени, создавая его при отсутствии
	GetOrCreate(ctx context.Context, name string) (*domain.Customer, error)
}

// AvailabilityCache интерфейс кеша для инвалидации после записи
type AvailabilityCache interface {
	InvalidateAll(ctx context.Context) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
