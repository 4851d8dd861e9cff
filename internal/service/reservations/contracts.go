package reservations

import (
	"context"
	"time"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationFilter, sort domain.Sort, pagination domain.Pagination) ([]*domain.Reservation, error)
	CountWithFilter(ctx context.Context, filter domain.ReservationFilter) (int64, error)
	Update(ctx context.Context, res *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
}

// ListingCache интерфейс кеша списков бронирований
type ListingCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
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
