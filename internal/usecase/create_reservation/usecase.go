package create_reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

// Сообщения ответа (тексты фиксированы)
const (
	msgCreated     = "Reservation successfully created!"
	msgSuggestions = "Requested time is unavailable. Suggested available times:"
)

// UseCase use case создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	customerRepo    CustomerRepository
	cache           AvailabilityCache
	txManager       TransactionManager
	cfg             domain.BookingConfig
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	customerRepo CustomerRepository,
	availabilityCache AvailabilityCache,
	txManager TransactionManager,
	cfg domain.BookingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		cache:           availabilityCache,
		txManager:       txManager,
		cfg:             cfg,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и запись выполняются в одной сериализуемой
// транзакции с блокировкой строк даты (FOR UPDATE) - два конкурентных
// создания не могут оба пройти проверку одного переполненного окна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: customer=%s, date=%s, time=%s, guests=%d",
		req.CustomerName, req.Date, req.Time, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим или создаем клиента по имени
	customer, err := uc.customerRepo.GetOrCreate(ctx, req.CustomerName)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to resolve customer %q: %v", req.CustomerName, err)
		return nil, fmt.Errorf("%w: failed to resolve customer: %v", ErrInternal, err)
	}

	var created *domain.Reservation
	var suggestions []types.TimeString

	// 3. Проверка вместимости и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Бронирования на дату (с блокировкой FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 3.2. Проверяем вместимость запрошенного окна
		windowStart := req.Time.Minutes()
		windowEnd := windowStart + uc.cfg.ReservationDurationMinutes

		if !domain.IsSlotAvailable(reservations, windowStart, windowEnd, uc.cfg.TotalSeats, req.Guests) {
			// 3.3. Окно занято - ищем ближайшие альтернативы
			nearest := domain.FindNearestSlots(
				reservations,
				windowStart/uc.cfg.SlotDurationMinutes,
				uc.cfg.SlotDurationMinutes,
				uc.cfg.TotalSeats,
				req.Guests,
				uc.cfg.ReservationDurationMinutes,
			)

			if len(nearest) == 0 {
				uc.logger.Warn("CreateReservation: no availability for %d guests on %s", req.Guests, req.Date)
				return fmt.Errorf("%w: no availability for %d guests on %s", ErrNoAvailability, req.Guests, req.Date)
			}

			suggestions = make([]types.TimeString, 0, len(nearest))
			for _, slot := range nearest {
				suggestions = append(suggestions, types.FromMinutes(slot*uc.cfg.SlotDurationMinutes))
			}
			return nil
		}

		// 3.4. Окно свободно - создаем бронирование
		created, err = uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Date:         req.Date,
			Time:         req.Time,
			Guests:       req.Guests,
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Окно было занято: возвращаем предложения, ничего не создано
	if len(suggestions) > 0 {
		uc.logger.Info("CreateReservation: slot taken, suggesting %d alternatives", len(suggestions))
		return &Response{
			Message:        msgSuggestions,
			AvailableSlots: suggestions,
		}, nil
	}

	// 5. Инвалидируем кеш после успешной записи.
	// Ошибка инвалидации не отменяет бронирование: устаревшие записи
	// ограничены TTL кеша.
	if err := uc.cache.InvalidateAll(ctx); err != nil {
		uc.logger.Error("CreateReservation: cache invalidation failed: %v", err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", created.ID)

	return &Response{
		Message:        msgCreated,
		AvailableSlots: []types.TimeString{},
		Reservation:    fromDomain(created),
	}, nil
}
