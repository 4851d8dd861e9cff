package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/internal/infra/cache"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

// Сообщения ответа. Тексты фиксированы - закешированные ответы сравниваются
// клиентами дословно.
const (
	msgSlotAvailable   = "Time slot available"
	msgSlotUnavailable = "Time slot unavailable"
	msgRangeAvailable  = "Available slots within range"
	msgRangeEmpty      = "No available slots in the given range"
)

// UseCase use case проверки доступности временных слотов
type UseCase struct {
	reservationRepo ReservationRepository
	cache           AvailabilityCache
	cfg             domain.BookingConfig
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	availabilityCache AvailabilityCache,
	cfg domain.BookingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		cache:           availabilityCache,
		cfg:             cfg,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности.
// Порядок: кеш -> хранилище -> вычисление -> запись в кеш.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, time=%v, range=%v, guests=%d",
		req.Date, req.Time, req.TimeRange, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем кеш; попадание возвращается дословно
	key := cache.AvailabilityKey(req.Date, req.Time, req.TimeRange, req.Guests)

	var cached Response
	if uc.cache.Get(ctx, key, &cached) {
		uc.logger.Info("CheckAvailability: cache hit for %s", key)
		return &cached, nil
	}

	// 3. Загружаем бронирования на дату
	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get reservations for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Вычисляем доступность
	var resp *Response
	if req.Time != nil {
		resp = uc.checkSingleSlot(reservations, *req.Time, req.Guests)
	} else {
		resp = uc.checkRange(reservations, *req.TimeRange, req.Guests)
	}

	// 5. Кешируем результат; ошибка записи не мешает ответу
	if err := uc.cache.Set(ctx, key, resp, cache.DefaultTTL); err != nil {
		uc.logger.Warn("CheckAvailability: failed to cache result for %s: %v", key, err)
	}

	uc.logger.Info("CheckAvailability: date=%s, %d slots available", req.Date, len(resp.AvailableSlots))
	return resp, nil
}

// checkSingleSlot проверяет вместимость одного окна бронирования
func (uc *UseCase) checkSingleSlot(reservations []*domain.Reservation, t types.TimeString, guests int) *Response {
	windowStart := t.Minutes()
	windowEnd := windowStart + uc.cfg.ReservationDurationMinutes

	if domain.IsSlotAvailable(reservations, windowStart, windowEnd, uc.cfg.TotalSeats, guests) {
		return &Response{
			Message:        msgSlotAvailable,
			AvailableSlots: []types.TimeString{t},
		}
	}

	return &Response{
		Message:        msgSlotUnavailable,
		AvailableSlots: []types.TimeString{},
	}
}

// checkRange собирает все доступные слоты в диапазоне [start, end)
func (uc *UseCase) checkRange(reservations []*domain.Reservation, timeRange domain.TimeRange, guests int) *Response {
	startSlot := timeRange.Start.Minutes() / uc.cfg.SlotDurationMinutes
	endSlot := timeRange.End.Minutes() / uc.cfg.SlotDurationMinutes

	slots := domain.FindSlotsInRange(
		reservations,
		startSlot,
		endSlot,
		uc.cfg.SlotDurationMinutes,
		uc.cfg.TotalSeats,
		guests,
		uc.cfg.ReservationDurationMinutes,
	)

	availableSlots := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		availableSlots = append(availableSlots, types.FromMinutes(slot*uc.cfg.SlotDurationMinutes))
	}

	message := msgRangeAvailable
	if len(availableSlots) == 0 {
		message = msgRangeEmpty
	}

	return &Response{
		Message:        message,
		AvailableSlots: availableSlots,
	}
}
