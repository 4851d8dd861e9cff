package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/internal/infra/cache"
	reservationRepo "github.com/m04kA/Restaurant-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/Restaurant-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с существующими бронированиями:
// списки, просмотр, изменение и отмена.
type Service struct {
	repo      ReservationRepository
	cache     ListingCache
	txManager TransactionManager
	cfg       domain.BookingConfig
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	repo ReservationRepository,
	listingCache ListingCache,
	txManager TransactionManager,
	cfg domain.BookingConfig,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		cache:     listingCache,
		txManager: txManager,
		cfg:       cfg,
		logger:    logger,
	}
}

// List получает страницу бронирований с фильтрацией и сортировкой.
// Результат кешируется; ключ включает фильтр, пагинацию и сортировку,
// поэтому разные запросы не пересекаются.
func (s *Service) List(ctx context.Context, req models.ListRequest) (*models.ListResponse, error) {
	if req.Sort.SortBy != nil && !req.Sort.SortBy.IsValid() {
		return nil, fmt.Errorf("%w: List - unsupported sort field %q", ErrInvalidInput, *req.Sort.SortBy)
	}

	req.Pagination = req.Pagination.Normalize()

	key := cache.ListingKey(req.Filter, req.Pagination, req.Sort)

	var cached models.ListResponse
	if s.cache.Get(ctx, key, &cached) {
		s.logger.Info("List: cache hit, key=%s", key)
		return &cached, nil
	}

	items, err := s.repo.ListWithFilter(ctx, req.Filter, req.Sort, req.Pagination)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.repo.CountWithFilter(ctx, req.Filter)
	if err != nil {
		s.logger.Error("List: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	response := &models.ListResponse{
		Items:      models.FromDomainReservationList(items),
		TotalCount: total,
	}

	if err := s.cache.Set(ctx, key, response, cache.DefaultTTL); err != nil {
		s.logger.Warn("List: failed to cache response: %v", err)
	}

	return response, nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// Update изменяет дату, время или количество гостей бронирования.
// Nil-поля запроса сохраняют текущие значения. При включенном
// revalidate_on_update новое время проходит проверку вместимости,
// собственные места бронирования при этом не учитываются.
func (s *Service) Update(ctx context.Context, req models.UpdateRequest) (*models.ReservationResponse, error) {
	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: invalid request for reservation id=%d: %v", req.ID, err)
		return nil, err
	}

	res, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Update: reservation id=%d not found", req.ID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Update: repository error for reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Date != nil {
		res.Date = *req.Date
	}
	if req.Time != nil {
		res.Time = *req.Time
	}
	if req.Guests != nil {
		res.Guests = *req.Guests
	}

	if s.cfg.RevalidateOnUpdate {
		err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			if err := s.checkCapacityExcluding(txCtx, res); err != nil {
				return err
			}
			return s.repo.Update(txCtx, res)
		})
	} else {
		err = s.repo.Update(ctx, res)
	}

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			s.logger.Warn("Update: slot not available for reservation id=%d", req.ID)
			return nil, err
		}
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Update: failed to update reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.InvalidateAll(ctx); err != nil {
		s.logger.Warn("Update: failed to invalidate cache: %v", err)
	}

	s.logger.Info("Update: successfully updated reservation id=%d", req.ID)
	return models.FromDomainReservation(res), nil
}

// Cancel отменяет бронирование. Кеш инвалидируется только при
// фактическом удалении - отмена несуществующего бронирования
// состояния не меняет.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to delete reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.InvalidateAll(ctx); err != nil {
		s.logger.Warn("Cancel: failed to invalidate cache: %v", err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// checkCapacityExcluding проверяет вместимость окна бронирования,
// не считая места самого бронирования res
func (s *Service) checkCapacityExcluding(ctx context.Context, res *domain.Reservation) error {
	sameDay, err := s.repo.GetByDate(ctx, res.Date)
	if err != nil {
		return fmt.Errorf("%w: checkCapacityExcluding - repository error: %v", ErrInternal, err)
	}

	others := make([]*domain.Reservation, 0, len(sameDay))
	for _, r := range sameDay {
		if r.ID == res.ID {
			continue
		}
		others = append(others, r)
	}

	windowStart, windowEnd := res.Window(s.cfg.ReservationDurationMinutes)
	if !domain.IsSlotAvailable(others, windowStart, windowEnd, s.cfg.TotalSeats, res.Guests) {
		return ErrSlotNotAvailable
	}

	return nil
}

// validateUpdateRequest проверяет поля запроса обновления
func validateUpdateRequest(req models.UpdateRequest) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}
	if req.Date == nil && req.Time == nil && req.Guests == nil {
		return fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}
	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			return fmt.Errorf("%w: date must not be empty", ErrInvalidInput)
		}
		if _, err := time.Parse(domain.DateFormat, *req.Date); err != nil {
			return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
		}
	}
	if req.Guests != nil && *req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}
	return nil
}
