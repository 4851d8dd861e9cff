package reservations

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/Restaurant-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/Restaurant-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/Restaurant-ReservationService/pkg/ptr"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	byID      map[int64]*domain.Reservation
	byDate    map[string][]*domain.Reservation
	listCalls int
	updated   []*domain.Reservation
	deleted   []int64
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeRepo {
	f := &fakeRepo{
		byID:   make(map[int64]*domain.Reservation),
		byDate: make(map[string][]*domain.Reservation),
	}
	for _, res := range reservations {
		f.byID[res.ID] = res
		f.byDate[res.Date] = append(f.byDate[res.Date], res)
	}
	return f
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeRepo) GetByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	return f.byDate[date], nil
}

func (f *fakeRepo) ListWithFilter(ctx context.Context, filter domain.ReservationFilter, sort domain.Sort, pagination domain.Pagination) ([]*domain.Reservation, error) {
	f.listCalls++
	list := make([]*domain.Reservation, 0, len(f.byID))
	for _, res := range f.byID {
		list = append(list, res)
	}
	return list, nil
}

func (f *fakeRepo) CountWithFilter(ctx context.Context, filter domain.ReservationFilter) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeRepo) Update(ctx context.Context, res *domain.Reservation) error {
	if _, ok := f.byID[res.ID]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	f.byID[res.ID] = res
	f.updated = append(f.updated, res)
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCache struct {
	store       map[string][]byte
	invalidates int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) bool {
	raw, ok := f.store[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = raw
	return nil
}

func (f *fakeCache) InvalidateAll(ctx context.Context) error {
	f.invalidates++
	f.store = make(map[string][]byte)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testConfig(revalidate bool) domain.BookingConfig {
	return domain.BookingConfig{
		TotalSeats:                 10,
		SlotDurationMinutes:        30,
		ReservationDurationMinutes: 60,
		RevalidateOnUpdate:         revalidate,
	}
}

func newTestService(repo *fakeRepo, cacheFake *fakeCache, revalidate bool) *Service {
	return NewService(repo, cacheFake, passthroughTxManager{}, testConfig(revalidate), nopLogger{})
}

func sampleReservation(id int64, timeStr types.TimeString, guests int) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		Date:         "2026-03-08",
		Time:         timeStr,
		Guests:       guests,
		CustomerID:   1,
		CustomerName: "Alice",
	}
}

func TestList_CachesResponse(t *testing.T) {
	repo := newFakeRepo(sampleReservation(1, "18:00", 4))
	cacheFake := newFakeCache()
	svc := newTestService(repo, cacheFake, false)

	req := models.ListRequest{
		Filter: domain.ReservationFilter{Date: ptr.Ptr("2026-03-08")},
	}

	first, err := svc.List(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls)
	assert.Len(t, first.Items, 1)
	assert.Equal(t, int64(1), first.TotalCount)

	// Повторный запрос отвечает из кеша
	second, err := svc.List(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, first, second)
}

func TestList_RejectsUnknownSortField(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeCache(), false)

	bad := domain.SortField("price")
	_, err := svc.List(context.Background(), models.ListRequest{
		Sort: domain.Sort{SortBy: &bad},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo(sampleReservation(7, "18:00", 4))
	svc := newTestService(repo, newFakeCache(), false)

	res, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, types.TimeString("18:00"), res.Time)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakeRepo(sampleReservation(1, "18:00", 4))
	cacheFake := newFakeCache()
	svc := newTestService(repo, cacheFake, false)

	res, err := svc.Update(context.Background(), models.UpdateRequest{
		ID:     1,
		Guests: ptr.Ptr(6),
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), res.Time, "time must stay unchanged")
	assert.Equal(t, 6, res.Guests)
	assert.Equal(t, 1, cacheFake.invalidates)
}

func TestUpdate_WithoutRevalidationSkipsCapacityCheck(t *testing.T) {
	// Окно 20:00 заполнено чужим бронированием, но проверка выключена -
	// перенос проходит
	repo := newFakeRepo(
		sampleReservation(1, "18:00", 4),
		sampleReservation(2, "20:00", 10),
	)
	svc := newTestService(repo, newFakeCache(), false)

	res, err := svc.Update(context.Background(), models.UpdateRequest{
		ID:   1,
		Time: ptr.Ptr(types.TimeString("20:00")),
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("20:00"), res.Time)
}

func TestUpdate_WithRevalidationRejectsFullWindow(t *testing.T) {
	repo := newFakeRepo(
		sampleReservation(1, "18:00", 4),
		sampleReservation(2, "20:00", 10),
	)
	cacheFake := newFakeCache()
	svc := newTestService(repo, cacheFake, true)

	_, err := svc.Update(context.Background(), models.UpdateRequest{
		ID:   1,
		Time: ptr.Ptr(types.TimeString("20:00")),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.updated)
	assert.Zero(t, cacheFake.invalidates)
}

func TestUpdate_WithRevalidationIgnoresOwnSeats(t *testing.T) {
	// Единственное бронирование в окне - свое собственное: изменение
	// количества гостей в том же окне не конфликтует само с собой
	repo := newFakeRepo(sampleReservation(1, "18:00", 10))
	svc := newTestService(repo, newFakeCache(), true)

	res, err := svc.Update(context.Background(), models.UpdateRequest{
		ID:     1,
		Guests: ptr.Ptr(8),
	})

	require.NoError(t, err)
	assert.Equal(t, 8, res.Guests)
}

func TestUpdate_Validation(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeCache(), false)

	tests := []struct {
		name string
		req  models.UpdateRequest
	}{
		{name: "no fields", req: models.UpdateRequest{ID: 1}},
		{name: "zero id", req: models.UpdateRequest{Guests: ptr.Ptr(2)}},
		{name: "bad date", req: models.UpdateRequest{ID: 1, Date: ptr.Ptr("03/08/2026")}},
		{name: "zero guests", req: models.UpdateRequest{ID: 1, Guests: ptr.Ptr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(sampleReservation(1, "18:00", 4))
	cacheFake := newFakeCache()
	svc := newTestService(repo, cacheFake, false)

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)
	assert.Equal(t, 1, cacheFake.invalidates)
}

func TestCancel_NotFoundLeavesCacheUntouched(t *testing.T) {
	repo := newFakeRepo()
	cacheFake := newFakeCache()
	svc := newTestService(repo, cacheFake, false)

	err := svc.Cancel(context.Background(), 42)

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Zero(t, cacheFake.invalidates, "failed cancel must not invalidate the cache")
}
