package check_availability

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/pkg/ptr"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	calls        int
}

func (f *fakeReservationRepo) GetByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type fakeCache struct {
	store map[string][]byte
	sets  int
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
	f.sets++
	return nil
}

func testConfig() domain.BookingConfig {
	return domain.BookingConfig{
		TotalSeats:                 10,
		SlotDurationMinutes:        30,
		ReservationDurationMinutes: 60,
	}
}

func timePtr(s string) *types.TimeString {
	return ptr.Ptr(types.TimeString(s))
}

func TestExecute_SingleSlotAvailable(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(repo, newFakeCache(), testConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   "2026-03-08",
		Time:   timePtr("12:00"),
		Guests: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "Time slot available", resp.Message)
	assert.Equal(t, []types.TimeString{"12:00"}, resp.AvailableSlots)
}

func TestExecute_SingleSlotUnavailable(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{Date: "2026-03-08", Time: "18:00", Guests: 9},
		},
	}
	uc := NewUseCase(repo, newFakeCache(), testConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   "2026-03-08",
		Time:   timePtr("18:00"),
		Guests: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "Time slot unavailable", resp.Message)
	assert.Empty(t, resp.AvailableSlots)
}

func TestExecute_RangeCollectsFeasibleSlots(t *testing.T) {
	// 18:00 занято восемью гостями: для пятерых выпадают слоты,
	// чьи окна захватывают этот старт
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{Date: "2026-03-08", Time: "18:00", Guests: 8},
		},
	}
	uc := NewUseCase(repo, newFakeCache(), testConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      "2026-03-08",
		TimeRange: &domain.TimeRange{Start: "17:00", End: "19:00"},
		Guests:    5,
	})

	require.NoError(t, err)
	assert.Equal(t, "Available slots within range", resp.Message)
	assert.Equal(t, []types.TimeString{"17:00", "18:30"}, resp.AvailableSlots)
}

func TestExecute_RangeEmpty(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{Date: "2026-03-08", Time: "18:00", Guests: 10},
			{Date: "2026-03-08", Time: "18:30", Guests: 10},
		},
	}
	uc := NewUseCase(repo, newFakeCache(), testConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      "2026-03-08",
		TimeRange: &domain.TimeRange{Start: "18:00", End: "19:00"},
		Guests:    1,
	})

	require.NoError(t, err)
	assert.Equal(t, "No available slots in the given range", resp.Message)
	assert.Empty(t, resp.AvailableSlots)
}

func TestExecute_CacheHitSkipsRepository(t *testing.T) {
	repo := &fakeReservationRepo{}
	cacheFake := newFakeCache()
	uc := NewUseCase(repo, cacheFake, testConfig(), nopLogger{})

	req := &Request{
		Date:   "2026-03-08",
		Time:   timePtr("12:00"),
		Guests: 2,
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)
	require.Equal(t, 1, cacheFake.sets)

	// Повторный запрос отвечает из кеша дословно
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, newFakeCache(), testConfig(), nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing date", req: &Request{Time: timePtr("12:00"), Guests: 2}},
		{name: "bad date format", req: &Request{Date: "08-03-2026", Time: timePtr("12:00"), Guests: 2}},
		{name: "zero guests", req: &Request{Date: "2026-03-08", Time: timePtr("12:00")}},
		{name: "neither time nor range", req: &Request{Date: "2026-03-08", Guests: 2}},
		{
			name: "both time and range",
			req: &Request{
				Date:      "2026-03-08",
				Time:      timePtr("12:00"),
				TimeRange: &domain.TimeRange{Start: "12:00", End: "14:00"},
				Guests:    2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeReservationRepo{err: assert.AnError}
	uc := NewUseCase(repo, newFakeCache(), testConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:   "2026-03-08",
		Time:   timePtr("12:00"),
		Guests: 2,
	})

	assert.ErrorIs(t, err, ErrInternal)
}
