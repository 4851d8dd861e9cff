package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	created      []*domain.Reservation
	nextID       int64
}

func (f *fakeReservationRepo) GetByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	f.created = append(f.created, res)
	return res, nil
}

type fakeCustomerRepo struct {
	customer *domain.Customer
}

func (f *fakeCustomerRepo) GetOrCreate(ctx context.Context, name string) (*domain.Customer, error) {
	if f.customer == nil {
		f.customer = &domain.Customer{ID: 1, Name: name}
	}
	return f.customer, nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateAll(ctx context.Context) error {
	f.calls++
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testConfig() domain.BookingConfig {
	return domain.BookingConfig{
		TotalSeats:                 10,
		SlotDurationMinutes:        30,
		ReservationDurationMinutes: 60,
	}
}

func newTestUseCase(repo *fakeReservationRepo, invalidator *fakeInvalidator) *UseCase {
	return NewUseCase(repo, &fakeCustomerRepo{}, invalidator, passthroughTxManager{}, testConfig(), nopLogger{})
}

func TestExecute_CreatesReservation(t *testing.T) {
	repo := &fakeReservationRepo{}
	invalidator := &fakeInvalidator{}
	uc := newTestUseCase(repo, invalidator)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerName: "Alice",
		Date:         "2026-03-08",
		Time:         "18:00",
		Guests:       4,
	})

	require.NoError(t, err)
	assert.Equal(t, "Reservation successfully created!", resp.Message)
	assert.Empty(t, resp.AvailableSlots)

	require.NotNil(t, resp.Reservation)
	assert.Equal(t, int64(1), resp.Reservation.ID)
	assert.Equal(t, "2026-03-08", resp.Reservation.Date)
	assert.Equal(t, types.TimeString("18:00"), resp.Reservation.Time)
	assert.Equal(t, 4, resp.Reservation.Guests)
	assert.Equal(t, "Alice", resp.Reservation.CustomerName)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 1, invalidator.calls, "cache must be invalidated after a successful write")
}

func TestExecute_SlotTakenReturnsSuggestions(t *testing.T) {
	// Окно 18:00-19:00 заполнено. Вперед первый свободный слот - 18:30,
	// назад окно 17:30 еще захватывает старт 18:00, поэтому - 17:00
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{ID: 100, Date: "2026-03-08", Time: "18:00", Guests: 10},
		},
	}
	invalidator := &fakeInvalidator{}
	uc := newTestUseCase(repo, invalidator)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerName: "Bob",
		Date:         "2026-03-08",
		Time:         "18:00",
		Guests:       2,
	})

	require.NoError(t, err)
	assert.Equal(t, "Requested time is unavailable. Suggested available times:", resp.Message)
	assert.Equal(t, []types.TimeString{"18:30", "17:00"}, resp.AvailableSlots)
	assert.Nil(t, resp.Reservation)

	// Бронирование не создано - кеш не трогаем
	assert.Empty(t, repo.created)
	assert.Zero(t, invalidator.calls)
}

func TestExecute_NoAvailabilityAtAll(t *testing.T) {
	// Весь день занят под завязку
	reservations := make([]*domain.Reservation, 0, 48)
	for slot := 0; slot < 48; slot++ {
		reservations = append(reservations, &domain.Reservation{
			Date:   "2026-03-08",
			Time:   types.FromMinutes(slot * 30),
			Guests: 10,
		})
	}
	repo := &fakeReservationRepo{reservations: reservations}
	invalidator := &fakeInvalidator{}
	uc := newTestUseCase(repo, invalidator)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerName: "Carol",
		Date:         "2026-03-08",
		Time:         "18:00",
		Guests:       2,
	})

	require.ErrorIs(t, err, ErrNoAvailability)
	assert.Contains(t, err.Error(), "no availability for 2 guests on 2026-03-08")
	assert.Empty(t, repo.created)
	assert.Zero(t, invalidator.calls)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeInvalidator{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "blank customer name", req: &Request{CustomerName: "   ", Date: "2026-03-08", Time: "18:00", Guests: 2}},
		{name: "missing date", req: &Request{CustomerName: "Alice", Time: "18:00", Guests: 2}},
		{name: "bad date format", req: &Request{CustomerName: "Alice", Date: "03/08/2026", Time: "18:00", Guests: 2}},
		{name: "missing time", req: &Request{CustomerName: "Alice", Date: "2026-03-08", Guests: 2}},
		{name: "zero guests", req: &Request{CustomerName: "Alice", Date: "2026-03-08", Time: "18:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
