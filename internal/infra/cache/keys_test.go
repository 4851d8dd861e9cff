package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/pkg/ptr"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

func TestListingKey(t *testing.T) {
	filter := domain.ReservationFilter{
		CustomerName: ptr.Ptr("Alice"),
		Date:         ptr.Ptr("2026-03-08"),
	}
	pagination := domain.Pagination{Page: 1, Limit: 10}
	sort := domain.Sort{}

	key := ListingKey(filter, pagination, sort)

	assert.True(t, strings.HasPrefix(key, ListingKeyPrefix))
	assert.Contains(t, key, "Alice")
	assert.Contains(t, key, "2026-03-08")

	// Детерминированность: одинаковая семантика - одинаковый ключ
	assert.Equal(t, key, ListingKey(filter, pagination, sort))

	// Другая страница - другой ключ
	other := ListingKey(filter, domain.Pagination{Page: 2, Limit: 10}, sort)
	assert.NotEqual(t, key, other)
}

func TestAvailabilityKey_SingleTime(t *testing.T) {
	key := AvailabilityKey("2026-03-08", ptr.Ptr(types.TimeString("18:30")), nil, 4)

	assert.Equal(t, "availability:2026-03-08:18:30-none:4", key)
}

func TestAvailabilityKey_TimeRange(t *testing.T) {
	key := AvailabilityKey("2026-03-08", nil, &domain.TimeRange{Start: "18:00", End: "20:00"}, 2)

	assert.Equal(t, "availability:2026-03-08:18:00-20:00:2", key)
}

func TestAvailabilityKey_DistinguishesGuests(t *testing.T) {
	ts := ptr.Ptr(types.TimeString("18:30"))

	assert.NotEqual(t,
		AvailabilityKey("2026-03-08", ts, nil, 2),
		AvailabilityKey("2026-03-08", ts, nil, 4),
	)
}
