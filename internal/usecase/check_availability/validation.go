package check_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}

	// Ровно один способ задать интересующее время
	if req.Time == nil && req.TimeRange == nil {
		return fmt.Errorf("%w: either time or timeRange must be provided", ErrInvalidInput)
	}
	if req.Time != nil && req.TimeRange != nil {
		return fmt.Errorf("%w: time and timeRange are mutually exclusive", ErrInvalidInput)
	}

	return nil
}
