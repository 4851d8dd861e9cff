package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long (max %d)", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}

	return nil
}
