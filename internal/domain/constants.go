package domain

// Default configuration values
const (
	DefaultTotalSeats                 = 10
	DefaultSlotDurationMinutes        = 30
	DefaultReservationDurationMinutes = 60
)

// Business validation constants
const (
	MinGuests               = 1
	MinSlotDurationMinutes  = 5
	MaxSlotDurationMinutes  = 480 // 8 hours
	MaxCustomerNameLength   = 200
)

// Listing defaults
const (
	DefaultPage      = 1
	DefaultPageLimit = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60
