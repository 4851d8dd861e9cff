package domain

// BookingConfig holds the restaurant capacity model parameters.
// Loaded once at startup and injected read-only; there is no mutable
// process-wide state.
type BookingConfig struct {
	// TotalSeats общее количество мест в зале
	TotalSeats int

	// SlotDurationMinutes шаг дискретизации дня на слоты
	SlotDurationMinutes int

	// ReservationDurationMinutes сколько минут занимает одно бронирование
	// (не зависит от шага слотов)
	ReservationDurationMinutes int

	// RevalidateOnUpdate повторять ли проверку вместимости при обновлении
	// бронирования. Исторически обновление её пропускает; флаг делает
	// оба поведения доступными.
	RevalidateOnUpdate bool
}

// SlotsPerDay returns the number of discrete slots in a day
func (c BookingConfig) SlotsPerDay() int {
	return MinutesPerDay / c.SlotDurationMinutes
}

// SlotsPerReservation returns how many consecutive slots one reservation
// occupies: ceil(ReservationDurationMinutes / SlotDurationMinutes)
func (c BookingConfig) SlotsPerReservation() int {
	return (c.ReservationDurationMinutes + c.SlotDurationMinutes - 1) / c.SlotDurationMinutes
}
