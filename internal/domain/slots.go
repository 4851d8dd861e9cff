package domain

// IsSlotAvailable reports whether a party of the given size fits into the
// window [windowStart, windowEnd) in minutes of day.
//
// Occupancy counts only reservations whose start instant falls inside the
// window. A reservation that starts earlier and runs into the window is not
// counted. This start-instant model is the established capacity contract;
// do not switch it to full interval overlap.
func IsSlotAvailable(reservations []*Reservation, windowStart, windowEnd, totalSeats, guests int) bool {
	occupied := 0
	for _, res := range reservations {
		start := res.Time.Minutes()
		if start >= windowStart && start < windowEnd {
			occupied += res.Guests
		}
	}
	return occupied+guests <= totalSeats
}

// slotsPerReservation returns how many consecutive slots one reservation
// occupies: ceil(reservationDuration / slotDuration)
func slotsPerReservation(reservationDuration, slotDuration int) int {
	return (reservationDuration + slotDuration - 1) / slotDuration
}

// FindNearestSlots searches outward from requestedSlot for feasible slots.
// It scans forward from requestedSlot+1 to the end of the day and takes the
// first feasible slot, then scans backward from requestedSlot-1 to slot 0
// and takes the first feasible slot. The result holds up to two slot
// indices, the later one first; it is empty when neither direction has a
// feasible slot.
func FindNearestSlots(reservations []*Reservation, requestedSlot, slotDuration, totalSeats, guests, reservationDuration int) []int {
	span := slotsPerReservation(reservationDuration, slotDuration)
	slots := make([]int, 0, 2)

	// Поиск вперед: первый подходящий слот после запрошенного
	for i := requestedSlot + 1; i < MinutesPerDay/slotDuration; i++ {
		if IsSlotAvailable(reservations, i*slotDuration, (i+span)*slotDuration, totalSeats, guests) {
			slots = append(slots, i)
			break
		}
	}

	// Поиск назад: первый подходящий слот до запрошенного
	for i := requestedSlot - 1; i >= 0; i-- {
		if IsSlotAvailable(reservations, i*slotDuration, (i+span)*slotDuration, totalSeats, guests) {
			slots = append(slots, i)
			break
		}
	}

	return slots
}

// FindSlotsInRange collects every feasible slot in the half-open range
// [startSlot, endSlot), in ascending order. Unlike FindNearestSlots it does
// not stop at the first hit.
func FindSlotsInRange(reservations []*Reservation, startSlot, endSlot, slotDuration, totalSeats, guests, reservationDuration int) []int {
	span := slotsPerReservation(reservationDuration, slotDuration)
	slots := make([]int, 0)

	for i := startSlot; i < endSlot; i++ {
		if IsSlotAvailable(reservations, i*slotDuration, (i+span)*slotDuration, totalSeats, guests) {
			slots = append(slots, i)
		}
	}

	return slots
}
