package reservations

import "errors"

var (
	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")
	// ErrSlotNotAvailable нет мест на новое время
	ErrSlotNotAvailable = errors.New("reservations: slot not available")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("reservations: invalid input data")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("reservations: internal error")
)
