package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrNoAvailability возвращается, когда ни один слот за день не вмещает
	// запрошенное количество гостей
	ErrNoAvailability = errors.New("create_reservation: no availability")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
