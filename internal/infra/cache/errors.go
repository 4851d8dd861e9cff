package cache

import "errors"

var (
	// ErrMarshal возвращается при ошибке сериализации значения
	ErrMarshal = errors.New("cache: failed to marshal value")

	// ErrInvalidate возвращается при ошибке массовой инвалидации ключей
	ErrInvalidate = errors.New("cache: failed to invalidate keys")
)
