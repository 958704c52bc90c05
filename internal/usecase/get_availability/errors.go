package get_availability

import "errors"

var (
	// ErrStoreNotFound возвращается, когда заведение не найдено
	ErrStoreNotFound = errors.New("get_availability: store not found")

	// ErrStoreInactive возвращается, когда заведение не активно
	ErrStoreInactive = errors.New("get_availability: store is not active")

	// ErrReservationsNotAccepted возвращается, когда заведение не принимает брони
	ErrReservationsNotAccepted = errors.New("get_availability: store does not accept reservations")

	// ErrPartySizeExceedsCapacity возвращается, когда размер компании
	// превышает вместимость заведения (отказ всему запросу, независимо от времени)
	ErrPartySizeExceedsCapacity = errors.New("get_availability: party size exceeds store capacity")

	// ErrPreferredTimeOutsideHours возвращается, когда желаемое время
	// вне допустимого окна начала посадки
	ErrPreferredTimeOutsideHours = errors.New("get_availability: preferred time is outside business hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
