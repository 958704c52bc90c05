package create_reservation

import "errors"

var (
	// ErrStoreNotFound возвращается, когда заведение не найдено
	ErrStoreNotFound = errors.New("create_reservation: store not found")

	// ErrStoreInactive возвращается, когда заведение не активно
	ErrStoreInactive = errors.New("create_reservation: store is not active")

	// ErrReservationsNotAccepted возвращается, когда заведение не принимает брони
	ErrReservationsNotAccepted = errors.New("create_reservation: store does not accept reservations")

	// ErrPartySizeExceedsCapacity возвращается, когда размер компании
	// превышает вместимость заведения
	ErrPartySizeExceedsCapacity = errors.New("create_reservation: party size exceeds store capacity")

	// ErrStoreClosed возвращается, когда заведение закрыто в выбранный день
	ErrStoreClosed = errors.New("create_reservation: store is closed on this date")

	// ErrOutsideBusinessHours возвращается, когда время брони вне рабочих часов
	ErrOutsideBusinessHours = errors.New("create_reservation: time is outside business hours")

	// ErrTimeSlotUnavailable возвращается, когда слот занят: точное
	// совпадение времени с существующей активной бронью либо нехватка
	// вместимости с учётом пересекающихся броней
	ErrTimeSlotUnavailable = errors.New("create_reservation: time slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
