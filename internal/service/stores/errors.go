package stores

import "errors"

var (
	// ErrStoreNotFound возвращается, когда заведение не найдено
	ErrStoreNotFound = errors.New("store not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSchedule возвращается при некорректном недельном расписании
	ErrInvalidSchedule = errors.New("invalid weekly schedule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
