package verification

import "errors"

var (
	// ErrInvalidPhone возвращается при некорректном формате номера телефона
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrTooManyRequests возвращается при превышении лимита выдачи кодов на номер
	ErrTooManyRequests = errors.New("too many verification requests")

	// ErrCodeNotFound возвращается, когда код не найден или истёк
	ErrCodeNotFound = errors.New("verification code not found or expired")

	// ErrCodeMismatch возвращается при неверном коде подтверждения
	ErrCodeMismatch = errors.New("verification code mismatch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
