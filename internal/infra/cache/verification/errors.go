package verification

import "errors"

var (
	// ErrCodeNotFound возвращается, когда код не найден или истёк его TTL
	ErrCodeNotFound = errors.New("verification.cache: code not found")

	// ErrExecCommand возвращается при ошибке выполнения команды Redis
	ErrExecCommand = errors.New("verification.cache: failed to execute command")

	// ErrEncodeRecord возвращается при ошибке сериализации записи
	ErrEncodeRecord = errors.New("verification.cache: failed to encode record")

	// ErrDecodeRecord возвращается при ошибке десериализации записи
	ErrDecodeRecord = errors.New("verification.cache: failed to decode record")
)
