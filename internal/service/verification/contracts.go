package verification

import (
	"context"
	"time"

	cache "github.com/LoLe05/jarimae-sub001/internal/infra/cache/verification"
)

// CodeStore интерфейс хранилища кодов подтверждения
type CodeStore interface {
	Save(ctx context.Context, verificationID string, record cache.CodeRecord, ttl time.Duration) error
	GetDel(ctx context.Context, verificationID string) (*cache.CodeRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
