package dbmetrics

import "context"

type txContextKey struct{}

// WithTx кладет активную транзакцию в context.
// Репозитории достают её через GetExecutor и выполняют запросы в рамках транзакции.
func WithTx(ctx context.Context, tx DBExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает исполнителя запросов из context.
// Если в context есть активная транзакция, возвращает её, иначе fallback.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(DBExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в context есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(DBExecutor)
	return ok
}
