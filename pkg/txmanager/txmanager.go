// Package txmanager менеджер транзакций поверх dbmetrics.DB
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/LoLe05/jarimae-sub001/pkg/dbmetrics"
)

// serializableRetries количество повторов сериализуемой транзакции
// при конфликте сериализации или deadlock
const serializableRetries = 3

// Коды ошибок Postgres, при которых сериализуемую транзакцию можно повторить
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// ErrTransaction возвращается при ошибках управления транзакцией
var ErrTransaction = errors.New("txmanager: transaction error")

// TransactionManager выполняет функции в рамках транзакции БД.
// Транзакция передается вниз по стеку через context (dbmetrics.WithTx).
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с изоляцией по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE.
// При конфликте сериализации (40001) или deadlock (40P01) транзакция
// автоматически повторяется ограниченное число раз.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < serializableRetries; attempt++ {
		lastErr = m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: serializable retries exhausted: %v", ErrTransaction, lastErr)
}

// DoReadOnly выполняет fn в транзакции только для чтения
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}

	return nil
}

// isRetryable определяет, можно ли повторить транзакцию после ошибки
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgSerializationFailure || string(pqErr.Code) == pgDeadlockDetected
}
