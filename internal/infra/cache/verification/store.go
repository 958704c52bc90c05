package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "verification:code:"

// CodeRecord запись кода подтверждения в Redis
type CodeRecord struct {
	Phone    string    `json:"phone"`
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issuedAt"`
}

// Store хранилище кодов подтверждения поверх Redis.
// Код живёт ровно TTL и удаляется при первом успешном чтении (GetDel),
// поэтому каждый код можно проверить только один раз.
type Store struct {
	client *redis.Client
}

// NewStore создает новое хранилище кодов подтверждения
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Save сохраняет код подтверждения с заданным TTL
func (s *Store) Save(ctx context.Context, verificationID string, record CodeRecord, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrEncodeRecord, err)
	}

	if err := s.client.Set(ctx, keyPrefix+verificationID, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrExecCommand, err)
	}

	return nil
}

// GetDel атомарно читает и удаляет код подтверждения.
// Возвращает ErrCodeNotFound, если код не существует или истёк.
func (s *Store) GetDel(ctx context.Context, verificationID string) (*CodeRecord, error) {
	data, err := s.client.GetDel(ctx, keyPrefix+verificationID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("%w: GetDel: %v", ErrExecCommand, err)
	}

	var record CodeRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("%w: GetDel: %v", ErrDecodeRecord, err)
	}

	return &record, nil
}
