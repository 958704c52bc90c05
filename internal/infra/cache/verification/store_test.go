package verification

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client), mr
}

func TestStoreSaveGetDel(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	record := CodeRecord{
		Phone:    "+79001234567",
		Code:     "123456",
		IssuedAt: time.Now().Truncate(time.Second),
	}

	require.NoError(t, store.Save(ctx, "vid-1", record, time.Minute))

	got, err := store.GetDel(ctx, "vid-1")
	require.NoError(t, err)
	assert.Equal(t, record.Phone, got.Phone)
	assert.Equal(t, record.Code, got.Code)

	// Код одноразовый: повторное чтение не находит запись
	_, err = store.GetDel(ctx, "vid-1")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestStoreGetDelMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetDel(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestStoreTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	record := CodeRecord{Phone: "+79001234567", Code: "654321", IssuedAt: time.Now()}
	require.NoError(t, store.Save(ctx, "vid-ttl", record, 30*time.Second))

	mr.FastForward(31 * time.Second)

	_, err := store.GetDel(ctx, "vid-ttl")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}
