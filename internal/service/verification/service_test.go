package verification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/LoLe05/jarimae-sub001/internal/infra/cache/verification"
	"github.com/LoLe05/jarimae-sub001/internal/service/verification/models"
)

// fakeCodeStore хранит коды в памяти с семантикой GetDel
type fakeCodeStore struct {
	records map[string]cache.CodeRecord
	saveErr error
	lastTTL time.Duration
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{records: make(map[string]cache.CodeRecord)}
}

func (f *fakeCodeStore) Save(_ context.Context, verificationID string, record cache.CodeRecord, ttl time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[verificationID] = record
	f.lastTTL = ttl
	return nil
}

func (f *fakeCodeStore) GetDel(_ context.Context, verificationID string) (*cache.CodeRecord, error) {
	record, ok := f.records[verificationID]
	if !ok {
		return nil, cache.ErrCodeNotFound
	}
	delete(f.records, verificationID)
	return &record, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConfig() Config {
	return Config{
		CodeTTL:        5 * time.Minute,
		IssuePerMinute: 1,
		IssueBurst:     3,
	}
}

func TestIssue(t *testing.T) {
	t.Run("успешная выдача кода", func(t *testing.T) {
		store := newFakeCodeStore()
		svc := NewService(store, testConfig(), nopLogger{})

		resp, err := svc.Issue(context.Background(), &models.IssueCodeRequest{Phone: "+79001234567"})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.VerificationID)
		assert.Equal(t, 300, resp.ExpiresInSeconds)
		assert.Equal(t, 5*time.Minute, store.lastTTL)

		record, ok := store.records[resp.VerificationID]
		require.True(t, ok)
		assert.Equal(t, "+79001234567", record.Phone)
		assert.Len(t, record.Code, 6)
	})

	t.Run("некорректный номер телефона", func(t *testing.T) {
		svc := NewService(newFakeCodeStore(), testConfig(), nopLogger{})

		for _, phone := range []string{"", "abc", "+7 900 123", "1234567"} {
			_, err := svc.Issue(context.Background(), &models.IssueCodeRequest{Phone: phone})
			assert.ErrorIs(t, err, ErrInvalidPhone, "phone=%q", phone)
		}
	})

	t.Run("лимит выдачи на номер", func(t *testing.T) {
		svc := NewService(newFakeCodeStore(), testConfig(), nopLogger{})
		ctx := context.Background()

		// Burst исчерпывается, следующий запрос отклоняется
		for i := 0; i < 3; i++ {
			_, err := svc.Issue(ctx, &models.IssueCodeRequest{Phone: "+79001234567"})
			require.NoError(t, err)
		}
		_, err := svc.Issue(ctx, &models.IssueCodeRequest{Phone: "+79001234567"})
		assert.ErrorIs(t, err, ErrTooManyRequests)

		// Лимит считается отдельно на каждый номер
		_, err = svc.Issue(ctx, &models.IssueCodeRequest{Phone: "+79007654321"})
		assert.NoError(t, err)
	})
}

func TestConfirm(t *testing.T) {
	issue := func(t *testing.T, svc *Service, store *fakeCodeStore) (string, string) {
		t.Helper()
		resp, err := svc.Issue(context.Background(), &models.IssueCodeRequest{Phone: "+79001234567"})
		require.NoError(t, err)
		return resp.VerificationID, store.records[resp.VerificationID].Code
	}

	t.Run("успешная проверка", func(t *testing.T) {
		store := newFakeCodeStore()
		svc := NewService(store, testConfig(), nopLogger{})
		id, code := issue(t, svc, store)

		resp, err := svc.Confirm(context.Background(), &models.ConfirmCodeRequest{VerificationID: id, Code: code})
		require.NoError(t, err)
		assert.True(t, resp.Verified)
		assert.Equal(t, "+79001234567", resp.Phone)

		// Код одноразовый
		_, err = svc.Confirm(context.Background(), &models.ConfirmCodeRequest{VerificationID: id, Code: code})
		assert.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("неверный код", func(t *testing.T) {
		store := newFakeCodeStore()
		svc := NewService(store, testConfig(), nopLogger{})
		id, code := issue(t, svc, store)

		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}
		_, err := svc.Confirm(context.Background(), &models.ConfirmCodeRequest{VerificationID: id, Code: wrong})
		assert.ErrorIs(t, err, ErrCodeMismatch)
	})

	t.Run("неизвестный идентификатор", func(t *testing.T) {
		svc := NewService(newFakeCodeStore(), testConfig(), nopLogger{})
		_, err := svc.Confirm(context.Background(), &models.ConfirmCodeRequest{VerificationID: "no-such-id", Code: "123456"})
		assert.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("пустые входные данные", func(t *testing.T) {
		svc := NewService(newFakeCodeStore(), testConfig(), nopLogger{})
		_, err := svc.Confirm(context.Background(), &models.ConfirmCodeRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
