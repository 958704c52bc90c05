package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	storeRepo "github.com/LoLe05/jarimae-sub001/internal/infra/storage/store"
	"github.com/LoLe05/jarimae-sub001/internal/integrations/notification"
	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

type fakeStoreRepo struct {
	store *domain.Store
	err   error
}

func (f *fakeStoreRepo) GetByID(_ context.Context, _ int64) (*domain.Store, error) {
	return f.store, f.err
}

type fakeReservationRepo struct {
	existing []*domain.Reservation
	created  *domain.Reservation
}

func (f *fakeReservationRepo) GetByStoreWithFilter(_ context.Context, _ domain.StoreReservationsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	created := *res
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	events chan *notification.ReservationCreatedEvent
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{events: make(chan *notification.ReservationCreatedEvent, 1)}
}

func (f *fakeNotifier) SendReservationCreated(_ context.Context, event *notification.ReservationCreatedEvent) error {
	f.events <- event
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testStore() *domain.Store {
	hours := make([]domain.BusinessHour, 0, domain.DaysPerWeek)
	for day := 0; day < domain.DaysPerWeek; day++ {
		h := domain.BusinessHour{DayOfWeek: day, OpenTime: "10:00", CloseTime: "22:00"}
		if day == 0 {
			h = domain.BusinessHour{DayOfWeek: 0, IsClosed: true}
		}
		hours = append(hours, h)
	}
	return &domain.Store{
		ID:                         1,
		OwnerID:                    100,
		Name:                       "Тестовое заведение",
		Status:                     domain.StoreStatusActive,
		Capacity:                   10,
		AverageMealDurationMinutes: 90,
		AcceptsReservations:        true,
		BusinessHours:              hours,
	}
}

var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
var sunday = time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		StoreID:      1,
		CustomerID:   7,
		Date:         monday,
		Time:         "18:30",
		PartySize:    4,
		ContactName:  "Иван",
		ContactPhone: "+79001234567",
	}
}

type testEnv struct {
	uc       *UseCase
	resRepo  *fakeReservationRepo
	tx       *fakeTxManager
	notifier *fakeNotifier
}

func newTestEnv(store *domain.Store, storeErr error, existing []*domain.Reservation) *testEnv {
	resRepo := &fakeReservationRepo{existing: existing}
	tx := &fakeTxManager{}
	notifier := newFakeNotifier()
	uc := NewUseCase(&fakeStoreRepo{store: store, err: storeErr}, resRepo, tx, notifier, nopLogger{})
	return &testEnv{uc: uc, resRepo: resRepo, tx: tx, notifier: notifier}
}

func TestExecute_Success(t *testing.T) {
	env := newTestEnv(testStore(), nil, nil)

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, types.TimeString("18:30"), resp.ReservationTime)
	// Длительность по умолчанию - средняя по заведению
	assert.Equal(t, 90, resp.EstimatedDurationMinutes)
	assert.Equal(t, 1, env.tx.calls)

	// Владелец уведомляется после создания брони
	select {
	case event := <-env.notifier.events:
		assert.Equal(t, int64(42), event.ReservationID)
	case <-time.After(time.Second):
		t.Fatal("уведомление владельцу не отправлено")
	}
}

func TestExecute_ExplicitDuration(t *testing.T) {
	env := newTestEnv(testStore(), nil, nil)

	req := validRequest()
	duration := 45
	req.EstimatedDurationMinutes = &duration

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 45, resp.EstimatedDurationMinutes)
}

func TestExecute_Validation(t *testing.T) {
	env := newTestEnv(testStore(), nil, nil)

	mutate := []struct {
		name string
		fn   func(*Request)
	}{
		{"нулевой storeID", func(r *Request) { r.StoreID = 0 }},
		{"нулевой customerID", func(r *Request) { r.CustomerID = 0 }},
		{"пустая дата", func(r *Request) { r.Date = time.Time{} }},
		{"пустое время", func(r *Request) { r.Time = "" }},
		{"некорректное время", func(r *Request) { r.Time = "25:99" }},
		{"нулевой размер компании", func(r *Request) { r.PartySize = 0 }},
		{"пустое контактное имя", func(r *Request) { r.ContactName = "" }},
		{"пустой телефон", func(r *Request) { r.ContactPhone = "" }},
	}

	for _, tc := range mutate {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.fn(req)
			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StoreChecks(t *testing.T) {
	t.Run("заведение не найдено", func(t *testing.T) {
		env := newTestEnv(nil, storeRepo.ErrStoreNotFound, nil)
		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})

	t.Run("заведение не активно", func(t *testing.T) {
		store := testStore()
		store.Status = domain.StoreStatusPending
		env := newTestEnv(store, nil, nil)
		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStoreInactive)
	})

	t.Run("брони отключены", func(t *testing.T) {
		store := testStore()
		store.AcceptsReservations = false
		env := newTestEnv(store, nil, nil)
		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrReservationsNotAccepted)
	})

	t.Run("компания больше вместимости", func(t *testing.T) {
		env := newTestEnv(testStore(), nil, nil)
		req := validRequest()
		req.PartySize = 11
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPartySizeExceedsCapacity)
	})

	t.Run("закрытый день", func(t *testing.T) {
		env := newTestEnv(testStore(), nil, nil)
		req := validRequest()
		req.Date = sunday
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStoreClosed)
	})
}

func TestExecute_BusinessHours(t *testing.T) {
	t.Run("время до открытия", func(t *testing.T) {
		env := newTestEnv(testStore(), nil, nil)
		req := validRequest()
		req.Time = "09:30"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	})

	t.Run("время после закрытия", func(t *testing.T) {
		env := newTestEnv(testStore(), nil, nil)
		req := validRequest()
		req.Time = "22:30"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	})

	t.Run("граница закрытия включительно", func(t *testing.T) {
		env := newTestEnv(testStore(), nil, nil)
		req := validRequest()
		req.Time = "22:00"
		resp, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("22:00"), resp.ReservationTime)
	})
}

func TestExecute_TimeSlotUnavailable(t *testing.T) {
	t.Run("точное совпадение времени", func(t *testing.T) {
		existing := []*domain.Reservation{{
			Status:                   domain.StatusPending,
			ReservationTime:          "18:30",
			PartySize:                2,
			EstimatedDurationMinutes: 60,
		}}
		env := newTestEnv(testStore(), nil, existing)

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTimeSlotUnavailable)
		assert.Nil(t, env.resRepo.created)
	})

	t.Run("нехватка вместимости", func(t *testing.T) {
		existing := []*domain.Reservation{{
			Status:                   domain.StatusConfirmed,
			ReservationTime:          "18:00",
			PartySize:                8,
			EstimatedDurationMinutes: 90,
		}}
		env := newTestEnv(testStore(), nil, existing)

		// 8 занятых + 4 запрошенных > 10
		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTimeSlotUnavailable)
		assert.Nil(t, env.resRepo.created)
	})

	t.Run("терминальные брони не занимают вместимость", func(t *testing.T) {
		existing := []*domain.Reservation{{
			Status:                   domain.StatusCancelled,
			ReservationTime:          "18:30",
			PartySize:                10,
			EstimatedDurationMinutes: 90,
		}}
		env := newTestEnv(testStore(), nil, existing)

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("непересекающаяся бронь не мешает", func(t *testing.T) {
		// [16:00, 17:30) не пересекает [18:30, 20:00)
		existing := []*domain.Reservation{{
			Status:                   domain.StatusConfirmed,
			ReservationTime:          "16:00",
			PartySize:                8,
			EstimatedDurationMinutes: 90,
		}}
		env := newTestEnv(testStore(), nil, existing)

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})
}
