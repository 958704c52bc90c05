package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	storeRepo "github.com/LoLe05/jarimae-sub001/internal/infra/storage/store"
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
	reservations []*domain.Reservation
	err          error
	gotFilter    domain.StoreReservationsFilter
}

func (f *fakeReservationRepo) GetByStoreWithFilter(_ context.Context, filter domain.StoreReservationsFilter) ([]*domain.Reservation, error) {
	f.gotFilter = filter
	return f.reservations, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testStore() *domain.Store {
	hours := make([]domain.BusinessHour, 0, domain.DaysPerWeek)
	for day := 0; day < domain.DaysPerWeek; day++ {
		h := domain.BusinessHour{DayOfWeek: day, OpenTime: "10:00", CloseTime: "14:00"}
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
		AverageMealDurationMinutes: 60,
		AcceptsReservations:        true,
		BusinessHours:              hours,
	}
}

// monday попадает на открытый день тестового расписания
var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

// sunday закрытый день тестового расписания
var sunday = time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

func newTestUseCase(store *domain.Store, storeErr error, reservations []*domain.Reservation) (*UseCase, *fakeReservationRepo) {
	resRepo := &fakeReservationRepo{reservations: reservations}
	uc := NewUseCase(&fakeStoreRepo{store: store, err: storeErr}, resRepo, nopLogger{})
	return uc, resRepo
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(testStore(), nil, nil)

	cases := []struct {
		name string
		req  *Request
	}{
		{"нулевой storeID", &Request{StoreID: 0, Date: monday, PartySize: 2}},
		{"нулевая дата", &Request{StoreID: 1, PartySize: 2}},
		{"нулевой размер компании", &Request{StoreID: 1, Date: monday, PartySize: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StoreChecks(t *testing.T) {
	t.Run("заведение не найдено", func(t *testing.T) {
		uc, _ := newTestUseCase(nil, storeRepo.ErrStoreNotFound, nil)
		_, err := uc.Execute(context.Background(), &Request{StoreID: 1, Date: monday, PartySize: 2})
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})

	t.Run("заведение не активно", func(t *testing.T) {
		store := testStore()
		store.Status = domain.StoreStatusSuspended
		uc, _ := newTestUseCase(store, nil, nil)
		_, err := uc.Execute(context.Background(), &Request{StoreID: 1, Date: monday, PartySize: 2})
		assert.ErrorIs(t, err, ErrStoreInactive)
	})

	t.Run("брони отключены", func(t *testing.T) {
		store := testStore()
		store.AcceptsReservations = false
		uc, _ := newTestUseCase(store, nil, nil)
		_, err := uc.Execute(context.Background(), &Request{StoreID: 1, Date: monday, PartySize: 2})
		assert.ErrorIs(t, err, ErrReservationsNotAccepted)
	})

	t.Run("компания больше вместимости", func(t *testing.T) {
		uc, _ := newTestUseCase(testStore(), nil, nil)
		_, err := uc.Execute(context.Background(), &Request{StoreID: 1, Date: monday, PartySize: 11})
		assert.ErrorIs(t, err, ErrPartySizeExceedsCapacity)
	})
}

func TestExecute_ClosedDay(t *testing.T) {
	uc, _ := newTestUseCase(testStore(), nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{StoreID: 1, Date: sunday, PartySize: 2})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.AvailableSlots)
	assert.True(t, resp.BusinessHour.IsClosed)
}

func TestExecute_EmptyDay(t *testing.T) {
	uc, resRepo := newTestUseCase(testStore(), nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{StoreID: 1, Date: monday, PartySize: 2})
	require.NoError(t, err)

	// 10:00-14:00 при посадке 60 минут - слоты 10:00..13:00 с шагом 30
	require.Len(t, resp.Slots, 7)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("13:00"), resp.Slots[6].StartTime)
	assert.True(t, resp.Available)
	assert.Len(t, resp.AvailableSlots, 7)

	for _, slot := range resp.Slots {
		assert.Equal(t, 10, slot.RemainingCapacity)
		assert.Equal(t, 60, slot.DurationMinutes)
	}

	// Терминальные брони не должны попадать в расчёт
	assert.False(t, resRepo.gotFilter.IncludeInactive)
	require.NotNil(t, resRepo.gotFilter.StartDate)
	assert.Equal(t, monday, *resRepo.gotFilter.StartDate)
}

func TestExecute_OccupiedSlots(t *testing.T) {
	reservations := []*domain.Reservation{
		{
			Status:                   domain.StatusConfirmed,
			ReservationTime:          "11:00",
			PartySize:                9,
			EstimatedDurationMinutes: 60,
		},
	}
	uc, _ := newTestUseCase(testStore(), nil, reservations)

	resp, err := uc.Execute(context.Background(), &Request{StoreID: 1, Date: monday, PartySize: 2})
	require.NoError(t, err)

	bySlot := make(map[types.TimeString]domain.TimeSlot, len(resp.Slots))
	for _, slot := range resp.Slots {
		bySlot[slot.StartTime] = slot
	}

	// Бронь [11:00, 12:00) блокирует слоты с пересекающимся окном
	assert.True(t, bySlot["10:00"].Available)
	assert.False(t, bySlot["10:30"].Available)
	assert.False(t, bySlot["11:00"].Available)
	assert.False(t, bySlot["11:30"].Available)
	assert.True(t, bySlot["12:00"].Available)

	assert.Equal(t, 1, bySlot["11:00"].RemainingCapacity)
	assert.Len(t, resp.AvailableSlots, 4)
}

func TestExecute_PreferredTime(t *testing.T) {
	preferred := func(s string) *types.TimeString {
		ts := types.TimeString(s)
		return &ts
	}

	t.Run("желаемое время на сетке и свободно", func(t *testing.T) {
		uc, _ := newTestUseCase(testStore(), nil, nil)
		resp, err := uc.Execute(context.Background(), &Request{
			StoreID: 1, Date: monday, PartySize: 2, PreferredTime: preferred("11:30"),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.PreferredTime)
		assert.True(t, resp.PreferredTime.Available)
		assert.Equal(t, 10, resp.PreferredTime.RemainingCapacity)
		assert.Empty(t, resp.PreferredTime.Reason)
	})

	t.Run("желаемое время мимо сетки", func(t *testing.T) {
		uc, _ := newTestUseCase(testStore(), nil, nil)
		resp, err := uc.Execute(context.Background(), &Request{
			StoreID: 1, Date: monday, PartySize: 2, PreferredTime: preferred("11:45"),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.PreferredTime)
		assert.False(t, resp.PreferredTime.Available)
		assert.NotEmpty(t, resp.PreferredTime.Reason)
	})

	t.Run("желаемое время вне окна посадки", func(t *testing.T) {
		uc, _ := newTestUseCase(testStore(), nil, nil)
		_, err := uc.Execute(context.Background(), &Request{
			StoreID: 1, Date: monday, PartySize: 2, PreferredTime: preferred("13:30"),
		})
		assert.ErrorIs(t, err, ErrPreferredTimeOutsideHours)
	})
}
