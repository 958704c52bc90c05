package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	storeRepo "github.com/LoLe05/jarimae-sub001/internal/infra/storage/store"
	"github.com/LoLe05/jarimae-sub001/internal/service/stores/models"
)

const ownerID = int64(100)

type fakeStoreRepo struct {
	store *domain.Store

	replacedStoreID  int64
	replacedCapacity int
	replacedHours    []domain.BusinessHour
}

func (f *fakeStoreRepo) GetByID(_ context.Context, _ int64) (*domain.Store, error) {
	if f.store == nil {
		return nil, storeRepo.ErrStoreNotFound
	}
	return f.store, nil
}

func (f *fakeStoreRepo) ReplaceSchedule(_ context.Context, storeID int64, capacity, avgDuration int, accepts bool, hours []domain.BusinessHour) error {
	f.replacedStoreID = storeID
	f.replacedCapacity = capacity
	f.replacedHours = hours
	f.store.Capacity = capacity
	f.store.AverageMealDurationMinutes = avgDuration
	f.store.AcceptsReservations = accepts
	f.store.BusinessHours = hours
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testStore() *domain.Store {
	return &domain.Store{
		ID:                         10,
		OwnerID:                    ownerID,
		Status:                     domain.StoreStatusActive,
		Capacity:                   20,
		AverageMealDurationMinutes: 60,
		AcceptsReservations:        true,
		BusinessHours: []domain.BusinessHour{
			{DayOfWeek: 0, IsClosed: true},
			{DayOfWeek: 1, OpenTime: "10:00", CloseTime: "22:00"},
		},
	}
}

func weekInput() []models.BusinessHourInput {
	hours := make([]models.BusinessHourInput, 0, domain.DaysPerWeek)
	for day := 0; day < domain.DaysPerWeek; day++ {
		hours = append(hours, models.BusinessHourInput{DayOfWeek: day, OpenTime: "11:00", CloseTime: "23:00"})
	}
	return hours
}

func validUpdateRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:                     ownerID,
		StoreID:                    10,
		Capacity:                   30,
		AverageMealDurationMinutes: 90,
		AcceptsReservations:        true,
		BusinessHours:              weekInput(),
	}
}

func TestGetSchedule(t *testing.T) {
	t.Run("расписание доступно публично", func(t *testing.T) {
		svc := NewService(&fakeStoreRepo{store: testStore()}, fakeTxManager{}, nopLogger{})

		resp, err := svc.GetSchedule(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.StoreID)
		assert.Equal(t, 20, resp.Capacity)

		// Для выходного дня времена не отдаются
		assert.True(t, resp.BusinessHours[0].IsClosed)
		assert.Empty(t, resp.BusinessHours[0].OpenTime)
		assert.Equal(t, "10:00", resp.BusinessHours[1].OpenTime)
	})

	t.Run("заведение не найдено", func(t *testing.T) {
		svc := NewService(&fakeStoreRepo{}, fakeTxManager{}, nopLogger{})
		_, err := svc.GetSchedule(context.Background(), 10)
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestUpdateSchedule(t *testing.T) {
	t.Run("владелец обновляет настройки и расписание", func(t *testing.T) {
		repo := &fakeStoreRepo{store: testStore()}
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		resp, err := svc.UpdateSchedule(context.Background(), validUpdateRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(10), repo.replacedStoreID)
		assert.Equal(t, 30, repo.replacedCapacity)
		assert.Len(t, repo.replacedHours, domain.DaysPerWeek)

		assert.Equal(t, 30, resp.Capacity)
		assert.Equal(t, 90, resp.AverageMealDurationMinutes)
		assert.Equal(t, "11:00", resp.BusinessHours[0].OpenTime)
	})

	t.Run("не владелец получает отказ", func(t *testing.T) {
		svc := NewService(&fakeStoreRepo{store: testStore()}, fakeTxManager{}, nopLogger{})

		req := validUpdateRequest()
		req.UserID = 999
		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("вместимость вне допустимого диапазона", func(t *testing.T) {
		svc := NewService(&fakeStoreRepo{store: testStore()}, fakeTxManager{}, nopLogger{})

		req := validUpdateRequest()
		req.Capacity = 0
		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = validUpdateRequest()
		req.Capacity = domain.MaxCapacity + 1
		_, err = svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("длительность посадки вне допустимого диапазона", func(t *testing.T) {
		svc := NewService(&fakeStoreRepo{store: testStore()}, fakeTxManager{}, nopLogger{})

		req := validUpdateRequest()
		req.AverageMealDurationMinutes = domain.MinMealDurationMinutes - 1
		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("неполное расписание отклоняется", func(t *testing.T) {
		svc := NewService(&fakeStoreRepo{store: testStore()}, fakeTxManager{}, nopLogger{})

		req := validUpdateRequest()
		req.BusinessHours = req.BusinessHours[:5]
		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("открытие позже закрытия отклоняется", func(t *testing.T) {
		svc := NewService(&fakeStoreRepo{store: testStore()}, fakeTxManager{}, nopLogger{})

		req := validUpdateRequest()
		req.BusinessHours[2].OpenTime = "23:00"
		req.BusinessHours[2].CloseTime = "11:00"
		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})
}
