package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullWeek() []BusinessHour {
	hours := make([]BusinessHour, 0, DaysPerWeek)
	for day := 0; day < DaysPerWeek; day++ {
		hours = append(hours, BusinessHour{
			DayOfWeek: day,
			OpenTime:  "10:00",
			CloseTime: "22:00",
		})
	}
	return hours
}

func TestValidateBusinessHours(t *testing.T) {
	t.Run("корректное расписание на 7 дней", func(t *testing.T) {
		assert.NoError(t, ValidateBusinessHours(fullWeek()))
	})

	t.Run("закрытые дни без времени допустимы", func(t *testing.T) {
		hours := fullWeek()
		hours[0] = BusinessHour{DayOfWeek: 0, IsClosed: true}
		hours[6] = BusinessHour{DayOfWeek: 6, IsClosed: true}
		assert.NoError(t, ValidateBusinessHours(hours))
	})

	t.Run("неполная неделя", func(t *testing.T) {
		err := ValidateBusinessHours(fullWeek()[:6])
		assert.ErrorIs(t, err, ErrScheduleDaysCount)
	})

	t.Run("дублирующийся день недели", func(t *testing.T) {
		hours := fullWeek()
		hours[3].DayOfWeek = 2
		err := ValidateBusinessHours(hours)
		assert.ErrorIs(t, err, ErrScheduleDayMissing)
	})

	t.Run("день недели вне диапазона", func(t *testing.T) {
		hours := fullWeek()
		hours[0].DayOfWeek = 7
		err := ValidateBusinessHours(hours)
		assert.ErrorIs(t, err, ErrScheduleDayMissing)
	})

	t.Run("некорректное время открытия", func(t *testing.T) {
		hours := fullWeek()
		hours[1].OpenTime = "25:00"
		err := ValidateBusinessHours(hours)
		assert.ErrorIs(t, err, ErrScheduleInvalidTime)
	})

	t.Run("открытие не раньше закрытия", func(t *testing.T) {
		hours := fullWeek()
		hours[2].OpenTime = "22:00"
		hours[2].CloseTime = "10:00"
		err := ValidateBusinessHours(hours)
		assert.ErrorIs(t, err, ErrScheduleOpenAfterClose)

		hours[2].CloseTime = "22:00"
		err = ValidateBusinessHours(hours)
		assert.ErrorIs(t, err, ErrScheduleOpenAfterClose)
	})
}

func TestStoreHoursFor(t *testing.T) {
	store := &Store{
		BusinessHours: []BusinessHour{
			{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"},
		},
	}

	t.Run("день присутствует в расписании", func(t *testing.T) {
		h, ok := store.HoursFor(time.Monday)
		require.True(t, ok)
		assert.False(t, h.IsClosed)
		assert.Equal(t, "09:00", h.OpenTime.String())
	})

	t.Run("отсутствующий день считается закрытым", func(t *testing.T) {
		h, ok := store.HoursFor(time.Sunday)
		assert.False(t, ok)
		assert.True(t, h.IsClosed)
	})
}

func TestStoreIsBookable(t *testing.T) {
	cases := []struct {
		name     string
		status   StoreStatus
		accepts  bool
		bookable bool
	}{
		{"активен и принимает брони", StoreStatusActive, true, true},
		{"активен, но брони отключены", StoreStatusActive, false, false},
		{"неактивен", StoreStatusSuspended, true, false},
		{"ожидает активации", StoreStatusPending, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &Store{Status: tc.status, AcceptsReservations: tc.accepts}
			assert.Equal(t, tc.bookable, store.IsBookable())
		})
	}
}
