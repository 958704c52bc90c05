package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("корректное время", func(t *testing.T) {
		ts, err := NewTimeStringFromString("18:30")
		require.NoError(t, err)
		assert.Equal(t, "18:30", ts.String())
	})

	t.Run("неканонический формат отклоняется", func(t *testing.T) {
		_, err := NewTimeStringFromString("9:05")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("мусорная строка", func(t *testing.T) {
		_, err := NewTimeStringFromString("половина седьмого")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("время вне суток", func(t *testing.T) {
		_, err := NewTimeStringFromString("24:00")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(18*60 + 30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:30"), ts)

	ts, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeStringMinutes(t *testing.T) {
	minutes, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("").Minutes()
	assert.Error(t, err)
}

func TestTimeStringAddMinutes(t *testing.T) {
	t.Run("обычный сдвиг", func(t *testing.T) {
		ts, err := TimeString("18:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("19:30"), ts)
	})

	t.Run("конец суток даёт 24:00", func(t *testing.T) {
		ts, err := TimeString("23:00").AddMinutes(60)
		require.NoError(t, err)
		assert.Equal(t, TimeString("24:00"), ts)
	})

	t.Run("переход через полночь запрещён", func(t *testing.T) {
		_, err := TimeString("23:00").AddMinutes(61)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})

	t.Run("отрицательный сдвиг в пределах суток", func(t *testing.T) {
		ts, err := TimeString("10:00").AddMinutes(-30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:30"), ts)
	})
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("22:00").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("18:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "18:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTimeStringScan(t *testing.T) {
	t.Run("строка с секундами из TIME-колонки", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("18:00:00"))
		assert.Equal(t, TimeString("18:00"), ts)
	})

	t.Run("байтовый срез", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("09:30")))
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		src := time.Date(2025, 3, 1, 14, 45, 0, 0, time.UTC)
		require.NoError(t, ts.Scan(src))
		assert.Equal(t, TimeString("14:45"), ts)
	})

	t.Run("NULL обнуляет значение", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("неподдерживаемый тип", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}
