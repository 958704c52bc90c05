package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeStringLayout формат времени HH:MM (24 часа)
const timeStringLayout = "15:04"

// minutesPerDay количество минут в сутках
const minutesPerDay = 24 * 60

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
var ErrTimeOutOfRange = errors.New("types: time is out of day range")

// TimeString строковое представление времени суток в формате "HH:MM".
// Используется для хранения времени без даты и часового пояса
// (локальное время заведения).
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут от начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	// time.Parse принимает "9:05", приводим к каноническому виду со сравнением
	if parsed.Format(timeStringLayout) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут.
// Переход через полночь считается ошибкой - рабочие часы в пределах одних суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := current + minutes
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}
	// 24:00 допускаем как конец суток при вычислении конца интервала
	if total == minutesPerDay {
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если время строго раньше other.
// Строки фиксированной длины с ведущими нулями сравниваются лексикографически.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value реализует driver.Valuer для сохранения в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Поддерживает строковые колонки и колонки типа TIME.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		// Postgres TIME приходит как "18:00:00" - отрезаем секунды
		if len(v) > len(timeStringLayout) {
			v = v[:len(timeStringLayout)]
		}
		*t = TimeString(v)
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}
