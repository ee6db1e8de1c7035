package types

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeString время настенных часов в формате "HH:MM" (24 часа, с ведущими нулями)
type TimeString string

// timeStringRe допускает только валидное время суток: часы 00-23, минуты 00-59
var timeStringRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" со строгой валидацией.
// Некорректный формат — ошибка контракта вызывающей стороны, молчаливого
// приведения не происходит.
func NewTimeStringFromString(s string) (TimeString, error) {
	if !timeStringRe.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeString(s), nil
}

// NewTimeStringFromMinutes конвертирует минуты с полуночи в "HH:MM".
// Вход должен быть неотрицательным. Значения >= 1440 форматируются
// арифметически ("25:05") и обозначают время за полночь — вызывающая
// сторона должна отсекать их сама.
func NewTimeStringFromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// Minutes возвращает количество минут с полуночи.
// Для TimeString, созданных через конструкторы, всегда корректно.
func (t TimeString) Minutes() int {
	hh, mm, ok := strings.Cut(string(t), ":")
	if !ok {
		return 0
	}
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return h*60 + m
}

// AddMinutes возвращает время, сдвинутое на delta минут.
// Результат не оборачивается по модулю суток.
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	total := t.Minutes() + delta
	if total < 0 {
		return "", fmt.Errorf("%w: %s%+d minutes is negative", ErrNegativeTime, t, delta)
	}
	return NewTimeStringFromMinutes(total), nil
}

// IsBefore строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner. Postgres TIME приходит как "HH:MM:SS" —
// секунды отбрасываем.
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeFormat, src)
	}

	if len(raw) > 5 {
		raw = raw[:5]
	}
	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
