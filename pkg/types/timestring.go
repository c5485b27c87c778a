package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM" (без даты и таймзоны).
// Хранится как строка с ведущими нулями, поэтому лексикографическое
// сравнение совпадает с хронологическим.
type TimeString string

const minutesPerDay = 24 * 60

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM".
// Допустимы значения от "00:00" до "24:00" включительно
// ("24:00" встречается только как конец интервала).
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("invalid time string format: %q, expected HH:MM", string(t))
	}

	var hours, minutes int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid time string format: %q, expected HH:MM", string(t))
	}

	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 || (hours == 24 && minutes != 0) {
		return 0, fmt.Errorf("time string out of range: %q", string(t))
	}

	return hours*60 + minutes, nil
}

// AddMinutes возвращает время, сдвинутое на m минут вперед.
// Возвращает ошибку, если результат выходит за пределы суток.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += m
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", t, m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Equal возвращает true при совпадении времени
func (t TimeString) Equal(other TimeString) bool {
	return string(t) == string(other)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Поддерживает строковые колонки и колонки типа time.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}

	// БД может хранить секунды ("10:00:00") - отбрасываем их
	if len(*t) > 5 {
		*t = (*t)[:5]
	}

	return t.Validate()
}
