package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString значение не разбирается как HH:MM или HH:MM:SS
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow результат арифметики вышел за пределы 00:00-23:59
	ErrTimeOverflow = errors.New("time string out of day range")
)

// TimeString минута суток в формате "HH:MM".
// Секунды и их дробная часть на входе допускаются и отбрасываются.
type TimeString string

// EndOfDay последняя минута суток. В нее превращается TIME '24:00:00' из БД
const EndOfDay TimeString = "23:59"

// NewTimeString берет время суток из t (в его часовом поясе)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString разбирает "HH:MM", "HH:MM:SS" или "HH:MM:SS.ffffff"
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(minutes)
}

// NewTimeStringFromMinutes создает TimeString из минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// MustTimeString паникует на невалидном значении. Для констант и тестов
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Minutes возвращает минуты от полуночи. Для невалидного значения 0
func (t TimeString) Minutes() int {
	m, err := parseMinutes(string(t))
	if err != nil {
		return 0
	}
	return m
}

// AddMinutes сдвигает время, ошибка если результат выходит за сутки
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(t.Minutes() + n)
}

func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

func (t TimeString) Equal(other TimeString) bool {
	return t.Minutes() == other.Minutes()
}

func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат и диапазоны
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

func (t TimeString) String() string {
	return string(t)
}

// On возвращает момент времени t в дату date в зоне loc
func (t TimeString) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	minutes := t.Minutes()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
}

// Scan реализует sql.Scanner для колонок TIME.
// lib/pq отдает TIME текстом "HH:MM:SS[.ffffff]", time.Time принимается для других драйверов.
// Сканирование не падает на значениях вне формата: '24:00:00' становится EndOfDay,
// прочее сохраняется как есть и отсекается через Validate у потребителя,
// чтобы одна битая строка не ломала выборку целиком.
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case []byte:
		*t = scanText(string(v))
		return nil
	case string:
		*t = scanText(v)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, value)
	}
}

func scanText(s string) TimeString {
	s = strings.TrimSpace(s)
	if isEndOfDay(s) {
		return EndOfDay
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return TimeString(s)
	}
	return parsed
}

// isEndOfDay распознает 24:00, 24:00:00 и 24:00:00.000
func isEndOfDay(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] != "24" || parts[1] != "00" {
		return false
	}
	if len(parts) == 3 {
		sec, frac, _ := strings.Cut(parts[2], ".")
		return sec == "00" && strings.Trim(frac, "0") == ""
	}
	return true
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t) + ":00", nil
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := parseTwoDigits(parts[0], 23)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minutes, err := parseTwoDigits(parts[1], 59)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(parts) == 3 {
		if err := checkSeconds(parts[2]); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return hours*60 + minutes, nil
}

// checkSeconds проверяет "SS" или "SS.ffffff", значение отбрасывается
func checkSeconds(s string) error {
	sec, frac, hasFrac := strings.Cut(s, ".")
	if _, err := parseTwoDigits(sec, 59); err != nil {
		return err
	}
	if !hasFrac {
		return nil
	}
	if frac == "" {
		return ErrInvalidTimeString
	}
	for _, c := range frac {
		if c < '0' || c > '9' {
			return ErrInvalidTimeString
		}
	}
	return nil
}

func parseTwoDigits(s string, max int) (int, error) {
	if len(s) != 2 {
		return 0, ErrInvalidTimeString
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > max {
		return 0, ErrInvalidTimeString
	}
	return n, nil
}
