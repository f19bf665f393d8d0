package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Weekday is a day of the week. Schedule rows store weekday as a
// locale-specific label ("lunes", "sábado", "Monday"); the label is parsed
// into this enum once at the storage boundary, so the rest of the code
// never compares weekday strings.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// ErrUnknownWeekday возвращается, когда метка дня недели не распознана
var ErrUnknownWeekday = errors.New("unknown weekday label")

// weekdayLabels метки дней недели без диакритики, в нижнем регистре
// Испанские метки — основные (так хранит их БД), английские — на случай
// данных, заведённых через внешние интеграции
var weekdayLabels = map[string]Weekday{
	"lunes":     Monday,
	"martes":    Tuesday,
	"miercoles": Wednesday,
	"jueves":    Thursday,
	"viernes":   Friday,
	"sabado":    Saturday,
	"domingo":   Sunday,

	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// spanishNames канонические испанские названия для String()
var spanishNames = map[Weekday]string{
	Monday:    "lunes",
	Tuesday:   "martes",
	Wednesday: "miércoles",
	Thursday:  "jueves",
	Friday:    "viernes",
	Saturday:  "sábado",
	Sunday:    "domingo",
}

// stripDiacritics NFD-декомпозиция с удалением комбинируемых знаков
// Аналог normalize("NFD").replace(/[̀-ͯ]/g, "")
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ParseWeekday парсит метку дня недели без учета регистра и диакритики
func ParseWeekday(label string) (Weekday, error) {
	normalized, _, err := transform.String(stripDiacritics, strings.ToLower(strings.TrimSpace(label)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, label)
	}

	day, ok := weekdayLabels[normalized]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, label)
	}

	return day, nil
}

// WeekdayFromTime возвращает день недели для указанной даты
func WeekdayFromTime(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// String возвращает каноническое испанское название дня
func (w Weekday) String() string {
	if name, ok := spanishNames[w]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(w))
}

// Valid возвращает true для значений Monday..Sunday
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}
