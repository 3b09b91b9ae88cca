// Package persiancal converts between the Gregorian and Persian (Shamsi)
// calendars. The Persian year begins on the Gregorian day containing the
// vernal equinox as observed in Tehran, with the traditional noon rule:
// an equinox strictly before 12:00 Tehran time makes that day 1 Farvardin,
// otherwise the next day is. Leap years follow from the same rule — a
// Persian year is leap exactly when 366 days separate its Nowruz from the
// next — rather than from any fixed arithmetic cycle.
package persiancal

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/tahvil/nowruz/pkg/zones"
)

// Supported Persian years. The bounds keep every Nowruz lookup, including
// the year+1 lookup the leap rule needs, inside the equinox finder's
// supported Gregorian range.
const (
	MinYear = 400
	MaxYear = 2300
)

// yearOffset relates the calendars: Persian year Y begins in Gregorian
// year Y+621.
const yearOffset = 621

var (
	// ErrYearOutOfRange indicates a year outside [MinYear, MaxYear].
	ErrYearOutOfRange = errors.New("persiancal: year outside supported era")

	// ErrInvalidDate indicates a month or day outside the calendar's
	// month-length table.
	ErrInvalidDate = errors.New("persiancal: invalid date")
)

// Date is a Persian calendar date.
type Date struct {
	Year  int
	Month int // 1-12, Farvardin through Esfand
	Day   int // 1-31; Esfand has 29 days, 30 in leap years
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// monthNames holds the Farsi month names, Farvardin first.
var monthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد",
	"تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر",
	"دی", "بهمن", "اسفند",
}

// MonthName returns the Farsi name of a Persian month, or "" for an
// out-of-range month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// monthLengths returns the day count of each month. Months 1-6 have 31
// days, 7-11 have 30, Esfand has 29 or 30.
func monthLengths(leap bool) [12]int {
	lengths := [12]int{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29}
	if leap {
		lengths[11] = 30
	}
	return lengths
}

// EquinoxSource returns the vernal equinox instant (UTC) for a Gregorian
// year. It must be deterministic: the converter derives calendar-day
// boundaries and leap years from it and memoizes the results.
type EquinoxSource func(gregorianYear int) (time.Time, error)

// Converter performs Gregorian/Persian conversions over an equinox source.
type Converter struct {
	source EquinoxSource

	mu     sync.Mutex
	nowruz map[int]time.Time // Persian year → 1 Farvardin, midnight Tehran
}

// NewConverter returns a Converter deriving year boundaries from source.
func NewConverter(source EquinoxSource) *Converter {
	return &Converter{
		source: source,
		nowruz: make(map[int]time.Time),
	}
}

// Nowruz returns 1 Farvardin of a Persian year as midnight, Tehran time.
func (c *Converter) Nowruz(persianYear int) (time.Time, error) {
	if persianYear < MinYear || persianYear > MaxYear {
		return time.Time{}, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrYearOutOfRange, persianYear, MinYear, MaxYear)
	}
	return c.nowruzDay(persianYear)
}

func (c *Converter) nowruzDay(persianYear int) (time.Time, error) {
	c.mu.Lock()
	day, ok := c.nowruz[persianYear]
	c.mu.Unlock()
	if ok {
		return day, nil
	}

	instant, err := c.source(persianYear + yearOffset)
	if err != nil {
		return time.Time{}, fmt.Errorf("persiancal: nowruz of %d: %w", persianYear, err)
	}

	tehran := zones.ToTehran(instant)
	y, m, d := tehran.Date()
	day = time.Date(y, m, d, 0, 0, 0, 0, zones.Tehran)
	// Noon rule: at or after 12:00 Tehran time, Nowruz moves to the next
	// civil day. Strictly-before-noon keeps the equinox day.
	if tehran.Hour() >= 12 {
		day = day.AddDate(0, 0, 1)
	}

	c.mu.Lock()
	c.nowruz[persianYear] = day
	c.mu.Unlock()
	return day, nil
}

// IsLeap reports whether a Persian year is a leap year: exactly 366 days
// between its Nowruz and the next.
func (c *Converter) IsLeap(persianYear int) (bool, error) {
	if persianYear < MinYear || persianYear > MaxYear {
		return false, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrYearOutOfRange, persianYear, MinYear, MaxYear)
	}
	n, err := c.yearLength(persianYear)
	if err != nil {
		return false, err
	}
	return n == 366, nil
}

// yearLength returns the day count of a Persian year. Both boundaries are
// Tehran midnights in a fixed zone, so the difference is a whole number
// of days.
func (c *Converter) yearLength(persianYear int) (int, error) {
	start, err := c.nowruzDay(persianYear)
	if err != nil {
		return 0, err
	}
	end, err := c.nowruzDay(persianYear + 1)
	if err != nil {
		return 0, err
	}
	return int(math.Round(end.Sub(start).Hours() / 24)), nil
}

// ToPersian converts the civil date carried by t (year, month, day in t's
// own location) to a Persian date.
func (c *Converter) ToPersian(t time.Time) (Date, error) {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, zones.Tehran)

	// A Gregorian year straddles two Persian years; decide by comparing
	// against the Nowruz that falls inside it.
	persianYear := y - yearOffset
	if persianYear < MinYear || persianYear > MaxYear {
		return Date{}, fmt.Errorf("%w: gregorian year %d", ErrYearOutOfRange, y)
	}
	start, err := c.nowruzDay(persianYear)
	if err != nil {
		return Date{}, err
	}
	if day.Before(start) {
		persianYear--
		if persianYear < MinYear {
			return Date{}, fmt.Errorf("%w: gregorian year %d", ErrYearOutOfRange, y)
		}
		start, err = c.nowruzDay(persianYear)
		if err != nil {
			return Date{}, err
		}
	}

	leap, err := c.IsLeap(persianYear)
	if err != nil {
		return Date{}, err
	}

	offset := int(math.Round(day.Sub(start).Hours() / 24))
	for i, n := range monthLengths(leap) {
		if offset < n {
			return Date{Year: persianYear, Month: i + 1, Day: offset + 1}, nil
		}
		offset -= n
	}
	// Past Esfand: t precedes the Nowruz the length table was derived
	// from, which the branch above already excludes.
	return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, y, m, d)
}

// ToGregorian converts a Persian date to the corresponding Gregorian civil
// day, returned as midnight Tehran time.
func (c *Converter) ToGregorian(d Date) (time.Time, error) {
	if d.Year < MinYear || d.Year > MaxYear {
		return time.Time{}, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrYearOutOfRange, d.Year, MinYear, MaxYear)
	}
	if d.Month < 1 || d.Month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidDate, d.Month)
	}
	leap, err := c.IsLeap(d.Year)
	if err != nil {
		return time.Time{}, err
	}
	lengths := monthLengths(leap)
	if d.Day < 1 || d.Day > lengths[d.Month-1] {
		return time.Time{}, fmt.Errorf("%w: day %d of month %d (year %d)",
			ErrInvalidDate, d.Day, d.Month, d.Year)
	}

	start, err := c.nowruzDay(d.Year)
	if err != nil {
		return time.Time{}, err
	}
	offset := d.Day - 1
	for i := 0; i < d.Month-1; i++ {
		offset += lengths[i]
	}
	return start.AddDate(0, 0, offset), nil
}
