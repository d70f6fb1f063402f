/*
Package units defines the nominal scalar types shared by the calendar and
time-scale packages: Year, Month, DayOfMonth, DayOfYear, Hour, Minute and a
family of integer sub-second counters.

Each unit wraps exactly one integer. Arithmetic is only offered between
values of the same named type, so a raw literal cannot silently be added to,
say, a DayOfMonth; construction from a bare integer is always an explicit
conversion at the call site.
*/
package units

import (
	"errors"
	"fmt"
	"strings"
)

/***** ERROR ***********************************/

var (
	// ErrInvalidMonthName reports a month name that is neither a full
	// English month name nor its 3-letter form.
	ErrInvalidMonthName = errors.New("invalid month name")
)

/***** YEAR ************************************/

// Year is a calendar year. Any value is representable; validity is never a
// property of the year alone.
type Year int

// IsLeap applies the Gregorian rule.
func (y Year) IsLeap() bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

/***********************************************/

func (y Year) Add(n Year) Year { return y + n }

func (y Year) Sub(n Year) Year { return y - n }

/***** MONTH ***********************************/

// Month is a calendar month, nominally in 1..12. Out-of-range values are
// representable; IsValid checks on demand.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

/***********************************************/

// MonthFromName resolves a full English month name or its 3-letter form,
// case-insensitively.
func MonthFromName(name string) (Month, error) {
	lower := strings.ToLower(name)

	for i, full := range monthNames {
		if lower == strings.ToLower(full) || (len(lower) == 3 && lower == strings.ToLower(full[:3])) {
			return Month(i + 1), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMonthName, name)
}

/***********************************************/

func (m Month) IsValid() bool {
	return m >= January && m <= December
}

/***********************************************/

func (m Month) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}

	return monthNames[m-1]
}

/***** DAY OF MONTH ****************************/

// DayOfMonth is a day within a month. Validity depends on (Year, Month).
type DayOfMonth int

// IsValid never fails; an out-of-range month simply yields false.
func (d DayOfMonth) IsValid(y Year, m Month) bool {
	if !m.IsValid() {
		return false
	}

	return d >= 1 && int(d) <= DaysInMonth(y, m)
}

/***********************************************/

func (d DayOfMonth) Add(n DayOfMonth) DayOfMonth { return d + n }

func (d DayOfMonth) Sub(n DayOfMonth) DayOfMonth { return d - n }

/***** DAY OF YEAR *****************************/

// DayOfYear is a day within a year, nominally 1..365 (366 in leap years).
type DayOfYear int

func (d DayOfYear) IsValid(y Year) bool {
	max := DayOfYear(365)

	if y.IsLeap() {
		max++
	}

	return d >= 1 && d <= max
}

/***********************************************/

func (d DayOfYear) Add(n DayOfYear) DayOfYear { return d + n }

func (d DayOfYear) Sub(n DayOfYear) DayOfYear { return d - n }

/***** HOUR / MINUTE ***************************/

// Hour is a time-of-day hour count. The type places no range restriction;
// normalization belongs to the counters that consume it.
type Hour int

func (h Hour) Add(n Hour) Hour { return h + n }

func (h Hour) Sub(n Hour) Hour { return h - n }

// Minute is a time-of-day minute count, unrestricted like Hour.
type Minute int

func (m Minute) Add(n Minute) Minute { return m + n }

func (m Minute) Sub(n Minute) Minute { return m - n }

/***** FUNCTION ********************************/

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the month length for the given year, or 0 when the
// month is out of range.
func DaysInMonth(y Year, m Month) int {
	if !m.IsValid() {
		return 0
	}

	if m == February && y.IsLeap() {
		return 29
	}

	return daysInMonth[m-1]
}
