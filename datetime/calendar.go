/*
Package datetime implements precision calendar and time-scale arithmetic for
geodetic and GNSS work: conversion among Gregorian year/month/day,
year/day-of-year and Modified Julian Day representations, the compiled-in
leap-second table, two-part (day + seconds-of-day) instants, and the
TAI/UTC/TT/GPS conversion engine built on top of them.

All calendar arithmetic is exact integer arithmetic; floating point only
enters through the seconds-of-day fraction of a two-part instant. Every
value here is an immutable value type and every function is pure, so values
can be shared freely across goroutines.
*/
package datetime

import (
	"github.com/DSOlab/ggdatetime-sub001/units"
)

/***** STRUCT **********************************/

// YMDDate is a Gregorian (year, month, day-of-month) triple. It is plain
// data: an invalid triple is constructible, and only fails when converted.
type YMDDate struct {
	Year  units.Year
	Month units.Month
	Day   units.DayOfMonth
}

// YDOYDate is a (year, day-of-year) pair, plain data like YMDDate.
type YDOYDate struct {
	Year units.Year
	Doy  units.DayOfYear
}

// MJD is a Modified Julian Day, the signed count of days since 1858-11-17.
type MJD int64

/***** FUNCTION ********************************/

func (d YMDDate) IsValid() bool {
	return d.Day.IsValid(d.Year, d.Month)
}

/***********************************************/

func (d YDOYDate) IsValid() bool {
	return d.Doy.IsValid(d.Year)
}

/***********************************************/

// MJDFromYMD converts a calendar triple to its Modified Julian Day, failing
// with ErrInvalidDate on an impossible triple.
func MJDFromYMD(d YMDDate) (MJD, error) {
	ord, err := ymd2ord(d)

	if err != nil {
		return 0, err
	}

	return MJD(ord - 1 + mjdOrd1), nil
}

/***********************************************/

// MJDFromYDOY converts a (year, day-of-year) pair to its Modified Julian
// Day, failing with ErrInvalidDayOfYear when the day is out of range.
func MJDFromYDOY(d YDOYDate) (MJD, error) {
	if !d.IsValid() {
		return 0, convErr("MJDFromYDOY", ErrInvalidDayOfYear, "year %d has no day %d", d.Year, d.Doy)
	}

	ord, err := ymd2ord(YMDDate{d.Year, units.January, 1})

	if err != nil {
		return 0, err
	}

	ord += int64(d.Doy) - 1
	return MJD(ord - 1 + mjdOrd1), nil
}

/***********************************************/

func (m MJD) Add(days int64) MJD { return m + MJD(days) }

func (m MJD) Sub(days int64) MJD { return m - MJD(days) }

/***********************************************/

// ToYMD decomposes the day count back into a calendar triple. The result is
// always a valid date; the decomposition is the exact inverse of MJDFromYMD.
func (m MJD) ToYMD() YMDDate {
	return ord2ymd(int64(m) - mjdOrd1 + 1)
}

/***********************************************/

// ToYDOY decomposes the day count into (year, day-of-year).
func (m MJD) ToYDOY() YDOYDate {
	ord := int64(m) - mjdOrd1 + 1
	d := ord2ymd(ord)
	doy := units.DayOfYear(daysBeforeMonth[d.Month-1])

	if d.Year.IsLeap() && d.Month > units.February {
		doy++
	}

	doy += units.DayOfYear(d.Day)
	return YDOYDate{d.Year, doy}
}

/***********************************************/

// YMDToYDOY runs the table-based year-day conversion without touching the
// day count; it fails on an invalid triple.
func YMDToYDOY(d YMDDate) (YDOYDate, error) {
	if !d.IsValid() {
		return YDOYDate{}, convErr("YMDToYDOY", ErrInvalidDate, "%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}

	doy := units.DayOfYear(daysBeforeMonth[d.Month-1])

	if d.Year.IsLeap() && d.Month > units.February {
		doy++
	}

	doy += units.DayOfYear(d.Day)
	return YDOYDate{d.Year, doy}, nil
}

/***********************************************/

// YDOYToYMD is the inverse of YMDToYDOY; it walks the month-length table
// with a running offset and fails with ErrInvalidDayOfYear out of range.
func YDOYToYMD(d YDOYDate) (YMDDate, error) {
	if !d.IsValid() {
		return YMDDate{}, convErr("YDOYToYMD", ErrInvalidDayOfYear, "year %d has no day %d", d.Year, d.Doy)
	}

	rem := int(d.Doy)
	month := units.January

	for m := units.January; m <= units.December; m++ {
		dim := units.DaysInMonth(d.Year, m)

		if rem <= dim {
			month = m
			break
		}

		rem -= dim
	}

	return YMDDate{d.Year, month, units.DayOfMonth(rem)}, nil
}

/***** ORDINAL CORE ****************************/

// ymd2ord converts a calendar triple to its 1601-based ordinal day count.
// The formula is pure integer arithmetic over whole Gregorian 400-year
// cycles, so years before the reference shift down by whole cycles first.
func ymd2ord(d YMDDate) (int64, error) {
	if !d.IsValid() {
		return 0, convErr("MJDFromYMD", ErrInvalidDate, "%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}

	refYear := ordRefYear
	var n400 int64 = 0
	year := int64(d.Year)

	if year < refYear {
		n400 = (refYear-year)/400 + 1
		refYear -= n400 * 400
	}

	// days before January 1st of year, with 01-Jan-1601 as ordinal 1
	dby := (year-refYear)*365 + (year-refYear)/4 - (year-refYear)/100 + (year-refYear)/400
	dbm := int64(daysBeforeMonth[d.Month-1])

	if d.Year.IsLeap() && d.Month > units.February {
		dbm++
	}

	return dby + dbm + int64(d.Day) - n400*daysPer400y, nil
}

/***********************************************/

// ord2ymd decomposes a 1601-based ordinal via exact division by the
// Gregorian cycle lengths (400y, 100y, 4y, 1y).
func ord2ymd(ord int64) YMDDate {
	const di4y int64 = 4*365 + 1
	const di100y int64 = 25*di4y - 1
	const di400y int64 = 4*di100y + 1

	refYear := ordRefYear

	if ord <= 0 {
		n := (1-ord)/daysPer400y + 1
		refYear -= n * 400
		ord += n * daysPer400y
	}

	ord--
	n400 := ord / di400y
	ord %= di400y
	n100 := ord / di100y
	ord %= di100y
	n4 := ord / di4y
	ord %= di4y
	n1 := ord / 365
	ord %= 365

	year := units.Year(400*n400 + 100*n100 + 4*n4 + n1 + refYear)

	if (n1 == 4 || n100 == 4) && ord == 0 {
		// last day of a leap year caught by the cycle division
		return YMDDate{year - 1, units.December, 31}
	}

	month := units.Month((ord + 50) >> 5)
	dbm := int64(daysBeforeMonth[month-1])

	if year.IsLeap() && month > units.February {
		dbm++
	}

	if dbm > ord {
		month--
		dbm -= int64(units.DaysInMonth(year, month))
	}

	return YMDDate{year, month, units.DayOfMonth(ord - dbm + 1)}
}
