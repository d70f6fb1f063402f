package datetime

import "sort"

/***** STRUCT **********************************/

// leapEntry records the cumulative TAI-UTC offset in effect from 00:00:00
// UTC of the given Modified Julian Day onward.
type leapEntry struct {
	mjd    MJD
	offset int // TAI-UTC in whole seconds
}

// leapSeconds is the IERS leap-second history, strictly increasing in both
// fields. It is sourced data, fixed at build time and never mutated, so
// concurrent reads need no locking.
//
// Source: IERS Bulletin C; offsets are the cumulative TAI-UTC value.
var leapSeconds = [...]leapEntry{
	{41317, 10}, // 1972-01-01
	{41499, 11}, // 1972-07-01
	{41683, 12}, // 1973-01-01
	{42048, 13}, // 1974-01-01
	{42413, 14}, // 1975-01-01
	{42778, 15}, // 1976-01-01
	{43144, 16}, // 1977-01-01
	{43509, 17}, // 1978-01-01
	{43874, 18}, // 1979-01-01
	{44239, 19}, // 1980-01-01
	{44786, 20}, // 1981-07-01
	{45151, 21}, // 1982-07-01
	{45516, 22}, // 1983-07-01
	{46247, 23}, // 1985-07-01
	{47161, 24}, // 1988-01-01
	{47892, 25}, // 1990-01-01
	{48257, 26}, // 1991-01-01
	{48804, 27}, // 1992-07-01
	{49169, 28}, // 1993-07-01
	{49534, 29}, // 1994-07-01
	{50083, 30}, // 1996-01-01
	{50630, 31}, // 1997-07-01
	{51179, 32}, // 1999-01-01
	{53736, 33}, // 2006-01-01
	{54832, 34}, // 2009-01-01
	{56109, 35}, // 2012-07-01
	{57204, 36}, // 2015-07-01
	{57754, 37}, // 2017-01-01
}

/***** FUNCTION ********************************/

// TAIMinusUTC returns the integer TAI-UTC offset in effect at 00:00:00 UTC
// of the given day: the offset of the last table entry with effective MJD
// not after the query, or 0 before the table begins. The "last entry <=
// query" rule is the lookup contract; it is not re-derived here.
func TAIMinusUTC(m MJD) int {
	i := sort.Search(len(leapSeconds), func(i int) bool {
		return leapSeconds[i].mjd > m
	})

	if i == 0 {
		return 0
	}

	return leapSeconds[i-1].offset
}

/***********************************************/

// IsLeapInsertionDay reports whether the given UTC day is lengthened by a
// leap second, which is the case exactly when the next day's offset
// differs.
func IsLeapInsertionDay(m MJD) bool {
	return TAIMinusUTC(m+1) != TAIMinusUTC(m)
}

/***********************************************/

// LeapSecondsBetween returns the leap seconds inserted from 00:00 of day a
// to 00:00 of day b (negative when b precedes a).
func LeapSecondsBetween(a, b MJD) int {
	return TAIMinusUTC(b) - TAIMinusUTC(a)
}

/***********************************************/

// UTCDaySeconds returns the length of the given UTC day in SI seconds,
// 86401 on an insertion day.
func UTCDaySeconds(m MJD) int {
	return SecPerDay + TAIMinusUTC(m+1) - TAIMinusUTC(m)
}
