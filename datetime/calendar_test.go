package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DSOlab/ggdatetime-sub001/units"
)

func TestKnownMJDAnchors(t *testing.T) {
	cases := []struct {
		date YMDDate
		mjd  MJD
	}{
		{YMDDate{1858, units.November, 17}, 0},
		{YMDDate{1859, units.January, 1}, 45},
		{YMDDate{1980, units.January, 6}, 44244},
		{YMDDate{2000, units.January, 1}, 51544},
		{YMDDate{2017, units.January, 1}, 57754},
		{YMDDate{1601, units.January, 1}, -94187},
	}

	for _, tc := range cases {
		got, err := MJDFromYMD(tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.mjd, got, "%04d-%02d-%02d", tc.date.Year, tc.date.Month, tc.date.Day)
		assert.Equal(t, tc.date, tc.mjd.ToYMD())
	}
}

func TestMJDRoundTripAllDates(t *testing.T) {
	// Walk every valid date in 1804..2400 and require an exact round trip
	// through the day count, and consecutive dates mapping to consecutive
	// days.
	prev, err := MJDFromYMD(YMDDate{1804, units.January, 1})
	require.NoError(t, err)

	for y := units.Year(1804); y <= 2400; y++ {
		for m := units.January; m <= units.December; m++ {
			for d := 1; d <= units.DaysInMonth(y, m); d++ {
				date := YMDDate{y, m, units.DayOfMonth(d)}
				mjd, err := MJDFromYMD(date)
				require.NoError(t, err)

				if date != (YMDDate{1804, units.January, 1}) {
					require.Equal(t, prev+1, mjd, "date %v", date)
				}

				require.Equal(t, date, mjd.ToYMD(), "mjd %d", mjd)
				prev = mjd
			}
		}
	}
}

func TestMJDFromInvalidYMD(t *testing.T) {
	cases := []YMDDate{
		{2023, units.February, 29},
		{2024, units.February, 30},
		{2023, units.April, 31},
		{2023, units.Month(0), 1},
		{2023, units.Month(13), 1},
		{2023, units.June, 0},
		{2023, units.June, -5},
	}

	for _, d := range cases {
		assert.False(t, d.IsValid())
		_, err := MJDFromYMD(d)
		require.ErrorIs(t, err, ErrInvalidDate, "date %v", d)

		var cerr *ConversionError
		require.ErrorAs(t, err, &cerr)
	}
}

func TestYDOYRoundTrip(t *testing.T) {
	for y := units.Year(1804); y <= 2400; y++ {
		last := units.DayOfYear(365)

		if y.IsLeap() {
			last++
		}

		for doy := units.DayOfYear(1); doy <= last; doy++ {
			ydoy := YDOYDate{y, doy}
			ymd, err := YDOYToYMD(ydoy)
			require.NoError(t, err)
			require.True(t, ymd.IsValid())

			back, err := YMDToYDOY(ymd)
			require.NoError(t, err)
			require.Equal(t, ydoy, back, "year %d doy %d", y, doy)
		}
	}
}

func TestYDOYAgainstMJD(t *testing.T) {
	cases := []struct {
		ydoy YDOYDate
		mjd  MJD
	}{
		{YDOYDate{2000, 1}, 51544},
		{YDOYDate{1858, 321}, 0},
		{YDOYDate{2016, 366}, 57753},
		{YDOYDate{1980, 6}, 44244},
	}

	for _, tc := range cases {
		got, err := MJDFromYDOY(tc.ydoy)
		require.NoError(t, err)
		assert.Equal(t, tc.mjd, got)
		assert.Equal(t, tc.ydoy, tc.mjd.ToYDOY())
	}
}

func TestMJDFromInvalidYDOY(t *testing.T) {
	for _, d := range []YDOYDate{{2023, 366}, {2024, 367}, {2023, 0}, {2023, -1}} {
		assert.False(t, d.IsValid())
		_, err := MJDFromYDOY(d)
		require.ErrorIs(t, err, ErrInvalidDayOfYear, "ydoy %v", d)

		_, err = YDOYToYMD(d)
		require.ErrorIs(t, err, ErrInvalidDayOfYear, "ydoy %v", d)
	}
}

func TestMJDAddSub(t *testing.T) {
	m := MJD(51544)
	assert.Equal(t, MJD(51545), m.Add(1))
	assert.Equal(t, MJD(51174), m.Sub(370))
	assert.Equal(t, YMDDate{1999, units.December, 31}, m.Sub(1).ToYMD())
}

func TestNegativeMJD(t *testing.T) {
	// dates before the MJD epoch still round-trip
	d := YMDDate{1857, units.November, 17}
	mjd, err := MJDFromYMD(d)
	require.NoError(t, err)
	assert.Equal(t, MJD(-365), mjd)
	assert.Equal(t, d, mjd.ToYMD())
}
