package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DSOlab/ggdatetime-sub001/units"
)

func TestUTCFromTimestamp(t *testing.T) {
	// 2016-12-31 is an insertion day: 23:59:60 is a real second
	d, err := UTCFromTimestamp(YMDDate{2016, units.December, 31}, 23, 59, 60)
	require.NoError(t, err)
	assert.Equal(t, MJD(57753), d.MJD())
	assert.InDelta(t, 86400.0, d.SecOfDay(), 0)

	// but 23:59:61 is not
	_, err = UTCFromTimestamp(YMDDate{2016, units.December, 31}, 23, 59, 61)
	require.ErrorIs(t, err, ErrOverflow)

	// and on an ordinary day 23:59:60 does not exist
	_, err = UTCFromTimestamp(YMDDate{2017, units.January, 1}, 23, 59, 60)
	require.ErrorIs(t, err, ErrOverflow)

	// the inserted second only extends the final minute
	_, err = UTCFromTimestamp(YMDDate{2016, units.December, 31}, 23, 58, 60)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = UTCFromTimestamp(YMDDate{2016, units.December, 32}, 0, 0, 0)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestUTCNormalizeAcrossInsertionDay(t *testing.T) {
	// carrying forward out of an insertion day needs the full 86401 s
	d := NewTwoPartDateUTC(57753, 86400.5)
	assert.Equal(t, MJD(57753), d.MJD())
	assert.InDelta(t, 86400.5, d.SecOfDay(), 0)

	d = NewTwoPartDateUTC(57753, 86401.0)
	assert.Equal(t, MJD(57754), d.MJD())
	assert.InDelta(t, 0.0, d.SecOfDay(), 0)

	// carrying backward into an insertion day lands in the leap second
	d = NewTwoPartDateUTC(57754, -0.5)
	assert.Equal(t, MJD(57753), d.MJD())
	assert.InDelta(t, 86400.5, d.SecOfDay(), 0)

	// ordinary days still carry at 86400
	d = NewTwoPartDateUTC(57754, 86400.0)
	assert.Equal(t, MJD(57755), d.MJD())
	assert.InDelta(t, 0.0, d.SecOfDay(), 0)
}

func TestLeapDayWalk(t *testing.T) {
	// Walk one-second steps across the 2016-12-31 insertion day on both
	// scales, starting from the same physical instant (UTC midnight of the
	// day before the offset change).
	utc := NewTwoPartDateUTC(57753, 0)
	tai := UTCToTAI(utc)
	require.Equal(t, MJD(57753), tai.MJD())
	require.InDelta(t, 36.0, tai.SecOfDay(), 0)

	reached86400 := false

	for i := 0; i < 86401; i++ {
		utc.AddSeconds(1.0)
		tai.AddSeconds(1.0)

		if utc.SecOfDay() >= 86400.0 {
			reached86400 = true
		}
	}

	// the UTC fraction entered [86400, 86401) before its carry
	assert.True(t, reached86400)

	// both scales land on the same next day
	assert.Equal(t, MJD(57754), utc.MJD())
	assert.Equal(t, MJD(57754), tai.MJD())
	assert.InDelta(t, 0.0, utc.SecOfDay(), 0)

	// after the carry, UTC plus the stepped offset equals TAI
	assert.InDelta(t, float64(TAIMinusUTC(57754)), tai.SecOfDay(), 0)
	back := UTCToTAI(utc)
	assert.Equal(t, tai.MJD(), back.MJD())
	assert.InDelta(t, tai.SecOfDay(), back.SecOfDay(), 0)
}

func TestUTCSubAddsLeapSecondsBack(t *testing.T) {
	// midnight-to-midnight across the 2016-12-31 insertion is 86401 SI s
	a := NewTwoPartDateUTC(57753, 0)
	b := NewTwoPartDateUTC(57754, 0)

	days, sec := b.Sub(a)
	assert.Equal(t, int64(1), days)
	assert.InDelta(t, 1.0, sec, 0)

	days, sec = a.Sub(b)
	assert.Equal(t, int64(-1), days)
	assert.InDelta(t, -1.0, sec, 0)

	// no leap second between ordinary days
	c := NewTwoPartDateUTC(51544, 100)
	d := NewTwoPartDateUTC(51545, 50)
	days, sec = d.Sub(c)
	assert.Equal(t, int64(1), days)
	assert.InDelta(t, -50.0, sec, 0)
}

func TestUTCKahanAcrossLeapDay(t *testing.T) {
	utc := NewTwoPartDateUTC(57753, 86390)
	var comp float64

	for i := 0; i < 21; i++ {
		utc.AddSecondsKahan(0.5, &comp)
	}

	// 10.5 s past 23:59:50 on an 86401 s day: inside the leap second
	assert.Equal(t, MJD(57753), utc.MJD())
	assert.InDelta(t, 86400.5, utc.SecOfDay(), 1e-9)

	// one more step carries into the next day
	utc.AddSecondsKahan(0.5, &comp)
	assert.Equal(t, MJD(57754), utc.MJD())
	assert.InDelta(t, 0.0, utc.SecOfDay(), 1e-9)
}
