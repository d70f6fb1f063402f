package datetime

import (
	"github.com/DSOlab/ggdatetime-sub001/units"
)

/***** STRUCT **********************************/

// TwoPartDateUTC is the UTC counterpart of TwoPartDate. A UTC day is not
// always 86400 seconds long: on a leap-insertion day the seconds-of-day
// legitimately reaches into [86400, 86401) before the carry to the next
// day, so normalization consults the leap-second table for the day length.
type TwoPartDateUTC struct {
	mjd MJD
	sod float64
}

/***** FUNCTION ********************************/

// NewTwoPartDateUTC builds a UTC instant from a day count and seconds-of-
// day, normalizing with leap-aware day lengths.
func NewTwoPartDateUTC(m MJD, sod float64) TwoPartDateUTC {
	d := TwoPartDateUTC{m, sod}
	d.normalize()
	return d
}

/***********************************************/

// UTCFromTimestamp builds a UTC instant from a calendar timestamp. In the
// final minute of an insertion day the second field may reach into the
// inserted second (23:59:60); anywhere else the usual [0, 60) bound holds.
func UTCFromTimestamp(d YMDDate, h units.Hour, min units.Minute, sec float64) (TwoPartDateUTC, error) {
	m, err := MJDFromYMD(d)

	if err != nil {
		return TwoPartDateUTC{}, err
	}

	if h < 0 || h > 23 {
		return TwoPartDateUTC{}, convErr("UTCFromTimestamp", ErrOverflow, "hour %d not in 0..23", h)
	}

	if min < 0 || min > 59 {
		return TwoPartDateUTC{}, convErr("UTCFromTimestamp", ErrOverflow, "minute %d not in 0..59", min)
	}

	maxSec := 60.0

	if h == 23 && min == 59 {
		maxSec += float64(UTCDaySeconds(m) - SecPerDay)
	}

	if sec < 0 || sec >= maxSec {
		return TwoPartDateUTC{}, convErr("UTCFromTimestamp", ErrOverflow, "second %g not in [0, %g)", sec, maxSec)
	}

	return TwoPartDateUTC{m, float64(h)*3600 + float64(min)*60 + sec}, nil
}

/***** METHOD **********************************/

func (d TwoPartDateUTC) MJD() MJD {
	return d.mjd
}

/***********************************************/

func (d TwoPartDateUTC) SecOfDay() float64 {
	return d.sod
}

/***********************************************/

// AddSeconds adds a signed SI-second delta, carrying across day boundaries
// with the actual UTC day lengths.
func (d *TwoPartDateUTC) AddSeconds(sec float64) {
	d.sod += sec
	d.normalize()
}

/***********************************************/

// AddSecondsKahan is AddSeconds with compensated summation; see
// TwoPartDate.AddSecondsKahan.
func (d *TwoPartDateUTC) AddSecondsKahan(sec float64, comp *float64) {
	y := sec - *comp
	t := d.sod + y
	*comp = (t - d.sod) - y
	d.sod = t
	d.normalize()
}

/***********************************************/

// Sub returns the SI-elapsed difference d - other as a (days, seconds)
// pair. Because UTC days spanning a leap insertion are longer than 86400 s,
// the leap seconds elapsed between the two day counts are added back so the
// seconds field measures true SI seconds.
func (d TwoPartDateUTC) Sub(other TwoPartDateUTC) (days int64, sec float64) {
	days = int64(d.mjd - other.mjd)
	sec = d.sod - other.sod + float64(LeapSecondsBetween(other.mjd, d.mjd))
	return
}

/***********************************************/

func (d TwoPartDateUTC) Eq(other TwoPartDateUTC) bool {
	return d.mjd == other.mjd && d.sod == other.sod
}

/***********************************************/

func (d TwoPartDateUTC) Lt(other TwoPartDateUTC) bool {
	return d.mjd < other.mjd || (d.mjd == other.mjd && d.sod < other.sod)
}

/***********************************************/

func (d TwoPartDateUTC) Gt(other TwoPartDateUTC) bool {
	return other.Lt(d)
}

/***********************************************/

func (d *TwoPartDateUTC) normalize() {
	for {
		dayLen := float64(UTCDaySeconds(d.mjd))

		if d.sod >= dayLen {
			d.sod -= dayLen
			d.mjd++
			continue
		}

		if d.sod < 0 {
			d.mjd--
			d.sod += float64(UTCDaySeconds(d.mjd))
			continue
		}

		return
	}
}
