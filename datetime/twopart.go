package datetime

import (
	"github.com/DSOlab/ggdatetime-sub001/units"
)

/***** STRUCT **********************************/

// TwoPartDate is an instant on a continuous time scale (TAI, TT, GPS),
// split into an integer Modified Julian Day and floating seconds-of-day.
// Keeping the day count integral avoids the catastrophic cancellation a
// single float suffers at large MJD values. The fractional part is held
// normalized in [0, 86400) except transiently inside an addition.
type TwoPartDate struct {
	mjd MJD
	sod float64
}

/***** FUNCTION ********************************/

// NewTwoPartDate builds an instant from a day count and seconds-of-day,
// normalizing the fraction into [0, 86400).
func NewTwoPartDate(m MJD, sod float64) TwoPartDate {
	d := TwoPartDate{m, sod}
	d.normalize()
	return d
}

/***********************************************/

// TwoPartFromTimestamp builds an instant from a full calendar timestamp. It
// fails with ErrInvalidDate on an impossible triple and with ErrOverflow on
// an out-of-range time-of-day.
func TwoPartFromTimestamp(d YMDDate, h units.Hour, min units.Minute, sec float64) (TwoPartDate, error) {
	m, err := MJDFromYMD(d)

	if err != nil {
		return TwoPartDate{}, err
	}

	if h < 0 || h > 23 {
		return TwoPartDate{}, convErr("TwoPartFromTimestamp", ErrOverflow, "hour %d not in 0..23", h)
	}

	if min < 0 || min > 59 {
		return TwoPartDate{}, convErr("TwoPartFromTimestamp", ErrOverflow, "minute %d not in 0..59", min)
	}

	if sec < 0 || sec >= 60 {
		return TwoPartDate{}, convErr("TwoPartFromTimestamp", ErrOverflow, "second %g not in [0, 60)", sec)
	}

	return TwoPartDate{m, float64(h)*3600 + float64(min)*60 + sec}, nil
}

/***********************************************/

// TwoPartFromSeconds splits a plain second count (measured from MJD 0,
// 00:00) into the normalized two-part form. It is mostly useful for
// expressing intervals in two-part arithmetic.
func TwoPartFromSeconds(sec float64) TwoPartDate {
	return NewTwoPartDate(0, sec)
}

/***** METHOD **********************************/

func (d TwoPartDate) MJD() MJD {
	return d.mjd
}

/***********************************************/

func (d TwoPartDate) SecOfDay() float64 {
	return d.sod
}

/***********************************************/

// AddSeconds adds a signed SI-second delta to the fraction, then carries
// whole days until the fraction is back in [0, 86400).
func (d *TwoPartDate) AddSeconds(sec float64) {
	d.sod += sec
	d.normalize()
}

/***********************************************/

// AddSecondsKahan is AddSeconds with compensated summation: comp carries
// the running error term. Repeated addition of a fixed small step keeps a
// bounded error over ~1e9 iterations, where plain summation drifts.
func (d *TwoPartDate) AddSecondsKahan(sec float64, comp *float64) {
	y := sec - *comp
	t := d.sod + y
	*comp = (t - d.sod) - y
	d.sod = t
	d.normalize()
}

/***********************************************/

// Sub returns the signed difference d - other as a (days, seconds) pair.
// The two fields are never collapsed into one scalar, preserving precision
// for wide day spans.
func (d TwoPartDate) Sub(other TwoPartDate) (days int64, sec float64) {
	return int64(d.mjd - other.mjd), d.sod - other.sod
}

/***********************************************/

func (d TwoPartDate) Eq(other TwoPartDate) bool {
	return d.mjd == other.mjd && d.sod == other.sod
}

/***********************************************/

func (d TwoPartDate) Lt(other TwoPartDate) bool {
	return d.mjd < other.mjd || (d.mjd == other.mjd && d.sod < other.sod)
}

/***********************************************/

func (d TwoPartDate) Gt(other TwoPartDate) bool {
	return other.Lt(d)
}

/***********************************************/

func (d *TwoPartDate) normalize() {
	for d.sod >= SecPerDay {
		d.sod -= SecPerDay
		d.mjd++
	}

	for d.sod < 0 {
		d.sod += SecPerDay
		d.mjd--
	}
}
