package units

import (
	"errors"
	"math"
)

/***** ERROR ***********************************/

var (
	// ErrOverflow reports an integer tick count that cannot be represented
	// at the requested resolution.
	ErrOverflow = errors.New("tick count overflow")
)

/***** RESOLUTION ******************************/

// Resolution tags a sub-second tick scale. The concrete tags are empty
// structs so an Interval stays a single int64 in memory.
type Resolution interface {
	TicksPerSec() int64
}

type Sec struct{}

func (Sec) TicksPerSec() int64 { return 1 }

type Milli struct{}

func (Milli) TicksPerSec() int64 { return 1_000 }

type Micro struct{}

func (Micro) TicksPerSec() int64 { return 1_000_000 }

type Nano struct{}

func (Nano) TicksPerSec() int64 { return 1_000_000_000 }

type Pico struct{}

func (Pico) TicksPerSec() int64 { return 1_000_000_000_000 }

/***** STRUCT **********************************/

// Interval is an integer count of ticks at resolution R. It may span any
// number of days, positive or negative.
type Interval[R Resolution] struct {
	ticks int64
}

// Aliases for the supported resolutions.
type (
	Seconds      = Interval[Sec]
	MilliSeconds = Interval[Milli]
	MicroSeconds = Interval[Micro]
	NanoSeconds  = Interval[Nano]
	PicoSeconds  = Interval[Pico]
)

/***** FUNCTION ********************************/

func NewInterval[R Resolution](ticks int64) Interval[R] {
	return Interval[R]{ticks}
}

func NewSeconds(n int64) Seconds { return Seconds{n} }

func NewMilliSeconds(n int64) MilliSeconds { return MilliSeconds{n} }

func NewMicroSeconds(n int64) MicroSeconds { return MicroSeconds{n} }

func NewNanoSeconds(n int64) NanoSeconds { return NanoSeconds{n} }

func NewPicoSeconds(n int64) PicoSeconds { return PicoSeconds{n} }

/***********************************************/

// IntervalFromHMS composes an interval from hours, minutes, whole seconds
// and a sub-second tick remainder at resolution R.
func IntervalFromHMS[R Resolution](h Hour, m Minute, sec int64, sub int64) Interval[R] {
	var r R
	tps := r.TicksPerSec()
	total := (int64(h)*3600 + int64(m)*60 + sec) * tps
	return Interval[R]{total + sub}
}

/***********************************************/

// Cast converts an interval between resolutions. Casting to a finer
// resolution multiplies exactly and fails with ErrOverflow when the result
// does not fit an int64; casting to a coarser resolution truncates toward
// zero, losing sub-tick precision.
func Cast[To, From Resolution](iv Interval[From]) (Interval[To], error) {
	var to To
	var from From
	toF := to.TicksPerSec()
	fromF := from.TicksPerSec()

	if toF >= fromF {
		mult := toF / fromF

		if iv.ticks > math.MaxInt64/mult || iv.ticks < math.MinInt64/mult {
			return Interval[To]{}, ErrOverflow
		}

		return Interval[To]{iv.ticks * mult}, nil
	}

	return Interval[To]{iv.ticks / (fromF / toF)}, nil
}

/***** METHOD **********************************/

func (iv Interval[R]) Ticks() int64 {
	return iv.ticks
}

/***********************************************/

func (iv Interval[R]) TicksPerSec() int64 {
	var r R
	return r.TicksPerSec()
}

/***********************************************/

func (iv Interval[R]) TicksPerDay() int64 {
	return 86400 * iv.TicksPerSec()
}

/***********************************************/

func (iv Interval[R]) ToFractionalSeconds() float64 {
	return float64(iv.ticks) / float64(iv.TicksPerSec())
}

/***********************************************/

func (iv Interval[R]) ToFractionalDays() float64 {
	return float64(iv.ticks) / float64(iv.TicksPerDay())
}

/***********************************************/

func (iv Interval[R]) Add(other Interval[R]) Interval[R] {
	return Interval[R]{iv.ticks + other.ticks}
}

/***********************************************/

func (iv Interval[R]) Sub(other Interval[R]) Interval[R] {
	return Interval[R]{iv.ticks - other.ticks}
}

/***********************************************/

// MoreThanDay reports whether the interval spans at least one whole day in
// either direction.
func (iv Interval[R]) MoreThanDay() bool {
	tpd := iv.TicksPerDay()
	return iv.ticks >= tpd || iv.ticks <= -tpd
}

/***********************************************/

// RemoveDays strips the whole days from the interval, returning their count
// and the remainder. Both results truncate toward zero for negative
// intervals, matching Go integer division.
func (iv Interval[R]) RemoveDays() (days int64, rem Interval[R]) {
	tpd := iv.TicksPerDay()
	days = iv.ticks / tpd
	rem = Interval[R]{iv.ticks % tpd}
	return
}

/***********************************************/

// ToHMS decomposes a non-negative intra-day interval into hour, minute,
// whole second and the sub-second tick remainder.
func (iv Interval[R]) ToHMS() (h Hour, m Minute, sec int64, sub Interval[R]) {
	tps := iv.TicksPerSec()
	total := iv.ticks
	sub = Interval[R]{total % tps}
	totalSec := total / tps
	h = Hour(totalSec / 3600)
	totalSec %= 3600
	m = Minute(totalSec / 60)
	sec = totalSec % 60
	return
}
