// Package dtfmt renders core date/time values into the fixed-width text
// templates used by the line-oriented tools. It only reads component
// accessors; no conversion logic lives here.
package dtfmt

import (
	"fmt"
	"math"

	"github.com/DSOlab/ggdatetime-sub001/datetime"
)

/***** FUNCTION ********************************/

// YMD renders a calendar triple as YYYY/MM/DD.
func YMD(d datetime.YMDDate) string {
	return fmt.Sprintf("%04d/%02d/%02d", int(d.Year), int(d.Month), int(d.Day))
}

/***********************************************/

// HMS renders seconds-of-day as HH:MM:SS, truncating sub-second ticks.
// Values at or beyond 86400 render the hour past 23, so a leap second
// shows as 23:59:60.
func HMS(sod float64) string {
	whole := int64(sod)
	h := whole / 3600
	m := (whole % 3600) / 60
	s := whole % 60

	if h >= 24 {
		// leap second of an insertion day
		h = 23
		m = 59
		s = whole - 23*3600 - 59*60
	}

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

/***********************************************/

// HMSNano renders seconds-of-day as HH:MM:SS.fffffffff with the fraction
// rounded to whole nanoseconds.
func HMSNano(sod float64) string {
	whole := int64(sod)
	nanos := int64(math.Round((sod - float64(whole)) * 1e9))

	if nanos >= 1_000_000_000 {
		nanos -= 1_000_000_000
		whole++
	}

	return fmt.Sprintf("%s.%09d", HMS(float64(whole)), nanos)
}

/***********************************************/

// SignedSOD renders a signed total-seconds-of-day value with nanosecond
// resolution and an explicit sign.
func SignedSOD(sod float64) string {
	return fmt.Sprintf("%+.9f", sod)
}
