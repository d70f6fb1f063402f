package datetime

/***** CONSTANT ********************************/

const (
	// SecPerDay is the length of a nominal (non-leap) day in SI seconds.
	SecPerDay = 86400

	// J2000MJD is the Modified Julian Day of 2000-01-01; the J2000 epoch
	// itself falls at noon of that day.
	J2000MJD MJD = 51544

	// J2000SecOfDay is the seconds-of-day of the J2000 epoch.
	J2000SecOfDay float64 = 43200.0

	// JDMinusMJD is the constant Julian Date minus Modified Julian Day.
	JDMinusMJD float64 = 2400000.5

	// TTMinusTAI is the exact, constant TT-TAI offset in seconds.
	TTMinusTAI float64 = 32.184

	// TAIMinusGPS is the exact, constant TAI-GPS offset in seconds. GPS
	// time is continuous; the offset never changes.
	TAIMinusGPS float64 = 19.0

	// GPSEpochMJD is the Modified Julian Day of 1980-01-06, the start of
	// GPS week 0.
	GPSEpochMJD MJD = 44244
)

/***********************************************/

const (
	// Ordinal day count measures days with 1601-01-01 as day 1; the MJD
	// epoch 1858-11-17 then has this ordinal anchor.
	mjdOrd1     int64 = -94187
	ordRefYear  int64 = 1601
	daysPer400y int64 = 400*365 + 97
)

var (
	daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
)
