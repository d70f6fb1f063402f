package datetime

/*
Time-scale conversion engine. All conversions route through TAI: TT and GPS
sit at exact constant offsets from TAI, while UTC is resolved through the
leap-second table. The functions are pure and stateless; round trips
through the constant-offset scales reproduce the input exactly, and round
trips through the leap-second path are exact to floating-summation
tolerance.
*/

/***** FUNCTION ********************************/

// TAIToTT applies the exact TT = TAI + 32.184 s offset.
func TAIToTT(t TwoPartDate) TwoPartDate {
	t.AddSeconds(TTMinusTAI)
	return t
}

/***********************************************/

// TTToTAI removes the exact 32.184 s offset.
func TTToTAI(t TwoPartDate) TwoPartDate {
	t.AddSeconds(-TTMinusTAI)
	return t
}

/***********************************************/

// TAIToGPS applies the exact GPS = TAI - 19 s offset. GPS time is
// continuous; no leap seconds are involved.
func TAIToGPS(t TwoPartDate) TwoPartDate {
	t.AddSeconds(-TAIMinusGPS)
	return t
}

/***********************************************/

// GPSToTAI removes the exact 19 s offset.
func GPSToTAI(t TwoPartDate) TwoPartDate {
	t.AddSeconds(TAIMinusGPS)
	return t
}

/***********************************************/

// TTToGPS composes the two exact offsets.
func TTToGPS(t TwoPartDate) TwoPartDate {
	return TAIToGPS(TTToTAI(t))
}

/***********************************************/

// GPSToTT composes the two exact offsets.
func GPSToTT(t TwoPartDate) TwoPartDate {
	return TAIToTT(GPSToTAI(t))
}

/***********************************************/

// TAIToUTC resolves the TAI-UTC offset for the target day and relabels the
// instant on the UTC scale. Normalization with leap-aware day lengths
// absorbs the offset change when the instant falls back into an insertion
// day: the previous day's extra second and the offset step cancel exactly.
func TAIToUTC(t TwoPartDate) TwoPartDateUTC {
	return NewTwoPartDateUTC(t.mjd, t.sod-float64(TAIMinusUTC(t.mjd)))
}

/***********************************************/

// UTCToTAI relabels a UTC instant on the TAI scale using the offset in
// effect on the UTC day.
func UTCToTAI(u TwoPartDateUTC) TwoPartDate {
	return NewTwoPartDate(u.mjd, u.sod+float64(TAIMinusUTC(u.mjd)))
}

/***********************************************/

// UTCToGPS composes the leap-second path with the exact GPS offset.
func UTCToGPS(u TwoPartDateUTC) TwoPartDate {
	return TAIToGPS(UTCToTAI(u))
}

/***********************************************/

// GPSToUTC composes the exact GPS offset with the leap-second path.
func GPSToUTC(t TwoPartDate) TwoPartDateUTC {
	return TAIToUTC(GPSToTAI(t))
}

/***********************************************/

// GPSWeek decomposes a GPS-scale instant into the week count since the GPS
// epoch (1980-01-06) and the seconds into that week.
func GPSWeek(t TwoPartDate) (week int64, sow float64) {
	days := int64(t.mjd - GPSEpochMJD)
	week = days / 7
	dow := days % 7

	if dow < 0 {
		week--
		dow += 7
	}

	sow = float64(dow)*SecPerDay + t.sod
	return
}

/***********************************************/

// TwoPartFromGPSWeek is the inverse of GPSWeek.
func TwoPartFromGPSWeek(week int64, sow float64) TwoPartDate {
	return NewTwoPartDate(GPSEpochMJD+MJD(week*7), sow)
}
