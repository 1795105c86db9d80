// internal/telescope/calculator.go
package telescope

import (
	"time"

	"timetelescope/internal/catalog"
)

// Calculate converts the time elapsed between target and now into the
// distance light covers in that time, and pairs it with the closest landmark
// in nearest. It fails with ErrInvalidInput when target is after now.
func Calculate(now, target time.Time, nearest catalog.Nearest) (*Result, error) {
	if target.After(now) {
		return nil, ErrInvalidInput
	}

	lightYears := float64(ElapsedSeconds(now, target)) / SecondsPerJulianYear
	kilometers := lightYears * KilometersPerLightYear
	miles := lightYears * MilesPerLightYear

	res := &Result{
		LightYears: lightYears,
		Kilometers: kilometers,
		Miles:      miles,
		TravelTime: TravelTime(kilometers),
	}
	if l, ok := nearest.NearestTo(lightYears); ok {
		res.NearestLandmark = &l
	}
	return res, nil
}

// ElapsedSeconds returns the whole seconds from target to now, truncating any
// sub-second remainder. It works on Unix seconds so spans beyond the ~292 year
// range of time.Duration stay exact.
func ElapsedSeconds(now, target time.Time) int64 {
	secs := now.Unix() - target.Unix()
	nanos := now.Nanosecond() - target.Nanosecond()
	switch {
	case secs > 0 && nanos < 0:
		secs--
	case secs < 0 && nanos > 0:
		secs++
	}
	return secs
}
