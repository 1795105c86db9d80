// internal/telescope/travel.go
package telescope

import (
	"math"
	"strconv"
)

// TravelTime formats how long the reference spacecraft takes to cover km,
// scaled to days, years, thousand years or million years.
func TravelTime(km float64) string {
	hours := km / VoyagerSpeedKmH
	years := hours / hoursPerJulianYear

	switch {
	case years < 1:
		return oneDecimal(hours/24) + " days"
	case years < 1_000:
		return oneDecimal(years) + " years"
	case years < 1_000_000:
		return oneDecimal(years/1_000) + " thousand years"
	default:
		return oneDecimal(years/1_000_000) + " million years"
	}
}

// oneDecimal rounds half up to one decimal place.
func oneDecimal(v float64) string {
	return strconv.FormatFloat(math.Floor(v*10+0.5)/10, 'f', 1, 64)
}
