// internal/telescope/domain.go
package telescope

import (
	"errors"

	"timetelescope/internal/catalog"
)

// ErrInvalidInput is returned when the target instant lies after now.
var ErrInvalidInput = errors.New("target date must be in the past")

const (
	// SecondsPerJulianYear is 365.25 days of 86400 seconds.
	SecondsPerJulianYear = 31_557_600.0

	// KilometersPerLightYear and MilesPerLightYear are fixed conversion factors.
	KilometersPerLightYear = 9_460_730_472_580.8
	MilesPerLightYear      = 5_878_625_373_183.6

	// VoyagerSpeedKmH is the reference spacecraft speed (17 km/s).
	VoyagerSpeedKmH = 61_200.0

	hoursPerJulianYear = 24 * 365.25
)

// Result is the outcome of one distance calculation.
type Result struct {
	LightYears float64
	Kilometers float64
	Miles      float64

	// TravelTime describes how long the reference spacecraft needs to cover Kilometers.
	TravelTime string

	// NearestLandmark is nil only when the catalog is empty.
	NearestLandmark *catalog.Landmark
}
