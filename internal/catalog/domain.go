// internal/catalog/domain.go
package catalog

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNotFound           = errors.New("landmark not found")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrInvalidLandmark    = errors.New("invalid landmark")
)

// Landmark is a catalogued astronomical object at a known distance.
type Landmark struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DistanceLY  float64 `json:"distance_ly"`
	ObjectType  string  `json:"object_type"`
	Description string  `json:"description"`
}

// Validate checks the landmark against the catalog data model.
func (l Landmark) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: id %d has an empty name", ErrInvalidLandmark, l.ID)
	}
	if math.IsNaN(l.DistanceLY) || math.IsInf(l.DistanceLY, 0) || l.DistanceLY < 0 {
		return fmt.Errorf("%w: %q has distance %v", ErrInvalidLandmark, l.Name, l.DistanceLY)
	}
	return nil
}
