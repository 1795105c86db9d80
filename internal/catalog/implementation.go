// internal/catalog/implementation.go
package catalog

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "timetelescope/catalog"

// Catalog is an immutable set of landmarks. It is safe for concurrent use.
type Catalog struct {
	byDistance []Landmark // sorted by (DistanceLY, ID)
	byID       map[int64]int
}

// Load reads every landmark from src once and publishes a fully built catalog.
// A read failure is reported as ErrCatalogUnavailable.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "catalog.load")
	defer span.End()

	landmarks, err := src.ListLandmarks(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list landmarks")
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	c, err := New(landmarks)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build catalog")
		return nil, err
	}

	span.SetAttributes(attribute.Int("landmarks.loaded", c.Len()))
	return c, nil
}

// New builds a catalog from landmarks. The slice is copied.
func New(landmarks []Landmark) (*Catalog, error) {
	c := &Catalog{
		byDistance: make([]Landmark, len(landmarks)),
		byID:       make(map[int64]int, len(landmarks)),
	}
	copy(c.byDistance, landmarks)

	seen := make(map[int64]struct{}, len(landmarks))
	for _, l := range c.byDistance {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidLandmark, l.ID)
		}
		seen[l.ID] = struct{}{}
	}

	sort.Slice(c.byDistance, func(i, j int) bool {
		a, b := c.byDistance[i], c.byDistance[j]
		if a.DistanceLY != b.DistanceLY {
			return a.DistanceLY < b.DistanceLY
		}
		return a.ID < b.ID
	})
	for i, l := range c.byDistance {
		c.byID[l.ID] = i
	}

	return c, nil
}

// Len returns the number of landmarks.
func (c *Catalog) Len() int {
	return len(c.byDistance)
}

// Entries returns a copy of all landmarks ordered by ID.
func (c *Catalog) Entries() []Landmark {
	out := make([]Landmark, len(c.byDistance))
	copy(out, c.byDistance)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the landmark with the given ID.
func (c *Catalog) Get(id int64) (Landmark, error) {
	i, ok := c.byID[id]
	if !ok {
		return Landmark{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return c.byDistance[i], nil
}

// NearestTo returns the landmark whose distance is closest to distanceLY.
// Among equally close landmarks the one with the smallest ID wins. The
// boolean is false only when the catalog is empty.
func (c *Catalog) NearestTo(distanceLY float64) (Landmark, bool) {
	n := len(c.byDistance)
	if n == 0 {
		return Landmark{}, false
	}

	diff := func(i int) float64 {
		return math.Abs(c.byDistance[i].DistanceLY - distanceLY)
	}

	// First entry at or beyond the query.
	above := sort.Search(n, func(i int) bool {
		return c.byDistance[i].DistanceLY >= distanceLY
	})
	best := math.Inf(1)
	if above > 0 {
		best = diff(above - 1)
	}
	if above < n {
		best = min(best, diff(above))
	}

	// Rounded differences never shrink moving away from the query, so every
	// entry at the best difference sits in one contiguous window around above.
	pick := -1
	consider := func(i int) {
		if pick < 0 || c.byDistance[i].ID < c.byDistance[pick].ID {
			pick = i
		}
	}
	for i := above - 1; i >= 0 && diff(i) == best; i-- {
		consider(i)
	}
	for i := above; i < n && diff(i) == best; i++ {
		consider(i)
	}

	if pick < 0 {
		// NaN query: no difference compares equal.
		return c.byDistance[0], true
	}
	return c.byDistance[pick], true
}

// annotateNearest tags the active span with the landmark that matched.
func annotateNearest(ctx context.Context, l Landmark, found bool) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Bool("landmark.found", found))
	if found {
		span.SetAttributes(
			attribute.Int64("landmark.id", l.ID),
			attribute.String("landmark.name", l.Name),
		)
	}
}
