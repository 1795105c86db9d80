package catalog

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type failingSource struct {
	err error
}

func (f failingSource) ListLandmarks(context.Context) ([]Landmark, error) {
	return nil, f.err
}

func mustNew(t *testing.T, landmarks []Landmark) *Catalog {
	t.Helper()
	c, err := New(landmarks)
	require.NoError(t, err)
	return c
}

func TestNearestToPicksClosestDistance(t *testing.T) {
	c := mustNew(t, []Landmark{
		{ID: 1, Name: "Proxima Centauri", DistanceLY: 4.24},
		{ID: 2, Name: "Sirius", DistanceLY: 8.6},
		{ID: 3, Name: "Fomalhaut", DistanceLY: 25.0},
	})

	l, ok := c.NearestTo(10.0)
	require.True(t, ok)
	assert.Equal(t, int64(2), l.ID)
}

func TestNearestToTieBreaksOnLowestID(t *testing.T) {
	tests := []struct {
		name      string
		landmarks []Landmark
		query     float64
		wantID    int64
	}{
		{
			name: "equidistant on both sides, lower id below",
			landmarks: []Landmark{
				{ID: 4, Name: "near", DistanceLY: 20},
				{ID: 9, Name: "far", DistanceLY: 30},
			},
			query:  25,
			wantID: 4,
		},
		{
			name: "equidistant on both sides, lower id above",
			landmarks: []Landmark{
				{ID: 9, Name: "near", DistanceLY: 20},
				{ID: 4, Name: "far", DistanceLY: 30},
			},
			query:  25,
			wantID: 4,
		},
		{
			name: "same distance below the query",
			landmarks: []Landmark{
				{ID: 11, Name: "Vega", DistanceLY: 25},
				{ID: 10, Name: "Fomalhaut", DistanceLY: 25},
				{ID: 1, Name: "Arcturus", DistanceLY: 36.7},
			},
			query:  26,
			wantID: 10,
		},
		{
			name: "same distance above the query",
			landmarks: []Landmark{
				{ID: 11, Name: "Vega", DistanceLY: 25},
				{ID: 10, Name: "Fomalhaut", DistanceLY: 25},
				{ID: 1, Name: "Sirius", DistanceLY: 8.6},
			},
			query:  24,
			wantID: 10,
		},
		{
			name: "all four equidistant",
			landmarks: []Landmark{
				{ID: 8, Name: "a", DistanceLY: 20},
				{ID: 7, Name: "b", DistanceLY: 20},
				{ID: 6, Name: "c", DistanceLY: 30},
				{ID: 5, Name: "d", DistanceLY: 30},
			},
			query:  25,
			wantID: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, tt.landmarks)
			for i := 0; i < 5; i++ {
				l, ok := c.NearestTo(tt.query)
				require.True(t, ok)
				assert.Equal(t, tt.wantID, l.ID)
			}
		})
	}
}

func TestNearestToRoundedDifferenceTie(t *testing.T) {
	// 1-5.551115123125783e-17 rounds to exactly 1.0, the same difference as 1-0.
	c := mustNew(t, []Landmark{
		{ID: 2, Name: "just above zero", DistanceLY: 5.551115123125783e-17},
		{ID: 1, Name: "origin", DistanceLY: 0},
	})

	l, ok := c.NearestTo(1)
	require.True(t, ok)
	assert.Equal(t, int64(1), l.ID)
}

func TestNearestToRoundedTieAcrossRuns(t *testing.T) {
	c := mustNew(t, []Landmark{
		{ID: 30, Name: "a", DistanceLY: 5.551115123125783e-17},
		{ID: 7, Name: "b", DistanceLY: 5.551115123125783e-17},
		{ID: 1, Name: "c", DistanceLY: 0},
		{ID: 12, Name: "d", DistanceLY: 2},
	})

	l, ok := c.NearestTo(1)
	require.True(t, ok)
	assert.Equal(t, int64(1), l.ID)
}

func TestNearestToEmptyCatalog(t *testing.T) {
	c := mustNew(t, nil)

	l, ok := c.NearestTo(4.24)
	assert.False(t, ok)
	assert.Equal(t, Landmark{}, l)
	assert.Equal(t, 0, c.Len())
}

func TestNearestToOutsideRange(t *testing.T) {
	c := mustNew(t, DefaultLandmarks)

	l, ok := c.NearestTo(0)
	require.True(t, ok)
	assert.Equal(t, "Proxima Centauri", l.Name)

	l, ok = c.NearestTo(1e12)
	require.True(t, ok)
	assert.Equal(t, "Virgo Cluster", l.Name)
}

func TestNearestToSeedTies(t *testing.T) {
	c := mustNew(t, DefaultLandmarks)

	l, ok := c.NearestTo(25.0)
	require.True(t, ok)
	assert.Equal(t, "Fomalhaut", l.Name)
}

// linearNearest is the reference scan NearestTo must agree with.
func linearNearest(landmarks []Landmark, q float64) (Landmark, bool) {
	var best Landmark
	found := false
	bestDiff := math.Inf(1)
	for _, l := range landmarks {
		d := math.Abs(l.DistanceLY - q)
		if !found || d < bestDiff || (d == bestDiff && l.ID < best.ID) {
			best, bestDiff, found = l, d, true
		}
	}
	return best, found
}

func TestNearestToMatchesLinearScan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = int64(i + 1)
		}
		ids = rapid.Permutation(ids).Draw(t, "ids")

		// A small pool of distances forces frequent ties.
		distance := rapid.OneOf(
			rapid.SampledFrom([]float64{0, 4.24, 8.6, 20, 25, 30, 1000}),
			rapid.Float64Range(0, 2000),
		)

		landmarks := make([]Landmark, n)
		for i := range landmarks {
			landmarks[i] = Landmark{ID: ids[i], Name: "obj", DistanceLY: distance.Draw(t, "distance")}
		}
		q := rapid.OneOf(
			rapid.SampledFrom([]float64{0, 12.5, 25, 27.5, 500}),
			rapid.Float64Range(0, 3000),
		).Draw(t, "query")

		c, err := New(landmarks)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		got, gotOK := c.NearestTo(q)
		want, wantOK := linearNearest(landmarks, q)
		if gotOK != wantOK || got != want {
			t.Fatalf("NearestTo(%v) = %+v, %v; linear scan = %+v, %v", q, got, gotOK, want, wantOK)
		}
	})
}

func TestNearestToConcurrentReaders(t *testing.T) {
	c := mustNew(t, DefaultLandmarks)

	queries := []float64{0, 4.24, 25, 26, 640, 2615, 1e5, 53.8e6, 1e12}
	want := make([]Landmark, len(queries))
	for i, q := range queries {
		want[i], _ = linearNearest(DefaultLandmarks, q)
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				i := n % len(queries)
				got, ok := c.NearestTo(queries[i])
				if !assert.True(t, ok) || !assert.Equal(t, want[i], got) {
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewRejectsInvalidLandmarks(t *testing.T) {
	tests := []struct {
		name      string
		landmarks []Landmark
	}{
		{"empty name", []Landmark{{ID: 1, Name: "", DistanceLY: 1}}},
		{"negative distance", []Landmark{{ID: 1, Name: "x", DistanceLY: -0.5}}},
		{"NaN distance", []Landmark{{ID: 1, Name: "x", DistanceLY: math.NaN()}}},
		{"infinite distance", []Landmark{{ID: 1, Name: "x", DistanceLY: math.Inf(1)}}},
		{"duplicate id", []Landmark{{ID: 1, Name: "x", DistanceLY: 1}, {ID: 1, Name: "y", DistanceLY: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.landmarks)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLandmark)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	in := []Landmark{{ID: 1, Name: "Sirius", DistanceLY: 8.6}}
	c := mustNew(t, in)

	in[0].Name = "mutated"
	l, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Sirius", l.Name)

	entries := c.Entries()
	entries[0].Name = "mutated"
	l, err = c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Sirius", l.Name)
}

func TestEntriesOrderedByID(t *testing.T) {
	c := mustNew(t, DefaultLandmarks)

	entries := c.Entries()
	require.Len(t, entries, len(DefaultLandmarks))
	for i, l := range entries {
		assert.Equal(t, int64(i+1), l.ID)
	}
}

func TestGet(t *testing.T) {
	c := mustNew(t, DefaultLandmarks)

	l, err := c.Get(24)
	require.NoError(t, err)
	assert.Equal(t, "Betelgeuse", l.Name)

	_, err = c.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Insert(ctx, DefaultLandmarks))

	c, err := Load(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultLandmarks), c.Len())
}

func TestLoadSourceFailureIsCatalogUnavailable(t *testing.T) {
	boom := errors.New("disk on fire")

	c, err := Load(context.Background(), failingSource{err: boom})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.ErrorIs(t, err, boom)
}

func TestLoadEmptySourceIsNotAnError(t *testing.T) {
	c, err := Load(context.Background(), NewMemoryStore())
	require.NoError(t, err)

	_, ok := c.NearestTo(1)
	assert.False(t, ok)
}
