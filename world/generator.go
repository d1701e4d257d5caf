package world

import (
	"fmt"
	"math/rand"
)

// Grid and distribution constants for world generation.
const (
	GridStep     = 100.0
	HalfWidth    = 1000.0
	HalfHeight   = 1000.0
	AsteroidProb = 0.50
	PlanetoidCum = AsteroidProb + 0.30 // cumulative threshold through Planetoid
	PlanetCum    = PlanetoidCum + 0.10 // cumulative threshold through Planet
	// remaining probability mass (to 1.0) is BlackHole
)

// Generate lays out waypoints on a square grid and returns a fresh World.
// Given the same seed it always produces the same layout (positions and
// kinds); entity ids themselves are always drawn from the OS's
// cryptographic entropy source regardless of seed — seeded mode exists for
// reproducing layouts in tests, not for reproducing ids.
//
// The interior grid's x and y coordinate sequences are built and shuffled
// independently, then zipped index-for-index, rather than forming the full
// cross product of the grid.
func Generate(seed uint64) (*World, error) {
	rng := rand.New(rand.NewSource(int64(seed)))

	step := int(GridStep)
	gridXStart, gridXEnd := int(-HalfWidth+GridStep), int(HalfWidth-GridStep)
	gridYStart, gridYEnd := int(-HalfHeight+GridStep), int(HalfHeight-GridStep)

	xs := gridCoordinates(gridXStart, gridXEnd, step)
	ys := gridCoordinates(gridYStart, gridYEnd, step)
	rng.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	rng.Shuffle(len(ys), func(i, j int) { ys[i], ys[j] = ys[j], ys[i] })

	shortSide := HalfWidth
	if HalfHeight < shortSide {
		shortSide = HalfHeight
	}
	n := int((shortSide - GridStep) * 2 / GridStep)
	if n > len(xs) {
		n = len(xs)
	}
	if n > len(ys) {
		n = len(ys)
	}

	waypoints := make(map[EntityId]*Waypoint, n)
	taken := make(map[EntityId]struct{}, n)

	for i := 0; i < n; i++ {
		id, err := NewEntityId(taken)
		if err != nil {
			return nil, fmt.Errorf("generate waypoint %d: %w", i, err)
		}
		taken[id] = struct{}{}

		pos := Position{X: xs[i], Y: ys[i]}
		kind := drawKind(rng.Float64())
		waypoints[id] = NewWaypoint(id, kind, pos)
	}

	return NewWorld(waypoints), nil
}

// gridCoordinates returns step*x for x in [start/step, end/step).
func gridCoordinates(start, end, step int) []float64 {
	var coords []float64
	for x := start / step; x < end/step; x++ {
		coords = append(coords, float64(x*step))
	}
	return coords
}

// drawKind maps a uniform [0,1) draw to a waypoint kind by the discrete
// distribution Asteroid 50% / Planetoid 30% / Planet 10% / BlackHole 10%.
func drawKind(u float64) WaypointKind {
	switch {
	case u < AsteroidProb:
		return Asteroid
	case u < PlanetoidCum:
		return Planetoid
	case u < PlanetCum:
		return Planet
	default:
		return BlackHole
	}
}
