package world

import "testing"

func newTestWorld() *World {
	w := NewWorld(map[EntityId]*Waypoint{
		1: NewWaypoint(1, Planet, Position{X: 0, Y: 0}),
		2: NewWaypoint(2, Planet, Position{X: 100, Y: 0}),
		3: NewWaypoint(3, Planetoid, Position{X: 200, Y: 0}),
		4: NewWaypoint(4, Asteroid, Position{X: 300, Y: 0}),
	})
	return w
}

func TestFirstUnownedPlanetPicksLowestId(t *testing.T) {
	w := newTestWorld()
	owner := PlayerId(7)
	w.Waypoints[1].SetOwner(&owner)

	wp := w.FirstUnownedPlanet()
	if wp == nil || wp.Id != 2 {
		t.Fatalf("expected waypoint 2, got %+v", wp)
	}
}

func TestFirstUnownedPlanetNilWhenAllOwned(t *testing.T) {
	w := newTestWorld()
	owner := PlayerId(7)
	w.Waypoints[1].SetOwner(&owner)
	w.Waypoints[2].SetOwner(&owner)

	if wp := w.FirstUnownedPlanet(); wp != nil {
		t.Fatalf("expected nil, got %+v", wp)
	}
}

func TestOwnedCounts(t *testing.T) {
	w := newTestWorld()
	a := PlayerId(1)
	w.Waypoints[1].SetOwner(&a)
	w.Waypoints[3].SetOwner(&a)

	planets, planetoids := w.OwnedCounts(a)
	if planets != 1 || planetoids != 1 {
		t.Fatalf("expected 1 planet/1 planetoid, got %d/%d", planets, planetoids)
	}
}

func TestSquadsOnOrbitOrdersById(t *testing.T) {
	w := newTestWorld()
	owner := PlayerId(1)
	w.Squads[20] = NewSquad(20, owner, Position{}, 10, OnOrbitState(1))
	w.Squads[5] = NewSquad(5, owner, Position{}, 10, OnOrbitState(1))
	w.Squads[30] = NewSquad(30, owner, Position{}, 10, OnOrbitState(2))

	squads := w.SquadsOnOrbit(1)
	if len(squads) != 2 || squads[0].Id != 5 || squads[1].Id != 20 {
		t.Fatalf("expected [5,20], got %+v", squads)
	}
}

func TestTotalPlanets(t *testing.T) {
	w := newTestWorld()
	if got := w.TotalPlanets(); got != 2 {
		t.Fatalf("expected 2 planets, got %d", got)
	}
}
