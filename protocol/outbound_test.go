package protocol

import (
	"testing"

	"github.com/lab1702/waypointwars/world"
)

type fakeSender struct{}

func (fakeSender) Send([]byte) error { return nil }

func TestSnapshotRoundTrip(t *testing.T) {
	owner := world.PlayerId(1)
	w := world.NewWorld(map[world.EntityId]*world.Waypoint{
		1: world.NewWaypoint(1, world.Planet, world.Position{X: 10, Y: 20}),
	})
	w.Waypoints[1].SetOwner(&owner)
	w.Players[1] = world.NewPlayer(1, "Player #1", fakeSender{})
	w.Squads[2] = world.NewSquad(2, owner, world.Position{X: 1, Y: 2}, 4.2, world.OnOrbitState(1))

	shared := BuildShared(w)
	raw, err := ForPlayer(shared, 1, 12.5)
	if err != nil {
		t.Fatalf("ForPlayer: %v", err)
	}

	snapshot, err := ParseSnapshot(raw)
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}

	if snapshot.Id != 1 || snapshot.Gold != 12.5 {
		t.Fatalf("unexpected recipient fields: %+v", snapshot)
	}
	if len(snapshot.Waypoints) != 1 || snapshot.Waypoints[0].Owner == nil || *snapshot.Waypoints[0].Owner != 1 {
		t.Fatalf("unexpected waypoints: %+v", snapshot.Waypoints)
	}
	if snapshot.Waypoints[0].Type != "planet" {
		t.Fatalf("expected type planet, got %s", snapshot.Waypoints[0].Type)
	}
	if len(snapshot.Squads) != 1 || snapshot.Squads[0].Count != 5 {
		t.Fatalf("expected squad count ceil(4.2)=5, got %+v", snapshot.Squads)
	}

	// Re-encode the parsed snapshot: identity.
	reparsed := Shared{Waypoints: snapshot.Waypoints, Players: snapshot.Players, Squads: snapshot.Squads}
	raw2, err := ForPlayer(reparsed, snapshot.Id, snapshot.Gold)
	if err != nil {
		t.Fatalf("ForPlayer second pass: %v", err)
	}
	if string(raw) != string(raw2) {
		t.Fatalf("expected identical re-encoding, got:\n%s\nvs\n%s", raw, raw2)
	}
}

func TestSnapshotNullOwner(t *testing.T) {
	w := world.NewWorld(map[world.EntityId]*world.Waypoint{
		1: world.NewWaypoint(1, world.Asteroid, world.Position{}),
	})
	shared := BuildShared(w)
	raw, err := ForPlayer(shared, 0, 0)
	if err != nil {
		t.Fatalf("ForPlayer: %v", err)
	}
	snapshot, err := ParseSnapshot(raw)
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if snapshot.Waypoints[0].Owner != nil {
		t.Fatalf("expected nil owner, got %v", *snapshot.Waypoints[0].Owner)
	}
}
