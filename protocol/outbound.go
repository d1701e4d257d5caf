package protocol

import (
	"encoding/json"
	"math"

	"github.com/lab1702/waypointwars/world"
)

// WaypointDTO is the wire form of a Waypoint.
type WaypointDTO struct {
	Id    world.EntityId  `json:"id"`
	X     float64         `json:"x"`
	Y     float64         `json:"y"`
	Owner *world.PlayerId `json:"owner"`
	Type  string          `json:"type"`
}

// PlayerDTO is the wire form of a Player, as seen by every recipient (no
// per-recipient fields live here — those are Snapshot.Id/Gold).
type PlayerDTO struct {
	Id    world.PlayerId `json:"id"`
	Name  string         `json:"name"`
	State string         `json:"state"`
}

// SquadDTO is the wire form of a Squad. Count is ceil(life).
type SquadDTO struct {
	Id    world.EntityId `json:"id"`
	Owner world.PlayerId `json:"owner"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Count int64          `json:"count"`
}

// Snapshot is the full per-tick-per-player message. Waypoints,
// Players and Squads are identical for every recipient in a tick; Id and
// Gold are the only per-recipient fields.
type Snapshot struct {
	Waypoints []WaypointDTO  `json:"waypoints"`
	Players   []PlayerDTO    `json:"players"`
	Squads    []SquadDTO     `json:"squads"`
	Id        world.PlayerId `json:"id"`
	Gold      float64        `json:"gold"`
}

// Shared holds the parts of a snapshot that are the same for every
// recipient in a tick, built once per tick by BuildShared and then cheaply
// wrapped per player by ForPlayer.
type Shared struct {
	Waypoints []WaypointDTO
	Players   []PlayerDTO
	Squads    []SquadDTO
}

func waypointKindName(k world.WaypointKind) string {
	return k.String()
}

// BuildShared formats the waypoints/players/squads common to every
// recipient this tick, iterating in sorted-id order for reproducible
// output.
func BuildShared(w *world.World) Shared {
	waypointIds := w.SortedWaypointIds()
	waypoints := make([]WaypointDTO, 0, len(waypointIds))
	for _, id := range waypointIds {
		wp := w.Waypoints[id]
		waypoints = append(waypoints, WaypointDTO{
			Id:    wp.Id,
			X:     wp.Position.X,
			Y:     wp.Position.Y,
			Owner: wp.Owner,
			Type:  waypointKindName(wp.Kind),
		})
	}

	playerIds := w.SortedPlayerIds()
	players := make([]PlayerDTO, 0, len(playerIds))
	for _, id := range playerIds {
		p := w.Players[id]
		players = append(players, PlayerDTO{Id: p.Id, Name: p.Name, State: p.State.String()})
	}

	squadIds := w.SortedSquadIds()
	squads := make([]SquadDTO, 0, len(squadIds))
	for _, id := range squadIds {
		s := w.Squads[id]
		squads = append(squads, SquadDTO{
			Id:    s.Id,
			Owner: s.Owner,
			X:     s.Position.X,
			Y:     s.Position.Y,
			Count: int64(math.Ceil(s.Life)),
		})
	}

	return Shared{Waypoints: waypoints, Players: players, Squads: squads}
}

// ForPlayer wraps shared with the fields specific to one recipient and
// marshals the result.
func ForPlayer(shared Shared, id world.PlayerId, gold float64) ([]byte, error) {
	snapshot := Snapshot{
		Waypoints: shared.Waypoints,
		Players:   shared.Players,
		Squads:    shared.Squads,
		Id:        id,
		Gold:      gold,
	}
	return json.Marshal(snapshot)
}

// ParseSnapshot decodes a snapshot wire payload. It exists for the
// parse-format-parse round-trip property and for client-side test doubles;
// the server itself never parses its own output.
func ParseSnapshot(raw []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return Snapshot{}, parseError(err)
	}
	return snapshot, nil
}
