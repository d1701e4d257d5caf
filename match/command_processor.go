package match

import (
	"log"

	"github.com/lab1702/waypointwars/protocol"
	"github.com/lab1702/waypointwars/world"
)

// Costs and stats for spawning a squad.
const (
	squadSpawnCost    = 10.0
	squadSpawnMinGold = 10.0
	squadSpawnLife    = 10.0
)

// Apply validates and applies one decoded command against the world on
// behalf of player. Every validation failure is silent — the
// server is authoritative and untrusted clients must not receive
// confirmations.
func Apply(w *world.World, player world.PlayerId, cmd protocol.Command) {
	switch cmd.Kind {
	case protocol.ReadyCommand:
		applyReady(w, player)
	case protocol.SquadSpawnCommand:
		applySquadSpawn(w, player, cmd.PlanetId)
	case protocol.SquadMoveCommand:
		applySquadMove(w, player, cmd.SquadId, cmd.WaypointId, cmd.CutCount)
	}
}

func applyReady(w *world.World, player world.PlayerId) {
	p, ok := w.Players[player]
	if !ok {
		return
	}
	p.SetReady()
}

func applySquadSpawn(w *world.World, player world.PlayerId, planetId world.EntityId) {
	p, ok := w.Players[player]
	if !ok {
		return
	}
	wp, ok := w.Waypoints[planetId]
	if !ok || wp.Kind != world.Planet {
		return
	}
	if wp.Owner == nil || *wp.Owner != player {
		return
	}
	if p.Gold <= squadSpawnMinGold {
		return
	}

	id, err := w.NewSquadId()
	if err != nil {
		log.Printf("squad spawn for player %d: %v", player, err)
		return
	}

	p.Gold -= squadSpawnCost
	w.Squads[id] = world.NewSquad(id, player, wp.Position, squadSpawnLife, world.OnOrbitState(planetId))
}

func applySquadMove(w *world.World, player world.PlayerId, squadId, waypointId world.EntityId, cutCount *uint64) {
	squad, ok := w.Squads[squadId]
	if !ok || squad.Owner != player {
		return
	}
	wp, ok := w.Waypoints[waypointId]
	if !ok {
		return
	}

	if cutCount != nil {
		applySquadSplit(w, player, squad, wp, *cutCount)
		return
	}

	squad.State = world.MovingState(wp.Position)
}

// applySquadSplit implements the optional cut_count variant:
// detaches cutCount life-points from source into a new squad at source's
// current position, set Moving toward destination. source keeps its
// remaining life and its state is left unchanged. Only applies when
// 0 < cutCount < source.Life.
func applySquadSplit(w *world.World, player world.PlayerId, source *world.Squad, destination *world.Waypoint, cutCount uint64) {
	life := float64(cutCount)
	if life <= 0 || life >= source.Life {
		return
	}

	id, err := w.NewSquadId()
	if err != nil {
		log.Printf("squad split for player %d: %v", player, err)
		return
	}

	source.Life -= life
	w.Squads[id] = world.NewSquad(id, player, source.Position, life, world.MovingState(destination.Position))
}
