package match

import (
	"math"

	"github.com/lab1702/waypointwars/world"
)

// Distances and speed governing movement, orbit capture, merge and combat.
const (
	squadSpeed     = 50.0 // world units per second
	orbitEnterDist = 10.0 // distance within which an arriving squad binds to a waypoint
	mergeDist      = 5.0
	combatDist     = 10.0
)

// StepPlayers updates gold income and win/lose state for every player
// (step 4). Income is the sole source of gold: cbrt(owned planetoids) * dt.
// A player who owns zero planets Looses; a player who owns every planet
// Wins. Both transitions go through Player's monotone setters, so a player
// already Win/Loose is unaffected.
func StepPlayers(w *world.World, dt float64) {
	totalPlanets := w.TotalPlanets()
	for _, id := range w.SortedPlayerIds() {
		p := w.Players[id]
		planets, planetoids := w.OwnedCounts(id)

		if planets == 0 {
			p.SetLoose()
		}
		if totalPlanets > 0 && planets == totalPlanets {
			p.SetWin()
		}

		p.Gold += math.Cbrt(float64(planetoids)) * dt
	}
}

// StepMovement advances every Moving squad toward its destination (step
// 5). A squad that reaches its destination within this tick's step binds
// to a waypoint within orbitEnterDist, or else goes InSpace.
func StepMovement(w *world.World, dt float64) {
	step := squadSpeed * dt
	for _, id := range w.SortedSquadIds() {
		s := w.Squads[id]
		if s.State.Kind != world.Moving {
			continue
		}

		delta := s.State.Destination.Sub(s.Position)
		dist := delta.Len()

		if dist <= step {
			s.Position = s.State.Destination
			if wp := waypointNear(w, s.Position, orbitEnterDist); wp != nil {
				s.State = world.OnOrbitState(wp.Id)
			} else {
				s.State = world.InSpaceState()
			}
			continue
		}

		s.Position.X += step * delta.X / dist
		s.Position.Y += step * delta.Y / dist
	}
}

func waypointNear(w *world.World, pos world.Position, maxDist float64) *world.Waypoint {
	for _, id := range w.SortedWaypointIds() {
		wp := w.Waypoints[id]
		if world.Distance(wp.Position, pos) < maxDist {
			return wp
		}
	}
	return nil
}

// StepCapture updates ownership of every Planet/Planetoid from the squads
// currently orbiting it (step 6). A contested orbit — more than one owner
// present — leaves ownership unchanged.
func StepCapture(w *world.World) {
	for _, id := range w.SortedWaypointIds() {
		wp := w.Waypoints[id]
		if !wp.Kind.Ownable() {
			continue
		}

		orbiting := w.SquadsOnOrbit(id)
		if len(orbiting) == 0 {
			continue
		}

		owner := orbiting[0].Owner
		contested := false
		for _, s := range orbiting[1:] {
			if s.Owner != owner {
				contested = true
				break
			}
		}
		if !contested {
			o := owner
			wp.SetOwner(&o)
		}
	}
}

// StepMerge consumes stationary same-owner squads within mergeDist of each
// other (step 7). Iteration is in ascending id order and a squad already
// consumed this step is skipped, which makes the tie-break deterministic.
func StepMerge(w *world.World) {
	ids := w.SortedSquadIds()
	consumed := make(map[world.EntityId]bool, len(ids))

	for _, id := range ids {
		if consumed[id] {
			continue
		}
		s := w.Squads[id]
		if !s.State.Standing() {
			continue
		}

		for _, otherId := range ids {
			if otherId == id || consumed[otherId] {
				continue
			}
			other := w.Squads[otherId]
			if !other.State.Standing() || other.Owner != s.Owner {
				continue
			}
			if world.Distance(s.Position, other.Position) > mergeDist {
				continue
			}
			s.Life += other.Life
			consumed[otherId] = true
		}
	}

	for id := range consumed {
		w.RemoveSquad(id)
	}
}

// StepCombat resolves damage between stationary squads of different
// owners within combatDist (step 8). Life values and target sets are
// snapshotted before any damage is applied so that the result is
// commutative within the tick regardless of iteration order.
func StepCombat(w *world.World, dt float64) {
	var standing []*world.Squad
	for _, id := range w.SortedSquadIds() {
		s := w.Squads[id]
		if s.State.Standing() {
			standing = append(standing, s)
		}
	}

	lifeSnapshot := make(map[world.EntityId]float64, len(standing))
	for _, s := range standing {
		lifeSnapshot[s.Id] = s.Life
	}

	targetsOf := make(map[world.EntityId][]*world.Squad, len(standing))
	for _, a := range standing {
		var targets []*world.Squad
		for _, b := range standing {
			if b.Owner == a.Owner {
				continue
			}
			if world.Distance(a.Position, b.Position) < combatDist {
				targets = append(targets, b)
			}
		}
		targetsOf[a.Id] = targets
	}

	damage := make(map[world.EntityId]float64, len(standing))
	for _, a := range standing {
		targets := targetsOf[a.Id]
		if len(targets) == 0 {
			continue
		}
		perTarget := math.Ceil(lifeSnapshot[a.Id]) / float64(len(targets))
		for _, t := range targets {
			damage[t.Id] += perTarget
		}
	}

	for id, total := range damage {
		t := w.Squads[id]
		capped := math.Ceil(lifeSnapshot[id])
		if total > capped {
			total = capped
		}
		t.Life -= total * dt
	}

	for _, s := range standing {
		if s.Dead() {
			w.RemoveSquad(s.Id)
		}
	}
}
