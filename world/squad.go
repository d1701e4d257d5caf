package world

// SquadStateKind tags the variant held by a Squad's State.
type SquadStateKind int

const (
	InSpace SquadStateKind = iota
	Moving
	OnOrbit
)

// SquadState is a tagged sum: InSpace carries nothing, Moving carries a
// destination, OnOrbit carries the id of the waypoint the squad is bound
// to. The Kind field determines which of Destination/Waypoint is valid.
type SquadState struct {
	Kind        SquadStateKind
	Destination Position
	Waypoint    EntityId
}

// InSpaceState returns the InSpace variant.
func InSpaceState() SquadState {
	return SquadState{Kind: InSpace}
}

// MovingState returns the Moving variant toward destination.
func MovingState(destination Position) SquadState {
	return SquadState{Kind: Moving, Destination: destination}
}

// OnOrbitState returns the OnOrbit variant bound to waypoint.
func OnOrbitState(waypoint EntityId) SquadState {
	return SquadState{Kind: OnOrbit, Waypoint: waypoint}
}

// Standing reports whether the state is stationary (InSpace or OnOrbit),
// the set of states eligible for merge and combat in the simulation step.
func (s SquadState) Standing() bool {
	return s.Kind == InSpace || s.Kind == OnOrbit
}

// Squad is a movable unit bundle owned by exactly one player. Id and Owner
// never change after creation; Position, Life and State mutate during the
// tick. A squad with Life <= 0 is removed the same tick it reaches that
// threshold.
type Squad struct {
	Id       EntityId
	Owner    PlayerId
	Position Position
	Life     float64
	State    SquadState
}

// NewSquad constructs a squad with the given position, life and initial
// state (OnOrbit for a spawn, Moving for a split).
func NewSquad(id EntityId, owner PlayerId, pos Position, life float64, state SquadState) *Squad {
	return &Squad{Id: id, Owner: owner, Position: pos, Life: life, State: state}
}

// Dead reports whether the squad's life has dropped to or below zero and it
// should be removed from the world this tick.
func (s *Squad) Dead() bool {
	return s.Life <= 0
}
