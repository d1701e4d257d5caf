package world

// WaypointKind is the immutable kind of a waypoint.
type WaypointKind int

const (
	Planet WaypointKind = iota
	Planetoid
	Asteroid
	BlackHole
)

// String renders the wire-facing name for a waypoint kind, used by the
// outbound snapshot formatter.
func (k WaypointKind) String() string {
	switch k {
	case Planet:
		return "planet"
	case Planetoid:
		return "planetoid"
	case Asteroid:
		return "asteroid"
	case BlackHole:
		return "black_hole"
	default:
		return "unknown"
	}
}

// Ownable reports whether the kind may ever carry a non-nil owner.
func (k WaypointKind) Ownable() bool {
	return k == Planet || k == Planetoid
}

// Waypoint is a fixed point of interest on the map. Id, Kind and Position
// are set once at world generation and never change; Owner is the only
// mutable field, and only Planet/Planetoid waypoints may ever hold one.
type Waypoint struct {
	Id       EntityId
	Kind     WaypointKind
	Position Position
	Owner    *PlayerId
}

// NewWaypoint constructs a Waypoint with no owner.
func NewWaypoint(id EntityId, kind WaypointKind, pos Position) *Waypoint {
	return &Waypoint{Id: id, Kind: kind, Position: pos}
}

// SetOwner assigns owner, or clears it when owner is nil. Callers must not
// assign a non-nil owner to an Asteroid or BlackHole; World enforces this
// at the call sites that mutate ownership (capture, starting-base grant).
func (w *Waypoint) SetOwner(owner *PlayerId) {
	w.Owner = owner
}

// OwnedBy reports whether the waypoint is currently owned by player.
func (w *Waypoint) OwnedBy(player PlayerId) bool {
	return w.Owner != nil && *w.Owner == player
}
