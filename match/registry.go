package match

import (
	"fmt"

	"github.com/lab1702/waypointwars/transport"
	"github.com/lab1702/waypointwars/world"
)

// Registry maps transport connections to players. It is only ever
// touched from the simulation goroutine while draining events, so — like
// World — it needs no lock.
type Registry struct {
	conns            map[world.PlayerId]transport.Conn
	nextPlayerNumber int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[world.PlayerId]transport.Conn)}
}

// Open registers a new connection and inserts a Player into w, naming it
// "Player #<n>" for a per-registry connection counter and granting it the
// first unowned Planet as a starting base if one exists. Once the match is Finished no new players are
// accepted; the connection is left unregistered and will simply
// never receive a snapshot.
func (r *Registry) Open(w *world.World, conn transport.Conn) {
	if w.MatchState == world.Finished {
		return
	}

	r.conns[conn.Token()] = conn
	r.nextPlayerNumber++
	name := fmt.Sprintf("Player #%d", r.nextPlayerNumber)

	player := world.NewPlayer(conn.Token(), name, conn)
	w.Players[conn.Token()] = player

	if base := w.FirstUnownedPlanet(); base != nil {
		owner := player.Id
		base.SetOwner(&owner)
	}
}

// Close drops a connection. While the match is Waiting the player record
// itself is removed; once Playing it is retained so the match can proceed
// without that seat. The retained record is inert because the transport
// emits no further Message events for a token after its Close.
func (r *Registry) Close(w *world.World, token world.PlayerId) {
	delete(r.conns, token)
	if w.MatchState == world.Waiting {
		delete(w.Players, token)
	}
}

// Connected reports whether token currently has a live connection.
func (r *Registry) Connected(token world.PlayerId) bool {
	_, ok := r.conns[token]
	return ok
}
