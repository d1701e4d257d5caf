// Package transport defines the interface the simulation core consumes and
// produces: an inbound event stream and a per-connection
// send handle. The transport's own handshake/framing implementation is an
// external collaborator out of scope for the core — Listener in
// websocket.go is the one concrete adapter this repository ships, wired
// from main rather than imported by the match package.
package transport

import "github.com/lab1702/waypointwars/world"

// EventKind tags which field of Event is populated.
type EventKind int

const (
	Open EventKind = iota
	Message
	Close
)

// Event is one item on the connection registry's MPSC queue.
// Conn is set on Open; Payload is set on Message. The match's simulation
// goroutine is the sole consumer of this channel.
type Event struct {
	Kind    EventKind
	Token   world.PlayerId
	Conn    Conn
	Payload []byte
}

// Conn is the thread-safe outbound handle a transport hands the core for a
// connected player, plus the stable per-session token the transport
// assigned it. It satisfies world.Sender.
type Conn interface {
	world.Sender
	Token() world.PlayerId
}
