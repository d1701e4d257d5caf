package match

import (
	"testing"

	"github.com/lab1702/waypointwars/world"
)

type fakeConn struct {
	token world.PlayerId
	sent  [][]byte
}

func (c *fakeConn) Token() world.PlayerId { return c.token }
func (c *fakeConn) Send(payload []byte) error {
	c.sent = append(c.sent, payload)
	return nil
}

func TestRegistryOpenGrantsStartingBase(t *testing.T) {
	w := newTestWorld()
	r := NewRegistry()

	r.Open(w, &fakeConn{token: 1})

	p, ok := w.Players[1]
	if !ok {
		t.Fatalf("expected player 1 registered")
	}
	if p.Name != "Player #1" {
		t.Fatalf("expected name 'Player #1', got %q", p.Name)
	}
	if !w.Waypoints[1].OwnedBy(1) {
		t.Fatalf("expected waypoint 1 (lowest-id unowned planet) granted as starting base")
	}
}

func TestRegistryOpenRejectsAfterFinished(t *testing.T) {
	w := newTestWorld()
	w.MatchState = world.Finished
	r := NewRegistry()

	r.Open(w, &fakeConn{token: 1})

	if _, ok := w.Players[1]; ok {
		t.Fatalf("expected no player registered once match is Finished")
	}
	if r.Connected(1) {
		t.Fatalf("expected connection not registered once match is Finished")
	}
}

func TestRegistryCloseRemovesPlayerWhileWaiting(t *testing.T) {
	w := newTestWorld()
	r := NewRegistry()
	r.Open(w, &fakeConn{token: 1})

	r.Close(w, 1)

	if _, ok := w.Players[1]; ok {
		t.Fatalf("expected player removed on close while Waiting")
	}
	if r.Connected(1) {
		t.Fatalf("expected connection removed")
	}
}

func TestRegistryCloseKeepsPlayerOncePlaying(t *testing.T) {
	w := newTestWorld()
	w.MatchState = world.Playing
	r := NewRegistry()
	r.Open(w, &fakeConn{token: 1})

	r.Close(w, 1)

	if _, ok := w.Players[1]; !ok {
		t.Fatalf("expected player retained on close once Playing")
	}
	if r.Connected(1) {
		t.Fatalf("expected connection removed even though player is retained")
	}
}
