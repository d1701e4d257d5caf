package match

import (
	"testing"

	"github.com/lab1702/waypointwars/protocol"
)

func TestBroadcastSendsOnlyToConnectedPlayers(t *testing.T) {
	w := newTestWorld()
	addPlayer(w, 1, "a").Gold = 42
	addPlayer(w, 2, "b")

	r := NewRegistry()
	conn := &fakeConn{token: 1}
	r.Open(w, conn) // re-registers player 1 with a fresh name/base; fine for this test
	w.Players[1].Gold = 42

	Broadcast(w, r)

	if len(conn.sent) != 1 {
		t.Fatalf("expected exactly one snapshot sent to the connected player, got %d", len(conn.sent))
	}

	snapshot, err := protocol.ParseSnapshot(conn.sent[0])
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if snapshot.Id != 1 || snapshot.Gold != 42 {
		t.Fatalf("expected snapshot for player 1 with gold 42, got %+v", snapshot)
	}
}

func TestBroadcastSkipsDisconnectedPlayer(t *testing.T) {
	w := newTestWorld()
	sender := &fakeConn{token: 1}
	addPlayer(w, 1, "a").Sender = sender
	r := NewRegistry()

	// Player 1 exists in the world (retained post-disconnect while Playing)
	// but never registered a live connection; Broadcast must not panic or
	// attempt to send on its behalf.
	Broadcast(w, r)

	if len(sender.sent) != 0 {
		t.Fatalf("expected no snapshot sent to a disconnected player, got %d", len(sender.sent))
	}
	if r.Connected(1) {
		t.Fatalf("expected player 1 to have no live connection")
	}
}
