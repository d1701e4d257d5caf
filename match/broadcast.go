package match

import (
	"log"

	"github.com/lab1702/waypointwars/protocol"
	"github.com/lab1702/waypointwars/world"
)

// Broadcast formats and sends one snapshot per connected player.
// Waypoints/Players/Squads are built once and shared; only Id/Gold differ
// per recipient. A formatting or send failure for one player is logged and
// skipped — it never halts the loop for the rest of the match.
func Broadcast(w *world.World, registry *Registry) {
	shared := protocol.BuildShared(w)

	for _, id := range w.SortedPlayerIds() {
		p := w.Players[id]
		if !registry.Connected(id) {
			continue
		}

		payload, err := protocol.ForPlayer(shared, id, p.Gold)
		if err != nil {
			log.Printf("format snapshot for player %d: %v", id, err)
			continue
		}

		if err := p.Sender.Send(payload); err != nil {
			log.Printf("[info] send snapshot to player %d: %v", id, err)
		}
	}
}
