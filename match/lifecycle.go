package match

import "github.com/lab1702/waypointwars/world"

// AdvanceLifecycle applies the match-state machine.
//
// Waiting -> Playing fires once at least one player exists and every
// player is Ready; all Ready players are moved to Playing in the same
// step. Playing -> Finished fires the instant any player's state is Win.
// Finished is terminal.
func AdvanceLifecycle(w *world.World) {
	switch w.MatchState {
	case world.Waiting:
		if allReady(w) {
			for _, p := range w.Players {
				p.SetPlaying()
			}
			w.MatchState = world.Playing
		}

	case world.Playing:
		for _, p := range w.Players {
			if p.State == world.Win {
				w.MatchState = world.Finished
				return
			}
		}
	}
}

func allReady(w *world.World) bool {
	if len(w.Players) == 0 {
		return false
	}
	for _, p := range w.Players {
		if p.State != world.Ready {
			return false
		}
	}
	return true
}
