package match

import (
	"context"
	"log"
	"time"

	"github.com/lab1702/waypointwars/protocol"
	"github.com/lab1702/waypointwars/transport"
	"github.com/lab1702/waypointwars/world"
)

// eventBuffer bounds the MPSC queue between transport goroutines and the
// simulation goroutine. A full queue means the simulation is falling
// behind; events block on send rather than being dropped, since Open/Close
// must never be lost (only outbound Send is best-effort, see wsConn.Send).
const eventBuffer = 1024

// Config parameterizes one Match.
type Config struct {
	Seed         uint64
	TickInterval time.Duration
}

// Match owns the one World for a single game and runs its tick loop. It is
// the sole writer and sole reader of World and Registry; everything else
// communicates with it only through the Events channel.
type Match struct {
	world    *world.World
	registry *Registry
	events   chan transport.Event
	tick     time.Duration
}

// NewMatch generates a world from cfg.Seed and returns a Match ready to
// Run. Seed governs only the waypoint layout — entity ids are
// always drawn from OS entropy regardless of seed.
func NewMatch(cfg Config) (*Match, error) {
	w, err := world.Generate(cfg.Seed)
	if err != nil {
		return nil, err
	}

	return &Match{
		world:    w,
		registry: NewRegistry(),
		events:   make(chan transport.Event, eventBuffer),
		tick:     cfg.TickInterval,
	}, nil
}

// Events returns the channel a transport.Listener should be constructed
// with (transport.NewListener(match.Events())).
func (m *Match) Events() chan<- transport.Event {
	return m.events
}

// Run drives the fixed-cadence simulation loop until ctx is cancelled.
// Each tick drains pending events, advances the match lifecycle, steps the
// simulation when Playing, and broadcasts a snapshot to every connected
// player — in that order, every tick, regardless of match state.
func (m *Match) Run(ctx context.Context) {
	ticker := time.NewTicker(m.tick)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now

			m.step(elapsed.Seconds())

			if took := time.Since(now); took > m.tick {
				log.Printf("[warn] tick scheduling drift: took %v, budget %v", took, m.tick)
			}
		}
	}
}

func (m *Match) step(dt float64) {
	m.drainEvents()

	AdvanceLifecycle(m.world)

	if m.world.MatchState == world.Playing {
		StepPlayers(m.world, dt)
		StepMovement(m.world, dt)
		StepCapture(m.world)
		StepMerge(m.world)
		StepCombat(m.world, dt)
	}

	Broadcast(m.world, m.registry)
}

func (m *Match) drainEvents() {
	for {
		select {
		case ev := <-m.events:
			m.handleEvent(ev)
		default:
			return
		}
	}
}

func (m *Match) handleEvent(ev transport.Event) {
	switch ev.Kind {
	case transport.Open:
		m.registry.Open(m.world, ev.Conn)
	case transport.Close:
		m.registry.Close(m.world, ev.Token)
	case transport.Message:
		m.handleMessage(ev.Token, ev.Payload)
	}
}

// handleMessage decodes and applies one inbound message. A Finished match
// processes no further commands; a decode failure is logged and the
// message dropped, leaving the connection open.
func (m *Match) handleMessage(token world.PlayerId, payload []byte) {
	if m.world.MatchState == world.Finished {
		return
	}

	cmd, err := protocol.Decode(payload)
	if err != nil {
		log.Printf("[debug] dropping message from player %d: %v", token, err)
		return
	}

	Apply(m.world, token, cmd)
}
