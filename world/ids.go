package world

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// EntityId identifies a waypoint or squad. It is opaque, random, and never
// reused while the entity it names is still present in the world.
type EntityId uint64

// PlayerId is the transport-assigned connection token for a session.
type PlayerId int

// maxIdAttempts bounds the retry loop on id collision. A collision among
// 64-bit random values is astronomically unlikely; repeated collisions
// indicate a broken entropy source rather than bad luck.
const maxIdAttempts = 8

// NewEntityId draws a uniformly random, non-zero EntityId that does not
// already appear in taken. It returns an error only if maxIdAttempts
// consecutive draws all collide; callers treat that as fatal.
func NewEntityId(taken map[EntityId]struct{}) (EntityId, error) {
	var buf [8]byte
	for attempt := 0; attempt < maxIdAttempts; attempt++ {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("read entropy for entity id: %w", err)
		}
		id := EntityId(binary.BigEndian.Uint64(buf[:]))
		if id == 0 {
			continue
		}
		if _, exists := taken[id]; !exists {
			return id, nil
		}
	}
	return 0, fmt.Errorf("entity id allocation failed after %d attempts", maxIdAttempts)
}
