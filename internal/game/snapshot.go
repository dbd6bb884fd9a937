package game

import "github.com/vovakirdan/roadrush/internal/core"

// EntitySnapshot is a read-only copy of one falling entity.
type EntitySnapshot struct {
	ID       EntityID
	Category Category
	Pos      core.Vec
}

// Snapshot is a read-only copy of the session state, used by hosts for
// status lines and by tests for assertions.
type Snapshot struct {
	Phase        Phase
	Lives        int
	MaxLives     int
	SpawnDelayMs int
	Frames       int
	EndedAtMs    float64 // Frame time at which lives ran out; zero while playing
	Player       core.Vec
	PlayerAlive  bool
	Spawned      int
	Retired      int
	Hits         int
	Entities     []EntitySnapshot
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        s.state.Phase,
		Lives:        s.state.Lives,
		MaxLives:     s.state.MaxLives,
		SpawnDelayMs: s.state.SpawnDelayMs,
		Frames:       s.frames,
		EndedAtMs:    s.endedAt,
		Player:       s.player.Pos,
		PlayerAlive:  s.player.Alive(),
		Spawned:      s.spawner.Spawned(),
		Retired:      s.mover.Retired(),
		Hits:         s.resolver.Hits(),
		Entities:     make([]EntitySnapshot, 0, s.entities.len()),
	}
	for _, e := range s.entities.list() {
		snap.Entities = append(snap.Entities, EntitySnapshot{
			ID:       e.ID,
			Category: e.Category,
			Pos:      e.Pos,
		})
	}
	return snap
}
