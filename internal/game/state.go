package game

// Phase is the session's coarse lifecycle state.
type Phase int

const (
	PhasePlaying         Phase = iota // Spawning, motion and collisions active
	PhaseEnding                       // Lives ran out, world torn down
	PhaseShowingGameOver              // "Game Over" on screen
	PhaseReturning                    // Control handed back to the menu; terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseEnding:
		return "ending"
	case PhaseShowingGameOver:
		return "showing-game-over"
	case PhaseReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// SessionState is the mutable state shared by the session's components.
// Only code running on the session's loop touches it.
type SessionState struct {
	Lives        int
	MaxLives     int
	SpawnDelayMs int
	Phase        Phase
}

// Playing reports whether gameplay systems may act.
func (s *SessionState) Playing() bool {
	return s.Phase == PhasePlaying
}
