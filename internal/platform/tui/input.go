package tui

import (
	"github.com/vovakirdan/roadrush/internal/game"
)

// holdMs is how long a direction stays held after its last key event.
// Terminals only report presses, repeated while a key is held, so a held
// key is a stream of presses and its release is the stream stopping. The
// window covers the usual pause between the first press and auto-repeat.
const holdMs = 260.0

// keyLatch implements game.Input for a terminal.
type keyLatch struct {
	leftUntil  float64
	rightUntil float64
	now        float64

	pointer    float64
	hasPointer bool
}

// press holds dir until holdMs after now and releases the opposite direction.
func (k *keyLatch) press(dir game.Direction, now float64) {
	switch {
	case dir.Left:
		k.leftUntil = now + holdMs
		k.rightUntil = 0
	case dir.Right:
		k.rightUntil = now + holdMs
		k.leftUntil = 0
	}
}

// release drops both directions, used when the game pauses.
func (k *keyLatch) release() {
	k.leftUntil, k.rightUntil = 0, 0
}

// point records the latest pointer position; only the last one per frame counts.
func (k *keyLatch) point(x float64) {
	k.pointer = x
	k.hasPointer = true
}

// setNow sets the frame time used by Directional.
func (k *keyLatch) setNow(now float64) {
	k.now = now
}

func (k *keyLatch) Directional() game.Direction {
	return game.Direction{
		Left:  k.now < k.leftUntil,
		Right: k.now < k.rightUntil,
	}
}

func (k *keyLatch) PointerX() (float64, bool) {
	if !k.hasPointer {
		return 0, false
	}
	k.hasPointer = false
	return k.pointer, true
}
