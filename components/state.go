package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Direction is a set of held movement directions.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// Has reports whether every bit of d2 is set in d.
func (d Direction) Has(d2 Direction) bool {
	return d&d2 == d2
}

// SessionData is the lifecycle state of the current round (singleton component).
// Running and Over are never both true; Win is only meaningful once Over is set.
type SessionData struct {
	Running bool
	Over    bool
	Win     bool
	Tick    int

	Keys    Direction // held directions, consumed by player movement
	Pointer math.Vec2 // last known cursor position in arena space
}

// Idle reports whether no round has been played yet.
func (s *SessionData) Idle() bool {
	return !s.Running && !s.Over
}

var Session = donburi.NewComponentType[SessionData]()
