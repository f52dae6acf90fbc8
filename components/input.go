package components

import (
	cfg "github.com/carlos2058/ganho/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

// Pressed reports whether the action is held this frame.
func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
