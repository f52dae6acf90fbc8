package systems

import (
	"image"

	"github.com/carlos2058/ganho/archetypes"
	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// Cursor position from the previous poll. The pointer only follows the
// cursor once it moves, so a round started without touching the mouse aims
// at the arena centre.
var (
	lastCursor      image.Point
	lastCursorKnown bool
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateActions and Step in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	x, y := ebiten.CursorPosition()
	cursor := image.Pt(x, y)
	if lastCursorKnown && cursor != lastCursor {
		GetSession(ecs).Pointer = math2.Vec2{X: float64(x), Y: float64(y)}
	}
	lastCursor, lastCursorKnown = cursor, true
}

// UpdateActions turns this frame's input into session state: held movement
// actions become the direction set, and trigger actions fire once per press.
func UpdateActions(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	session := GetSession(ecs)

	session.Keys = heldDirections(input)

	if input.JustPressed(cfg.ActionStart) {
		StartGame(ecs)
	}
	if input.JustPressed(cfg.ActionReload) {
		Reload(ecs)
	}
	if input.JustPressed(cfg.ActionFire) {
		Fire(ecs)
	}
}

func heldDirections(input *components.InputData) components.Direction {
	var d components.Direction
	if input.Pressed(cfg.ActionMoveUp) {
		d |= components.DirUp
	}
	if input.Pressed(cfg.ActionMoveDown) {
		d |= components.DirDown
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		d |= components.DirLeft
	}
	if input.Pressed(cfg.ActionMoveRight) {
		d |= components.DirRight
	}
	return d
}

// getOrCreateInput returns the singleton Input component, creating if needed.
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		archetypes.Input.Spawn(ecs)
	}

	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}
