package systems

import (
	"fmt"
	"image/color"

	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/fonts"
	"github.com/carlos2058/ganho/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broadphase body when collider debugging is on,
// with the round clock and body count in the bottom-left corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	margin := cfg.Arena.SpaceMargin

	for _, obj := range space.Objects() {
		// Space coordinates are shifted by the margin
		x := obj.X - margin
		y := obj.Y - margin

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvHostileBullet) {
			c = color.RGBA{255, 128, 0, 255} // Orange
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	if fonts.Small.Loaded() {
		info := fmt.Sprintf("tick %d  bodies %d", GetSession(ecs).Tick, len(space.Objects()))
		text.Draw(screen, info, fonts.Small.Get(), 6, screen.Bounds().Dy()-6, cfg.White)
	}
}
