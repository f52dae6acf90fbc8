package systems

import (
	"image/color"

	"github.com/carlos2058/ganho/archetypes"
	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// bannerFor picks the overlay for the session flags.
func bannerFor(session *components.SessionData) components.BannerKind {
	switch {
	case session.Running:
		return components.BannerNone
	case !session.Over:
		return components.BannerIdle
	case session.Win:
		return components.BannerVictory
	default:
		return components.BannerDefeat
	}
}

// UpdateBanner follows the session state and eases the overlay in whenever
// it changes.
func UpdateBanner(e *ecs.ECS) {
	banner := GetOrCreateBanner(e)

	kind := bannerFor(GetSession(e))
	if kind != banner.Kind {
		banner.Kind = kind
		banner.Progress = 0
		banner.Fade = gween.New(0, 1, cfg.Overlay.FadeDuration, ease.OutCubic)
	}

	if banner.Fade == nil {
		return
	}
	progress, finished := banner.Fade.Update(1 / float32(ebiten.TPS()))
	banner.Progress = progress
	if finished {
		banner.Progress = 1
		banner.Fade = nil
	}
}

// DrawOverlay renders the idle, defeat or victory banner with the restart hint.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	banner := GetOrCreateBanner(e)
	if banner.Kind == components.BannerNone {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	alpha := banner.Progress

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		fade(cfg.Overlay.ShadeColor, alpha),
		false,
	)

	if !fonts.Title.Loaded() || !fonts.Hint.Loaded() {
		return
	}

	title := bannerTitle(banner.Kind)
	titleFace := fonts.Title.Get()
	slide := float64((1 - alpha) * cfg.Overlay.SlideOffset)
	titleX := int(width/2) - fonts.Width(titleFace, title)/2
	titleY := int(height/2 + cfg.Overlay.TitleOffsetY + slide)
	text.Draw(screen, title, titleFace, titleX, titleY, fade(cfg.Overlay.TitleColor, alpha))

	hint := cfg.Overlay.Hint
	hintFace := fonts.Hint.Get()
	hintX := int(width/2) - fonts.Width(hintFace, hint)/2
	hintY := int(height/2 + cfg.Overlay.HintOffsetY)
	text.Draw(screen, hint, hintFace, hintX, hintY, fade(cfg.Overlay.HintColor, alpha))
}

func bannerTitle(kind components.BannerKind) string {
	switch kind {
	case components.BannerVictory:
		return cfg.Overlay.VictoryTitle
	case components.BannerDefeat:
		return cfg.Overlay.DefeatTitle
	default:
		return cfg.Overlay.IdleTitle
	}
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// GetOrCreateBanner returns the singleton Banner component, creating if needed.
func GetOrCreateBanner(e *ecs.ECS) *components.BannerData {
	if _, ok := components.Banner.First(e.World); !ok {
		archetypes.Banner.Spawn(e)
	}

	ent, _ := components.Banner.First(e.World)
	return components.Banner.Get(ent)
}
