package scenes

import (
	"log"
	"sync"

	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/random"
	"github.com/carlos2058/ganho/systems"
	"github.com/carlos2058/ganho/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene hosts the arena: one round at a time, restarted from the
// overlay with the start key.
type ArenaScene struct {
	ecs      *ecs.ECS
	statusUI *ui.StatusUI
	once     sync.Once
}

// NewArenaScene creates the arena scene. The world is built on first update.
func NewArenaScene() *ArenaScene {
	return &ArenaScene{}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if as.statusUI != nil {
		as.statusUI.Refresh(systems.ReadStatus(as.ecs))
		as.statusUI.Update()
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		screen.Fill(cfg.Arena.BackgroundColor)
		return
	}
	as.ecs.Draw(screen)

	if as.statusUI != nil {
		as.statusUI.Draw(screen)
	}
}

func (as *ArenaScene) configure() {
	// Preload sounds to avoid lag on first use
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateActions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.Step))

	// Presentation
	ecs.AddSystem(systems.UpdateBanner)

	// Audio system (runs last so cues raised this frame play immediately)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	as.ecs = ecs

	src := random.NewPRNG(cfg.Debug.Seed)
	log.Printf("Arena seed: %d", src.Seed())
	systems.InitArena(as.ecs, src)

	statusUI, err := ui.NewStatusUI()
	if err != nil {
		log.Printf("Warning: status panel disabled: %v", err)
		return
	}
	as.statusUI = statusUI
}
