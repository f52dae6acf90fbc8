package main

import (
	"flag"
	"image"
	"log"

	"github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/fonts"
	"github.com/carlos2058/ganho/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	if err := fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 42); err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.Hint, goregular.TTF, 20); err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12); err != nil {
		log.Printf("Warning: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "random seed (0 = time based)")
	flag.BoolVar(&config.Debug.ShowColliders, "debug", false, "outline collision bodies")
	flag.BoolVar(&config.Debug.Mute, "mute", false, "disable sound effects")
	flag.IntVar(&config.Enemy.SpawnCount, "enemies", config.Enemy.SpawnCount, "enemies per round")
	flag.Parse()

	if config.Enemy.SpawnCount < 1 {
		log.Fatalf("-enemies must be at least 1, got %d", config.Enemy.SpawnCount)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
