package ui

import (
	"bytes"

	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// StatusUI is the status panel in the top-left corner: health, ammo,
// enemies left and zone size.
type StatusUI struct {
	UI *ebitenui.UI

	healthLabel  *widget.Label
	ammoLabel    *widget.Label
	enemiesLabel *widget.Label
	zoneLabel    *widget.Label

	face text.Face
}

// NewStatusUI creates the status panel with ebitenui
func NewStatusUI() (*StatusUI, error) {
	sui := &StatusUI{}
	if err := sui.loadFonts(); err != nil {
		return nil, err
	}
	sui.buildUI()
	return sui, nil
}

func (sui *StatusUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	// Store as text.Face interface for ebitenui compatibility
	sui.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.FontSize,
	}
	return nil
}

func (sui *StatusUI) buildUI() {
	// Transparent root so the arena shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.HUD.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.HUD.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.HUD.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	sui.healthLabel = sui.newLabel()
	sui.ammoLabel = sui.newLabel()
	sui.enemiesLabel = sui.newLabel()
	sui.zoneLabel = sui.newLabel()
	panel.AddChild(sui.healthLabel)
	panel.AddChild(sui.ammoLabel)
	panel.AddChild(sui.enemiesLabel)
	panel.AddChild(sui.zoneLabel)

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *StatusUI) newLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &sui.face, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	)
}

// Refresh copies a status snapshot into the labels.
func (sui *StatusUI) Refresh(s systems.Status) {
	sui.healthLabel.Label = s.HealthText()
	sui.ammoLabel.Label = s.AmmoText()
	sui.enemiesLabel.Label = s.EnemiesText()
	sui.zoneLabel.Label = s.ZoneText()
}

// Update processes UI input and layout
func (sui *StatusUI) Update() {
	sui.UI.Update()
}

// Draw renders the panel on top of the arena
func (sui *StatusUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}
