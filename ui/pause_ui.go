package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is the panel shown while a round is paused
type PauseUI struct {
	UI *ebitenui.UI

	scoreLabel *widget.Label
	roundLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewPauseUI creates the pause panel
func NewPauseUI() *PauseUI {
	pui := &PauseUI{}
	pui.loadFonts()
	pui.buildUI()
	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.TitleFontSize,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.HUDFontSize,
	}
	pui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (pui *PauseUI) buildUI() {
	idle := &widget.LabelColor{Idle: cfg.UI.HUDTextColor}

	// Root container dims the playfield behind the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, idle),
	))

	pui.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, idle),
	)
	contentContainer.AddChild(pui.scoreLabel)

	pui.roundLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, idle),
	)
	contentContainer.AddChild(pui.roundLabel)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("P to resume, F1 for debug boxes", &pui.smallFace, idle),
	))

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Refresh copies the round state into the labels
func (pui *PauseUI) Refresh(state components.GameStateData) {
	pui.scoreLabel.Label = fmt.Sprintf("Score %d   Best %d", state.Score, state.Best)
	pui.roundLabel.Label = fmt.Sprintf("Round %d", state.Rounds)
}

func (pui *PauseUI) Update() {
	pui.UI.Update()
}

func (pui *PauseUI) Draw(screen *ebiten.Image) {
	pui.UI.Draw(screen)
}
