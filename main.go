package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/shoutybird/assets"
	"github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/core"
	"github.com/automoto/shoutybird/fonts"
	"github.com/automoto/shoutybird/scenes"
	"github.com/automoto/shoutybird/shared/leveldata"
	"github.com/automoto/shoutybird/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(opts core.Options) *Game {
	return &Game{scene: scenes.NewGameScene(opts)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	courseName := flag.String("course", "", "obstacle course to play (empty for random gaps)")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random gap seed")
	debug := flag.Bool("debug", config.Debug.ShowBoxes, "start with collision boxes shown")
	logEvents := flag.Bool("log-events", config.Debug.LogEvents, "log collisions and scoring")
	flag.Parse()

	config.Debug.ShowBoxes = *debug
	config.Debug.LogEvents = *logEvents

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var course *leveldata.Course
	if *courseName != "" {
		c, err := assets.LoadCourse(*courseName)
		if err != nil {
			names, _ := assets.CourseNames()
			log.Fatalf("Failed to load course: %v (available: %v)", err, names)
		}
		course = c
	}

	// Persistence is optional; OpenScoreStore logs why it is unavailable
	store, _ := systems.OpenScoreStore()

	ebiten.SetWindowTitle("ShoutyBird")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TicksPerSecond())

	if err := ebiten.RunGame(NewGame(core.Options{Seed: *seed, Course: course, Store: store})); err != nil {
		log.Fatal(err)
	}
}
