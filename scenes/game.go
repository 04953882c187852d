package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/core"
	"github.com/automoto/shoutybird/input"
	"github.com/automoto/shoutybird/render"
	"github.com/automoto/shoutybird/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs ShoutyBird in the window. Ebiten calls Update at the
// simulation's tick rate, and each frame pushes exactly one tick through the
// loop's busy guard.
type GameScene struct {
	opts core.Options
	sim  *core.Simulation
	loop *core.GameLoop
	ecs  *ecs.ECS
	once sync.Once

	pauseUI *ui.PauseUI
}

func NewGameScene(opts core.Options) *GameScene {
	return &GameScene{opts: opts}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

// Simulation exposes the running world, nil before the first Update.
func (gs *GameScene) Simulation() *core.Simulation {
	return gs.sim
}

func (gs *GameScene) configure() {
	gs.sim = core.NewSimulation(gs.opts)
	gs.loop = core.NewGameLoop(gs.sim, cfg.C.TickInterval)
	gs.pauseUI = ui.NewPauseUI()

	e := ecs.NewECS(gs.sim.World())

	// Input lands in the queue before the tick drains it
	e.AddSystem(input.NewUpdateInput(gs.sim.Actions()))
	e.AddSystem(func(*ecs.ECS) { gs.loop.TickOnce() })
	e.AddSystem(render.UpdateOverlay)
	e.AddSystem(render.UpdateFlaps)
	e.AddSystem(gs.updatePause)

	e.AddRenderer(render.LayerWorld, render.DrawBackground)
	e.AddRenderer(render.LayerWorld, render.DrawSprites)
	e.AddRenderer(render.LayerWorld, render.DrawWings)
	e.AddRenderer(render.LayerHUD, render.DrawHUD)
	e.AddRenderer(render.LayerOverlay, render.DrawOverlay)
	e.AddRenderer(render.LayerOverlay, gs.drawPause)
	e.AddRenderer(render.LayerDebug, render.NewDrawDebug(gs.loop.Stats))

	gs.ecs = e
}

func (gs *GameScene) updatePause(*ecs.ECS) {
	state := gs.sim.State()
	if !state.Paused {
		return
	}
	gs.pauseUI.Refresh(state)
	gs.pauseUI.Update()
}

func (gs *GameScene) drawPause(_ *ecs.ECS, screen *ebiten.Image) {
	if gs.sim.State().Paused {
		gs.pauseUI.Draw(screen)
	}
}
