package driver

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/grasp"
)

// RunConfig configures Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	TPS     int         // ticks per second; 0 keeps ebiten's default
	Overlay bool        // print FPS, wheel mode and the active pose
	Logger  *zap.Logger // receives tick fault reports; nil discards them
}

// Game implements ebiten.Game around a scene and an engine.
type Game struct {
	scene  *grasp.Scene
	engine *grasp.Engine
	input  *Driver
	sched  *grasp.Scheduler
	cfg    RunConfig
}

// NewGame wires scene, engine and a fresh input driver together.
func NewGame(scene *grasp.Scene, engine *grasp.Engine, cfg RunConfig) *Game {
	return &Game{
		scene:  scene,
		engine: engine,
		input:  New(),
		sched:  grasp.NewScheduler(engine, cfg.Logger),
		cfg:    cfg,
	}
}

// Scheduler exposes the game's tick scheduler.
func (g *Game) Scheduler() *grasp.Scheduler {
	return g.sched
}

// Update refreshes the scene, feeds input and ticks the engine. It never
// returns an error: a failed tick is reported by the scheduler and the loop
// continues.
func (g *Game) Update() error {
	g.scene.Update()
	g.input.Poll(g.engine)
	_ = g.sched.Step()
	return nil
}

// Draw renders the scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Update()
	DrawScene(screen, g.scene)
	if g.cfg.Overlay {
		drawOverlay(screen, g.engine)
	}
}

// Layout returns the configured logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width == 0 || g.cfg.Height == 0 {
		return outsideWidth, outsideHeight
	}
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs the game loop until the window closes.
func Run(scene *grasp.Scene, engine *grasp.Engine, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame(scene, engine, cfg))
}
