package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/star-systems/internal/canvas"
	"github.com/iburimskiy/star-systems/internal/config"
	"github.com/iburimskiy/star-systems/internal/orbit"
)

type state uint8

const (
	stateRunning state = iota
	stateStopped
)

func (s state) String() string {
	if s == stateStopped {
		return "stopped"
	}
	return "running"
}

// Game drives one scene: every Update is one animation tick while the
// window is open. Run it with ebiten.SetTPS(config.TPS()).
type Game struct {
	variant config.Variant
	canvas  *canvas.Canvas
	scene   *orbit.Scene

	state    state
	checkbox checkbox
}

func New(v config.Variant) *Game {
	c := canvas.New(v.WindowWidth, v.WindowHeight, config.Background)
	g := &Game{
		variant:  v,
		canvas:   c,
		scene:    orbit.NewScene(c, v),
		checkbox: newCheckbox(v.WindowWidth, v.WindowHeight),
	}
	g.checkbox.checked = g.scene.ShowOrbits()

	planets := 0
	for range g.scene.Planets() {
		planets++
	}
	Logger().Info("scene built",
		"variant", v.Name,
		"stars", len(g.scene.Stars()),
		"planets", planets,
		"shapes", c.Len())
	return g
}

func (g *Game) Scene() *orbit.Scene     { return g.scene }
func (g *Game) Canvas() *canvas.Canvas  { return g.canvas }
func (g *Game) Running() bool           { return g.state == stateRunning }
func (g *Game) Variant() config.Variant { return g.variant }

func (g *Game) Update() error {
	if g.state == stateStopped {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		g.Stop()
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.handlePointer(mouseX, mouseY,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))

	g.step()
	return nil
}

func (g *Game) handlePointer(x, y int, justPressed, justReleased bool) {
	if !g.checkbox.update(x, y, justPressed, justReleased) {
		return
	}
	g.scene.SetOrbitVisibility(g.checkbox.checked)
	Logger().Info("orbit visibility", "show", g.checkbox.checked)
}

// step runs one tick unless the driver has stopped.
func (g *Game) step() {
	if g.state != stateRunning {
		return
	}
	g.scene.Tick()
	Logger().Debug("tick", "n", g.scene.Ticks())
}

// Stop moves the driver to its final state. No tick runs afterwards.
func (g *Game) Stop() {
	if g.state == stateStopped {
		return
	}
	g.state = stateStopped
	Logger().Info("driver stopped", "state", g.state, "ticks", g.scene.Ticks())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.canvas.Background())

	g.canvas.Each(func(_ canvas.Handle, it canvas.Item) {
		if it.Hidden {
			return
		}
		drawItem(screen, it)
	})

	g.checkbox.draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.variant.WindowWidth, g.variant.WindowHeight + config.ControlBarHeight
}
