//go:build ebiten

package app

import (
	"image/color"
	"time"

	"grid-game/internal/core"
	"grid-game/internal/render"
	"grid-game/internal/terrain"
	"grid-game/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type terrainProvider interface {
	Grid() *terrain.Grid
	Dappler() *render.Dappler
}

type paletteProvider interface {
	Palette() []color.RGBA
}

type tribeMover interface {
	MoveTribe(dr, dc int) error
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	arrows [4]*core.Repeat

	scale    int
	hudWidth int
	seed     int64
	// painted tracks the grid last uploaded so static terrain is not
	// repainted every frame.
	painted *terrain.Grid
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	var arrows [4]*core.Repeat
	for i := range arrows {
		arrows[i] = core.NewRepeat(250*time.Millisecond, 12)
	}
	return &Game{
		arrows:   arrows,
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
}

// Reset regenerates the simulation with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.painted = nil
}

// Update handles per-frame input. The world only changes in response to keys.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if mover, ok := g.sim.(tribeMover); ok {
		dr, dc := g.arrowDelta()
		if dr != 0 || dc != 0 {
			// Moves off the map are ignored.
			_ = mover.MoveTribe(dr, dc)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W*g.scale, g.scale)
	return nil
}

var arrowKeys = [4]struct {
	key    ebiten.Key
	dr, dc int
}{
	{ebiten.KeyArrowUp, -1, 0},
	{ebiten.KeyArrowDown, 1, 0},
	{ebiten.KeyArrowLeft, 0, -1},
	{ebiten.KeyArrowRight, 0, 1},
}

// arrowDelta sums the arrow keys that fire this frame. Held keys repeat.
func (g *Game) arrowDelta() (dr, dc int) {
	now := time.Now()
	for i, a := range arrowKeys {
		if g.arrows[i].Fire(now, ebiten.IsKeyPressed(a.key)) {
			dr += a.dr
			dc += a.dc
		}
	}
	return dr, dc
}

// Draw renders the terrain, the overlay layers and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.paint()
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

func (g *Game) paint() {
	if provider, ok := g.sim.(terrainProvider); ok {
		grid := provider.Grid()
		if grid == nil || grid == g.painted {
			return
		}
		g.painter.PaintTerrain(grid, provider.Dappler())
		g.painted = grid
		return
	}
	if provider, ok := g.sim.(paletteProvider); ok {
		g.painter.PaintFunc(func(buf []byte) {
			render.FillPaletteRGBA(buf, g.sim.Cells(), provider.Palette())
		})
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
