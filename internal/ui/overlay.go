//go:build ebiten

package ui

import (
	"image/color"

	"grid-game/internal/core"
	"grid-game/internal/fertility"
	"grid-game/internal/fog"
	"grid-game/internal/render"
	"grid-game/internal/settlement"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type fertilityProvider interface {
	Fertility() *fertility.Map
}

type fogProvider interface {
	Fog() *fog.Map
}

type tribeProvider interface {
	Tribe() *settlement.Tribe
}

// Overlay draws optional layers on top of the terrain: fertility, fog of war
// and the tribe marker.
type Overlay struct {
	sim   core.Sim
	scale int

	showFertility bool
	showFog       bool

	fertility *render.GridPainter
	fog       *render.GridPainter
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance. Fog starts enabled.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showFog: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 fertility, 2 fog.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFertility = !o.showFertility
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showFog = !o.showFog
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showFertility {
		if provider, ok := o.sim.(fertilityProvider); ok {
			if m := provider.Fertility(); m != nil {
				o.fertility = ensurePainter(o.fertility, size)
				o.fertility.PaintFunc(func(buf []byte) {
					render.FillFertilityRGBA(buf, m.Values(), fertility.Max)
				})
				o.fertility.Draw(screen, scale)
			}
		}
	}

	if o.showFog {
		if provider, ok := o.sim.(fogProvider); ok {
			if m := provider.Fog(); m != nil {
				o.fog = ensurePainter(o.fog, size)
				o.fog.PaintFunc(func(buf []byte) {
					render.FillFogRGBA(buf, m.Cells())
				})
				o.fog.Draw(screen, scale)
			}
		}
	}

	if provider, ok := o.sim.(tribeProvider); ok {
		if tribe := provider.Tribe(); tribe != nil {
			row, col := tribe.Position()
			cx := (float64(col) + 0.5) * float64(scale)
			cy := (float64(row) + 0.5) * float64(scale)
			marker := float64(scale) * 3
			if marker < 4 {
				marker = 4
			}
			o.drawPoint(screen, cx, cy, marker+2, color.RGBA{R: 0, G: 0, B: 0, A: 255})
			o.drawPoint(screen, cx, cy, marker, color.RGBA{R: 255, G: 230, B: 40, A: 255})
		}
	}
}

func ensurePainter(gp *render.GridPainter, size core.Size) *render.GridPainter {
	if gp != nil {
		if w, h := gp.Size(); w == size.W && h == size.H {
			return gp
		}
	}
	return render.NewGridPainter(size.W, size.H)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
