//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"grid-game/internal/terrain"
)

// GridPainter owns one RGBA image sized to the grid and redraws it from tile
// or overlay buffers.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// PaintTerrain uploads the grid's tiles. Terrain is static between resets, so
// callers paint once and Draw every frame.
func (gp *GridPainter) PaintTerrain(g *terrain.Grid, d *Dappler) {
	if g == nil || g.Len() != gp.w*gp.h {
		return
	}
	FillTerrainRGBA(gp.buf, g.Cells(), g.Cols(), d)
	gp.img.WritePixels(gp.buf)
}

// PaintFunc lets the caller fill the pixel buffer directly.
func (gp *GridPainter) PaintFunc(fill func(buf []byte)) {
	fill(gp.buf)
	gp.img.WritePixels(gp.buf)
}

// Draw scales the painted image onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
