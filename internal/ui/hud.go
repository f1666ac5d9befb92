//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"grid-game/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type summaryProvider interface {
	Summary() []string
}

type cellDescriber interface {
	Describe(row, col int) string
}

var keyLegend = []string{
	"arrows  move tribe",
	"1 fertility  2 fog",
	"R regen  S new seed",
	"Q quit",
}

// HUD renders the side panel: world status, the tile under the cursor, key
// bindings and the adjustable generation parameters.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	status []string
	hover  string

	controls     []controlState
	controlsTop  int
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = controlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the status lines, the cursor readout and the control
// values, then handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(summaryProvider); ok {
		h.status = provider.Summary()
	}
	h.hover = ""
	mx, my := ebiten.CursorPosition()
	if describer, ok := h.sim.(cellDescriber); ok && mx >= 0 && my >= 0 && mx < panelOffsetX {
		h.hover = describer.Describe(my/scale, mx/scale)
	}
	h.layoutControls()
	if provider, ok := h.sim.(parameterProvider); ok {
		h.refreshControlValues(provider.Parameters())
	}
	h.handleInput(mx, my)
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, y, headerColor)
	for _, line := range h.status {
		y += textLine
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}
	y += textLine
	text.Draw(h.panel, h.hover, face, panelPadding, y, dimColor)
	y += textLine / 2
	for _, line := range keyLegend {
		y += textLine
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// layoutControls stacks the controls below the status block, which can grow
// when the world gains a tribe or an error.
func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	lines := 1 + len(h.status) + 1 + len(keyLegend)
	top := panelPadding + headerBaseline + lines*textLine + textLine
	if top == h.controlsTop {
		return
	}
	h.controlsTop = top
	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func (h *HUD) refreshControlValues(snapshot core.ParameterSnapshot) {
	params := snapshot.Values()
	for i := range h.controls {
		state := &h.controls[i]
		raw, ok := params[state.control.Key]
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		state.current = parsed
		state.hasValue = true
		if state.control.Type == core.ParamTypeInt {
			state.value = strconv.Itoa(int(parsed))
		} else {
			state.value = formatFloat(state.control, parsed)
		}
	}
}

func (h *HUD) handleInput(mx, my int) {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case image.Pt(px, my).In(state.minusRect):
			h.adjust(state, -1)
			return
		case image.Pt(px, my).In(state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

// target returns the value one step away in direction, clamped to the
// control's bounds, and whether it differs from the current value.
func (s *controlState) target(direction int) (float64, bool) {
	ctrl := s.control
	step := ctrl.Step
	if step <= 0 {
		if ctrl.Type == core.ParamTypeInt {
			step = 1
		} else {
			step = 0.05
		}
	}
	next := s.current + float64(direction)*step
	if ctrl.Type == core.ParamTypeInt {
		next = math.Round(next)
	}
	if ctrl.HasMin && next < ctrl.Min {
		next = ctrl.Min
	}
	if ctrl.HasMax && next > ctrl.Max {
		next = ctrl.Max
	}
	return next, math.Abs(next-s.current) > 1e-9
}

func (h *HUD) adjust(state *controlState, direction int) {
	next, changed := state.target(direction)
	if !changed {
		return
	}
	var ok bool
	switch state.control.Type {
	case core.ParamTypeInt:
		ok = h.intSetter != nil && h.intSetter.SetIntParameter(state.control.Key, int(next))
	case core.ParamTypeFloat:
		ok = h.floatSetter != nil && h.floatSetter.SetFloatParameter(state.control.Key, next)
	}
	if ok {
		state.current = next
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, textColor)
		valueColor := textColor
		if !state.hasValue {
			valueColor = dimColor
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, canDec := state.target(-1)
		_, canInc := state.target(1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDec)
		h.drawButton(state.plusRect, "+", state.hasValue && canInc)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch {
	case ctrl.Step <= 0:
		precision = 2
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

type controlState struct {
	control  core.ParameterControl
	value    string
	current  float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 32
	textLine       = 16
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 14
	labelBaseline  = 20
)
