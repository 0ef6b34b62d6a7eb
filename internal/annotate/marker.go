package annotate

import (
	"strconv"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

// Marker is a numbered badge. All markers from one tool instance share
// the counter, so undoing and redoing keeps the numbering dense.
type Marker struct {
	Pos     geometry.Vec2D
	Value   int
	Style   style.Style
	counter *int
}

func (m *Marker) Draw(c *render.Canvas) error {
	face := render.Face(m.Style.Size)
	r := m.Style.Size.TextSize() * 0.9
	c.FillCircle(m.Pos, r, m.Style.Color)

	text := strconv.Itoa(m.Value)
	col := style.Cove
	if brightness(m.Style.Color) < 128 {
		col = style.Color{R: 255, G: 255, B: 255, A: 255}
	}
	w := render.MeasureString(face, text)
	h := render.LineHeight(face)
	origin := m.Pos.Sub(geometry.Vec(float64(w)/2, float64(h)/2))
	c.DrawText(origin, face, []render.Line{{Text: text}}, col)
	return nil
}

// HandleUndo winds the shared counter back to this marker's number so
// the next marker reuses it.
func (m *Marker) HandleUndo() { *m.counter = m.Value }

// HandleRedo advances the counter past this marker's number again.
func (m *Marker) HandleRedo() { *m.counter = m.Value + 1 }

func brightness(c style.Color) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// MarkerTool places numbered badges on click.
type MarkerTool struct {
	toolBase
	st      style.Style
	counter int
}

func NewMarkerTool(st style.Style) *MarkerTool { return &MarkerTool{st: st, counter: 1} }

func (t *MarkerTool) Kind() Kind { return KindMarker }

func (t *MarkerTool) HandleMouse(ev MouseEvent) Update {
	if ev.Kind != Click {
		return Unmodified
	}
	m := &Marker{Pos: ev.Pos, Value: t.counter, Style: t.st, counter: &t.counter}
	t.counter++
	return Commit(m)
}

func (t *MarkerTool) HandleStyleChanged(st style.Style) Update {
	t.st = st
	return Unmodified
}

// Counter exposes the next marker number, for the toolbar.
func (t *MarkerTool) Counter() int { return t.counter }
