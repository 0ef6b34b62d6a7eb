package annotate

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/ime"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
	"github.com/example/inkshot/internal/textbuf"
)

// Text is a block of annotation text anchored at a click point. While
// in progress it owns an editable buffer with input-method composition
// state; once committed it renders the final string only.
type Text struct {
	Pos   geometry.Vec2D
	Style style.Style

	buf     *textbuf.Buffer
	spans   []ime.Span
	editing bool
}

func newText(pos geometry.Vec2D, st style.Style) *Text {
	return &Text{Pos: pos, Style: st, buf: textbuf.New(), editing: true}
}

// String is the current text content.
func (d *Text) String() string { return d.buf.String() }

func (d *Text) maxWidth(c *render.Canvas) int {
	w := c.Image().Bounds().Dx() - int(math.Round(d.Pos.X))
	if w < 1 {
		w = 1
	}
	return w
}

func (d *Text) Draw(c *render.Canvas) error {
	face := render.Face(d.Style.Size)
	maxW := d.maxWidth(c)
	text := d.buf.String()
	lines := render.LayoutText(face, text, maxW)

	if start, end, active := d.buf.PreeditRange(); active {
		d.drawPreedit(c, face, lines, start, end)
	}
	c.DrawText(d.Pos, face, lines, d.Style.Color)
	if d.editing {
		r := render.CaretRect(face, text, d.buf.Cursor(), maxW)
		c.FillRect(
			d.Pos.Add(geometry.Vec(float64(r.Min.X), float64(r.Min.Y))),
			geometry.Vec(float64(r.Dx()), float64(r.Dy())),
			d.Style.Color)
	}
	return nil
}

// drawPreedit paints composition backgrounds and underlines beneath the
// glyphs. Span offsets are relative to the composition start.
func (d *Text) drawPreedit(c *render.Canvas, face font.Face, lines []render.Line, start, end int) {
	h := render.LineHeight(face)
	spans := d.spans
	if spans == nil {
		spans = ime.Spans(end-start, nil)
	}
	for _, s := range spans {
		lo, hi := start+s.Start, start+s.End
		for i, ln := range lines {
			runes := []rune(ln.Text)
			lnStart, lnEnd := ln.Start, ln.Start+len(runes)
			a, b := lo, hi
			if a < lnStart {
				a = lnStart
			}
			if b > lnEnd {
				b = lnEnd
			}
			if a >= b {
				continue
			}
			x0 := render.MeasureString(face, string(runes[:a-lnStart]))
			x1 := render.MeasureString(face, string(runes[:b-lnStart]))
			origin := d.Pos.Add(geometry.Vec(float64(x0), float64(i*h)))
			width := float64(x1 - x0)
			if s.Selected {
				bg := d.Style.Color.WithAlpha(90)
				if s.HasBackground {
					bg = s.Background
				}
				c.FillRect(origin, geometry.Vec(width, float64(h)), bg)
			}
			switch s.Underline {
			case ime.UnderlineSingle:
				c.FillRect(origin.Add(geometry.Vec(0, float64(h-2))), geometry.Vec(width, 1), d.Style.Color)
			case ime.UnderlineDouble:
				c.FillRect(origin.Add(geometry.Vec(0, float64(h-3))), geometry.Vec(width, 1), d.Style.Color)
				c.FillRect(origin.Add(geometry.Vec(0, float64(h-1))), geometry.Vec(width, 1), d.Style.Color)
			case ime.UnderlineError:
				c.FillRect(origin.Add(geometry.Vec(0, float64(h-2))), geometry.Vec(width, 1), style.Red)
			}
		}
	}
}

// TextTool places and edits text blocks. A click commits any previous
// in-progress block and starts a new one at the click point.
type TextTool struct {
	toolBase
	st  style.Style
	cur *Text
}

func NewTextTool(st style.Style) *TextTool { return &TextTool{st: st} }

func (t *TextTool) Kind() Kind { return KindText }

// finish detaches the in-progress block for commit. Empty blocks are
// discarded.
func (t *TextTool) finish() Drawable {
	if t.cur == nil {
		return nil
	}
	done := t.cur
	t.cur = nil
	done.buf.EndPreedit()
	done.editing = false
	done.spans = nil
	if done.buf.Len() == 0 {
		return nil
	}
	return done
}

func (t *TextTool) HandleMouse(ev MouseEvent) Update {
	if ev.Kind != Click {
		return Unmodified
	}
	prev := t.finish()
	t.cur = newText(ev.Pos, t.st)
	if prev != nil {
		return Commit(prev)
	}
	return Redrawn
}

func (t *TextTool) HandleKey(ev KeyEvent) Update {
	if t.cur == nil {
		return Unmodified
	}
	buf := t.cur.buf
	switch ev.Code {
	case key.CodeEscape:
		t.cur = nil
		return Redrawn
	case key.CodeReturnEnter:
		if ev.Mod&key.ModShift != 0 {
			buf.Insert("\n")
			return Redrawn
		}
		if done := t.finish(); done != nil {
			return Commit(done)
		}
		return Redrawn
	case key.CodeDeleteBackspace:
		if ev.Mod&key.ModControl != 0 {
			buf.DeleteWordBackward()
		} else {
			buf.DeleteBackward()
		}
	case key.CodeDeleteForward:
		if ev.Mod&key.ModControl != 0 {
			buf.DeleteWordForward()
		} else {
			buf.DeleteForward()
		}
	case key.CodeLeftArrow:
		if ev.Mod&key.ModControl != 0 {
			buf.MoveWordLeft()
		} else {
			buf.MoveLeft()
		}
	case key.CodeRightArrow:
		if ev.Mod&key.ModControl != 0 {
			buf.MoveWordRight()
		} else {
			buf.MoveRight()
		}
	case key.CodeHome:
		buf.MoveLineStart()
	case key.CodeEnd:
		buf.MoveLineEnd()
	default:
		return Unmodified
	}
	return Redrawn
}

func (t *TextTool) HandleText(ev TextEvent) Update {
	if t.cur == nil {
		return Unmodified
	}
	buf := t.cur.buf
	switch ev.Kind {
	case TextCommit:
		if _, _, active := buf.PreeditRange(); active {
			buf.CommitPreedit(ev.Text)
		} else {
			buf.Insert(ev.Text)
		}
		t.cur.spans = nil
	case PreeditBegin:
		buf.BeginPreedit()
	case PreeditUpdate:
		buf.UpdatePreedit(ev.Text, ev.Cursor)
		t.cur.spans = ime.Spans(len([]rune(ev.Text)), ev.Attrs)
	case PreeditEnd:
		buf.EndPreedit()
		t.cur.spans = nil
	}
	return Redrawn
}

func (t *TextTool) HandleStyleChanged(st style.Style) Update {
	t.st = st
	if t.cur != nil {
		t.cur.Style = st
		return Redrawn
	}
	return Unmodified
}

func (t *TextTool) HandleDeactivated() Update {
	if done := t.finish(); done != nil {
		return Commit(done)
	}
	return Unmodified
}

// UndoEdit reverts the newest buffer edit of the in-progress block.
func (t *TextTool) UndoEdit() bool { return t.cur != nil && t.cur.buf.Undo() }

// RedoEdit re-applies the newest undone buffer edit.
func (t *TextTool) RedoEdit() bool { return t.cur != nil && t.cur.buf.Redo() }

func (t *TextTool) Active() bool { return t.cur != nil }

func (t *TextTool) Drawable() Drawable {
	if t.cur == nil {
		return nil
	}
	return t.cur
}

// CaretRect is the caret rectangle of the in-progress block in image
// coordinates, for positioning the host's composition window.
func (t *TextTool) CaretRect(imageWidth int) (image.Rectangle, bool) {
	if t.cur == nil {
		return image.Rectangle{}, false
	}
	face := render.Face(t.cur.Style.Size)
	maxW := imageWidth - int(math.Round(t.cur.Pos.X))
	if maxW < 1 {
		maxW = 1
	}
	r := render.CaretRect(face, t.cur.buf.String(), t.cur.buf.Cursor(), maxW)
	return r.Add(image.Pt(int(math.Round(t.cur.Pos.X)), int(math.Round(t.cur.Pos.Y)))), true
}
