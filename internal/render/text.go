package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/style"
)

// Line is one display line of a wrapped text block. Start is the rune
// offset of its first character in the source text.
type Line struct {
	Text  string
	Start int
}

// MeasureString is the advance width of s in whole pixels.
func MeasureString(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight is the recommended baseline-to-baseline distance.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// Ascent is the distance from the top of a line to its baseline.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// LayoutText wraps text greedily into lines no wider than maxWidth
// pixels. Explicit newlines force breaks. Words wider than maxWidth are
// split per rune. maxWidth <= 0 disables soft wrapping.
func LayoutText(face font.Face, text string, maxWidth int) []Line {
	runes := []rune(text)
	var lines []Line
	lineStart := 0
	lastSpace := -1
	for i := 0; i <= len(runes); i++ {
		if i == len(runes) {
			lines = append(lines, Line{Text: string(runes[lineStart:i]), Start: lineStart})
			break
		}
		if runes[i] == '\n' {
			lines = append(lines, Line{Text: string(runes[lineStart:i]), Start: lineStart})
			lineStart = i + 1
			lastSpace = -1
			continue
		}
		if runes[i] == ' ' {
			lastSpace = i
		}
		if maxWidth <= 0 || i == lineStart {
			continue
		}
		if MeasureString(face, string(runes[lineStart:i+1])) <= maxWidth {
			continue
		}
		// Overflow at rune i: wrap at the last space if the line
		// has one, otherwise split the long word here.
		if lastSpace > lineStart {
			lines = append(lines, Line{Text: string(runes[lineStart:lastSpace]), Start: lineStart})
			lineStart = lastSpace + 1
		} else {
			lines = append(lines, Line{Text: string(runes[lineStart:i]), Start: lineStart})
			lineStart = i
		}
		lastSpace = -1
	}
	return lines
}

// CaretRect is the caret rectangle for a cursor at rune index cursor
// inside text, relative to the text block origin. A cursor sitting on a
// soft-wrap boundary stays at the end of the wrapped line; a cursor
// just past an explicit newline starts the next line.
func CaretRect(face font.Face, text string, cursor, maxWidth int) image.Rectangle {
	lines := LayoutText(face, text, maxWidth)
	h := LineHeight(face)
	for i, ln := range lines {
		end := ln.Start + len([]rune(ln.Text))
		last := i == len(lines)-1
		if cursor > end && !last {
			continue
		}
		col := cursor - ln.Start
		if col < 0 {
			col = 0
		}
		r := []rune(ln.Text)
		if col > len(r) {
			col = len(r)
		}
		x := MeasureString(face, string(r[:col]))
		return image.Rect(x, i*h, x+2, (i+1)*h)
	}
	return image.Rect(0, 0, 2, h)
}

// TextSize measures the wrapped block as a width and height in pixels.
func TextSize(face font.Face, text string, maxWidth int) (int, int) {
	lines := LayoutText(face, text, maxWidth)
	w := 0
	for _, ln := range lines {
		if lw := MeasureString(face, ln.Text); lw > w {
			w = lw
		}
	}
	return w, len(lines) * LineHeight(face)
}

// DrawText renders wrapped lines with the block's top-left at pos.
func (c *Canvas) DrawText(pos geometry.Vec2D, face font.Face, lines []Line, col style.Color) {
	x, y := c.devicePt(pos)
	ascent := Ascent(face)
	h := LineHeight(face)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.NRGBA()),
		Face: face,
	}
	for i, ln := range lines {
		d.Dot = fixed.P(x, y+ascent+i*h)
		d.DrawString(ln.Text)
	}
}
