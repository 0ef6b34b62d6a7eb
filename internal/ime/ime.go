// Package ime models input-method composition (preedit) text styling
// in a toolkit-neutral way. Hosts translate their input method's
// attribute lists into []Attr; the text tool consumes the derived
// spans.
package ime

import (
	"sort"

	"github.com/example/inkshot/internal/style"
)

// UnderlineKind is the decoration requested for a preedit range.
type UnderlineKind int

const (
	UnderlineNone UnderlineKind = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineLow
	UnderlineWavy
	UnderlineError
)

// AttrKind discriminates the attribute payload.
type AttrKind int

const (
	AttrUnderline AttrKind = iota
	AttrUnderlineColor
	AttrForeground
	AttrBackground
	// AttrForegroundAlpha and AttrBackgroundAlpha carry a 16-bit
	// opacity in Alpha that applies to the matching color attribute
	// over the same range.
	AttrForegroundAlpha
	AttrBackgroundAlpha
)

// Color16 is a wide-gamut color as input methods report it, 16 bits per
// channel.
type Color16 struct {
	R, G, B uint16
}

// to8 narrows a 16-bit channel pair to the render palette depth.
func (c Color16) to8() style.Color {
	return style.Color{R: uint8(c.R / 257), G: uint8(c.G / 257), B: uint8(c.B / 257), A: 255}
}

// Attr styles the rune range [Start, End) of the preedit string.
// Underline attributes use Underline, color attributes use Color and
// alpha attributes use Alpha.
type Attr struct {
	Kind      AttrKind
	Start     int
	End       int
	Underline UnderlineKind
	Color     Color16
	Alpha     uint16
}

// Span is a maximal run of preedit text with uniform styling.
// UnderlineColor, Foreground and Background are valid only when the
// matching Has flag is set. Selected marks the active conversion
// segment, which hosts render inverted.
type Span struct {
	Start             int
	End               int
	Underline         UnderlineKind
	UnderlineColor    style.Color
	HasUnderlineColor bool
	Foreground        style.Color
	HasForeground     bool
	Background        style.Color
	HasBackground     bool
	Selected          bool
}

// Spans converts an attribute list over a preedit of the given rune
// length into non-overlapping spans. Attribute ranges are clamped to
// the text and empty ranges dropped; where attributes of one kind
// overlap, the later one wins. A composition with no usable attributes
// gets the conventional single underline over the whole text. The
// selected segment is derived: an explicit background, or a double or
// error underline, marks the range the input method is converting.
func Spans(length int, attrs []Attr) []Span {
	if length <= 0 {
		return nil
	}
	usable := attrs[:0:0]
	for _, a := range attrs {
		if a.Start < 0 {
			a.Start = 0
		}
		if a.End > length {
			a.End = length
		}
		if a.End <= a.Start {
			continue
		}
		usable = append(usable, a)
	}
	if len(usable) == 0 {
		return []Span{{Start: 0, End: length, Underline: UnderlineSingle}}
	}

	cuts := map[int]struct{}{0: {}, length: {}}
	for _, a := range usable {
		cuts[a.Start] = struct{}{}
		cuts[a.End] = struct{}{}
	}
	points := make([]int, 0, len(cuts))
	for p := range cuts {
		points = append(points, p)
	}
	sort.Ints(points)

	var spans []Span
	for i := 1; i < len(points); i++ {
		s := Span{Start: points[i-1], End: points[i]}
		fgAlpha, bgAlpha := uint8(255), uint8(255)
		for _, a := range usable {
			if a.Start > s.Start || a.End < s.End {
				continue
			}
			switch a.Kind {
			case AttrUnderline:
				s.Underline = a.Underline
			case AttrUnderlineColor:
				s.UnderlineColor = a.Color.to8()
				s.HasUnderlineColor = true
			case AttrForeground:
				s.Foreground = a.Color.to8()
				s.HasForeground = true
			case AttrBackground:
				s.Background = a.Color.to8()
				s.HasBackground = true
			case AttrForegroundAlpha:
				fgAlpha = uint8(a.Alpha / 257)
			case AttrBackgroundAlpha:
				bgAlpha = uint8(a.Alpha / 257)
			}
		}
		if s.HasForeground {
			s.Foreground.A = fgAlpha
		}
		if s.HasBackground {
			s.Background.A = bgAlpha
		}
		s.Selected = s.HasBackground || s.Underline == UnderlineDouble || s.Underline == UnderlineError
		if n := len(spans); n > 0 && mergeable(spans[n-1], s) {
			spans[n-1].End = s.End
			continue
		}
		spans = append(spans, s)
	}
	return spans
}

func mergeable(a, b Span) bool {
	return a.End == b.Start &&
		a.Underline == b.Underline &&
		a.Selected == b.Selected &&
		a.HasUnderlineColor == b.HasUnderlineColor && a.UnderlineColor == b.UnderlineColor &&
		a.HasForeground == b.HasForeground && a.Foreground == b.Foreground &&
		a.HasBackground == b.HasBackground && a.Background == b.Background
}
