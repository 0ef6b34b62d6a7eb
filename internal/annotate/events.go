// Package annotate implements the annotation tools: typed state
// machines that turn input events into drawables, the commit history
// with undo and redo, and the registry that routes events to the
// active tool.
package annotate

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/ime"
)

// MouseKind distinguishes the pointer gestures tools react to.
type MouseKind int

const (
	// BeginDrag starts a gesture. Pos is absolute.
	BeginDrag MouseKind = iota
	// UpdateDrag continues a gesture. Pos is the offset from the
	// gesture's starting position.
	UpdateDrag
	// EndDrag finishes a gesture. Pos is the final offset from the
	// start; a zero offset means the pointer never really moved and
	// bounded tools treat it as cancellation.
	EndDrag
	// Click is a press and release without movement. Pos is absolute.
	Click
)

// MouseEvent is a pointer event in image coordinates.
type MouseEvent struct {
	Kind   MouseKind
	Button mouse.Button
	Mod    key.Modifiers
	Pos    geometry.Vec2D
}

// KeyEvent is a key press or release.
type KeyEvent struct {
	Code key.Code
	Rune rune
	Mod  key.Modifiers
}

// TextKind distinguishes text-input events from the host's input
// method.
type TextKind int

const (
	// TextCommit delivers finished text, either plain typing or the
	// result of a completed composition.
	TextCommit TextKind = iota
	// PreeditBegin starts a composition at the current cursor.
	PreeditBegin
	// PreeditUpdate replaces the composition text. Cursor is the
	// caret position inside the composition; negative means its end.
	PreeditUpdate
	// PreeditEnd abandons the composition.
	PreeditEnd
)

// TextEvent is a text-input event. Attrs styles the composition text
// for PreeditUpdate.
type TextEvent struct {
	Kind   TextKind
	Text   string
	Cursor int
	Attrs  []ime.Attr
}
