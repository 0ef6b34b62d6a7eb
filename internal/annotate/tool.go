package annotate

import (
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

// Update is a tool's answer to an event. The zero value means nothing
// changed. Redraw requests a re-render without committing. A non-nil
// Commit finalizes a drawable into the history; committing implies a
// redraw.
type Update struct {
	Redraw bool
	Commit Drawable
}

// Unmodified is the no-change result.
var Unmodified = Update{}

// Redrawn is the redraw-only result.
var Redrawn = Update{Redraw: true}

// Commit builds a commit result.
func Commit(d Drawable) Update { return Update{Redraw: true, Commit: d} }

// Changed reports whether the update requires a re-render.
func (u Update) Changed() bool { return u.Redraw || u.Commit != nil }

// Drawable is a committed or in-progress annotation that renders
// itself onto a canvas.
type Drawable interface {
	Draw(c *render.Canvas) error
}

// UndoHooker is implemented by drawables with shared external state
// that must track undo and redo, such as the marker counter.
type UndoHooker interface {
	HandleUndo()
	HandleRedo()
}

// Finalizer is implemented by drawables that capture pixels from the
// finished composition at commit time. The canvas holds a full
// resolution render of everything beneath the drawable.
type Finalizer interface {
	Finalize(c *render.Canvas)
}

// Tool is an annotation state machine. Implementations embed toolBase
// and override the handlers they care about.
type Tool interface {
	Kind() Kind
	HandleMouse(ev MouseEvent) Update
	HandleKey(ev KeyEvent) Update
	HandleKeyRelease(ev KeyEvent) Update
	HandleText(ev TextEvent) Update
	HandleStyleChanged(st style.Style) Update
	HandleActivated() Update
	HandleDeactivated() Update
	// Active reports whether a gesture or edit is in progress.
	Active() bool
	// Drawable is the in-progress shape for live preview, nil when
	// idle.
	Drawable() Drawable
}

// toolBase supplies the default no-op handlers.
type toolBase struct{}

func (toolBase) HandleMouse(MouseEvent) Update            { return Unmodified }
func (toolBase) HandleKey(KeyEvent) Update                { return Unmodified }
func (toolBase) HandleKeyRelease(KeyEvent) Update         { return Unmodified }
func (toolBase) HandleText(TextEvent) Update              { return Unmodified }
func (toolBase) HandleStyleChanged(style.Style) Update    { return Unmodified }
func (toolBase) HandleActivated() Update                  { return Unmodified }
func (toolBase) HandleDeactivated() Update                { return Unmodified }
func (toolBase) Active() bool                             { return false }
func (toolBase) Drawable() Drawable                       { return nil }

// Kind identifies a tool.
type Kind int

const (
	KindPointer Kind = iota
	KindCrop
	KindLine
	KindArrow
	KindRectangle
	KindEllipse
	KindText
	KindMarker
	KindBlur
	KindHighlight
	KindBrush
	KindZoom
)

var kindNames = map[Kind]string{
	KindPointer:   "pointer",
	KindCrop:      "crop",
	KindLine:      "line",
	KindArrow:     "arrow",
	KindRectangle: "rectangle",
	KindEllipse:   "ellipse",
	KindText:      "text",
	KindMarker:    "marker",
	KindBlur:      "blur",
	KindHighlight: "highlight",
	KindBrush:     "brush",
	KindZoom:      "zoom",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// KindByName resolves a tool name from config or the command line. The
// second result reports whether the name is known.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindPointer, false
}
