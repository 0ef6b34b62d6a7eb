// Package board ties one annotated image together: the background
// raster, the committed drawable history, the tool set and the toast
// line. Hosts feed it input events and ask it to render.
package board

import (
	"image"
	"log"
	"sync"
	"time"

	"github.com/example/inkshot/internal/annotate"
	"github.com/example/inkshot/internal/style"
)

const toastDuration = 2 * time.Second

// Board is the annotation session for a single image.
type Board struct {
	background *image.RGBA
	history    *annotate.History
	tools      *annotate.Registry
	st         style.Style
	opts       annotate.Options

	toastMu    sync.Mutex
	toastMsg   string
	toastUntil time.Time
	toastGen   int

	repaint func()
	now     func() time.Time
}

// Option modifies a Board during creation.
type Option func(*Board)

// WithStyle sets the starting tool style.
func WithStyle(st style.Style) Option { return func(b *Board) { b.st = st } }

// WithToolOptions sets the tool tuning knobs.
func WithToolOptions(opts annotate.Options) Option { return func(b *Board) { b.opts = opts } }

// WithRepaint registers a callback for repaints the board initiates
// itself, such as a toast expiring.
func WithRepaint(fn func()) Option { return func(b *Board) { b.repaint = fn } }

// New creates a board over the given background image.
func New(background *image.RGBA, opts ...Option) *Board {
	b := &Board{
		background: background,
		history:    &annotate.History{},
		st:         style.Default(),
		opts:       annotate.DefaultOptions(),
		now:        time.Now,
	}
	for _, o := range opts {
		o(b)
	}
	b.tools = annotate.NewRegistry(b.st, b.opts)
	return b
}

// Background is the unannotated raster.
func (b *Board) Background() *image.RGBA { return b.background }

// Tools exposes the tool registry.
func (b *Board) Tools() *annotate.Registry { return b.tools }

// Style is the current tool style.
func (b *Board) Style() style.Style { return b.st }

// apply folds a tool update into the board. A committed drawable is
// finalized against the flattened committed state first so effects
// that sample pixels, like blur, bake what is actually beneath them.
func (b *Board) apply(up annotate.Update) bool {
	if up.Commit == nil {
		return up.Redraw
	}
	if f, ok := up.Commit.(annotate.Finalizer); ok {
		f.Finalize(b.compose(false))
	}
	b.history.Commit(up.Commit)
	return true
}

// HandleMouse routes a pointer event to the active tool and reports
// whether the frame needs repainting.
func (b *Board) HandleMouse(ev annotate.MouseEvent) bool {
	if ev.Kind == annotate.BeginDrag || ev.Kind == annotate.Click {
		b.DismissToast()
	}
	return b.apply(b.tools.Active().HandleMouse(ev))
}

// HandleKey routes a key press to the active tool.
func (b *Board) HandleKey(ev annotate.KeyEvent) bool {
	return b.apply(b.tools.Active().HandleKey(ev))
}

// HandleKeyRelease routes a key release to the active tool.
func (b *Board) HandleKeyRelease(ev annotate.KeyEvent) bool {
	return b.apply(b.tools.Active().HandleKeyRelease(ev))
}

// HandleText routes committed text or composition updates to the
// active tool.
func (b *Board) HandleText(ev annotate.TextEvent) bool {
	return b.apply(b.tools.Active().HandleText(ev))
}

// SwitchTool activates a tool, committing whatever the outgoing tool
// hands back.
func (b *Board) SwitchTool(k annotate.Kind) bool {
	return b.apply(b.tools.Switch(k, b.st))
}

// SetStyle updates the shared style and pushes it to the active tool.
func (b *Board) SetStyle(st style.Style) bool {
	b.st = st
	return b.apply(b.tools.Broadcast(st))
}

// Undo reverts the newest change. A text block being edited undoes its
// own buffer edits before the drawable history is touched.
func (b *Board) Undo() bool {
	if tt, ok := b.tools.Active().(*annotate.TextTool); ok && tt.UndoEdit() {
		return true
	}
	return b.history.Undo()
}

// Redo re-applies the newest undone change, with the same text-block
// delegation as Undo.
func (b *Board) Redo() bool {
	if tt, ok := b.tools.Active().(*annotate.TextTool); ok && tt.RedoEdit() {
		return true
	}
	return b.history.Redo()
}

// History exposes the committed drawable stack.
func (b *Board) History() *annotate.History { return b.history }

// CaretRect is the text caret in image coordinates, for placing the
// host's input-method composition window.
func (b *Board) CaretRect() (image.Rectangle, bool) {
	tt, ok := b.tools.Tool(annotate.KindText).(*annotate.TextTool)
	if !ok {
		return image.Rectangle{}, false
	}
	return tt.CaretRect(b.background.Bounds().Dx())
}

// ShowToast displays a transient status line and logs it.
func (b *Board) ShowToast(msg string) {
	b.toastMu.Lock()
	b.toastMsg = msg
	b.toastUntil = b.now().Add(toastDuration)
	b.toastGen++
	gen := b.toastGen
	b.toastMu.Unlock()
	log.Print(msg)
	if b.repaint == nil {
		return
	}
	time.AfterFunc(toastDuration, func() {
		b.toastMu.Lock()
		current := b.toastGen == gen
		b.toastMu.Unlock()
		if current {
			b.repaint()
		}
	})
}

// Toast reports the visible toast text, if any.
func (b *Board) Toast() (string, bool) {
	b.toastMu.Lock()
	defer b.toastMu.Unlock()
	if b.toastMsg == "" || !b.now().Before(b.toastUntil) {
		return "", false
	}
	return b.toastMsg, true
}

// DismissToast hides the toast early.
func (b *Board) DismissToast() {
	b.toastMu.Lock()
	b.toastUntil = time.Time{}
	b.toastMu.Unlock()
}
