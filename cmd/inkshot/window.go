package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/inkshot/internal/annotate"
	"github.com/example/inkshot/internal/board"
	"github.com/example/inkshot/internal/clipboard"
	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/notify"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

type runParams struct {
	image    *image.RGBA
	output   string
	style    style.Style
	tool     annotate.Kind
	options  annotate.Options
	onEnter  string
	shadow   bool
	notifier *notify.Notifier
}

var toolKeys = map[rune]annotate.Kind{
	'p': annotate.KindPointer,
	'c': annotate.KindCrop,
	'l': annotate.KindLine,
	'a': annotate.KindArrow,
	'x': annotate.KindRectangle,
	'o': annotate.KindEllipse,
	't': annotate.KindText,
	'n': annotate.KindMarker,
	'u': annotate.KindBlur,
	'h': annotate.KindHighlight,
	'b': annotate.KindBrush,
	'z': annotate.KindZoom,
}

var colorKeys = map[rune]style.Color{
	'1': style.Orange,
	'2': style.Red,
	'3': style.Green,
	'4': style.Blue,
	'5': style.Cove,
	'6': style.Pink,
}

var sizeKeys = map[rune]style.Size{
	'7': style.Small,
	'8': style.Medium,
	'9': style.Large,
}

// run opens the annotation window and blocks until it closes.
func run(p runParams) {
	driver.Main(func(s screen.Screen) {
		bounds := p.image.Bounds()
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
			Title:  "Inkshot",
		})
		if err != nil {
			log.Fatalf("new window: %v", err)
		}
		defer w.Release()

		b := board.New(p.image,
			board.WithStyle(p.style),
			board.WithToolOptions(p.options),
			board.WithRepaint(func() { w.Send(paint.Event{}) }),
		)
		b.SwitchTool(p.tool)

		h := &host{
			screen:  s,
			window:  w,
			board:   b,
			params:  p,
			winSize: image.Pt(bounds.Dx(), bounds.Dy()),
		}
		h.loop()
	})
}

// host owns the window-side state: the current window size and the
// in-flight drag gesture.
type host struct {
	screen  screen.Screen
	window  screen.Window
	board   *board.Board
	params  runParams
	winSize image.Point

	dragging  bool
	dragMoved bool
	dragStart geometry.Vec2D
}

func (h *host) loop() {
	for {
		switch e := h.window.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			if sz := e.Size(); sz.X > 0 && sz.Y > 0 {
				h.winSize = sz
			}
			h.repaint()
		case paint.Event:
			h.paint()
		case mouse.Event:
			if h.handleMouse(e) {
				h.repaint()
			}
		case key.Event:
			if h.handleKey(e) {
				h.repaint()
			}
		}
	}
}

func (h *host) repaint() { h.window.Send(paint.Event{}) }

func (h *host) paint() {
	buf, err := h.screen.NewBuffer(h.winSize)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	frame := h.board.RenderWindowed(h.winSize.X, h.winSize.Y)
	draw.Draw(buf.RGBA(), buf.Bounds(), frame, image.Point{}, draw.Src)
	h.window.Upload(image.Point{}, buf, buf.Bounds())
	buf.Release()
	h.window.Publish()
}

// handleMouse turns window pointer events into image-space gestures.
// Presses begin a drag at the absolute image position; moves and the
// release carry the offset from that start. A release without movement
// cancels the drag and synthesizes a click instead.
func (h *host) handleMouse(e mouse.Event) bool {
	pos := h.board.WindowToImage(geometry.Vec(float64(e.X), float64(e.Y)), h.winSize.X, h.winSize.Y)

	if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
		h.dragging = true
		h.dragMoved = false
		h.dragStart = pos
		return h.board.HandleMouse(annotate.MouseEvent{
			Kind: annotate.BeginDrag, Button: e.Button, Mod: e.Modifiers, Pos: pos,
		})
	}
	if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease && h.dragging {
		h.dragging = false
		delta := pos.Sub(h.dragStart)
		if !h.dragMoved {
			changed := h.board.HandleMouse(annotate.MouseEvent{
				Kind: annotate.EndDrag, Button: e.Button, Mod: e.Modifiers,
			})
			click := h.board.HandleMouse(annotate.MouseEvent{
				Kind: annotate.Click, Button: e.Button, Mod: e.Modifiers, Pos: h.dragStart,
			})
			return changed || click
		}
		return h.board.HandleMouse(annotate.MouseEvent{
			Kind: annotate.EndDrag, Button: e.Button, Mod: e.Modifiers, Pos: delta,
		})
	}
	if e.Direction == mouse.DirNone && h.dragging {
		delta := pos.Sub(h.dragStart)
		if delta != (geometry.Vec2D{}) {
			h.dragMoved = true
		}
		return h.board.HandleMouse(annotate.MouseEvent{
			Kind: annotate.UpdateDrag, Button: mouse.ButtonLeft, Mod: e.Modifiers, Pos: delta,
		})
	}
	return false
}

func (h *host) handleKey(e key.Event) bool {
	kev := annotate.KeyEvent{Code: e.Code, Rune: e.Rune, Mod: e.Modifiers}

	if e.Direction == key.DirRelease {
		return h.board.HandleKeyRelease(kev)
	}

	if e.Modifiers&key.ModControl != 0 {
		switch e.Code {
		case key.CodeZ:
			if e.Modifiers&key.ModShift != 0 {
				return h.board.Redo()
			}
			return h.board.Undo()
		case key.CodeY:
			return h.board.Redo()
		case key.CodeS:
			h.save()
			return true
		case key.CodeC:
			h.copy()
			return true
		}
		return h.board.HandleKey(kev)
	}

	if h.textEditing() {
		if printable(e.Rune) {
			return h.board.HandleText(annotate.TextEvent{
				Kind: annotate.TextCommit, Text: string(e.Rune),
			})
		}
		return h.board.HandleKey(kev)
	}

	switch {
	case e.Code == key.CodeReturnEnter:
		switch h.params.onEnter {
		case "save":
			h.save()
			return true
		case "copy":
			h.copy()
			return true
		}
		return false
	case e.Rune == 'q':
		h.window.Send(lifecycle.Event{To: lifecycle.StageDead})
		return false
	}
	if k, ok := toolKeys[unicode.ToLower(e.Rune)]; ok {
		return h.board.SwitchTool(k)
	}
	if col, ok := colorKeys[e.Rune]; ok {
		st := h.board.Style()
		st.Color = col
		return h.board.SetStyle(st)
	}
	if sz, ok := sizeKeys[e.Rune]; ok {
		st := h.board.Style()
		st.Size = sz
		return h.board.SetStyle(st)
	}
	return h.board.HandleKey(kev)
}

// textEditing reports whether a text block is open and typing should go
// to it rather than the shortcut map.
func (h *host) textEditing() bool {
	if h.board.Tools().ActiveKind() != annotate.KindText {
		return false
	}
	t, ok := h.board.Tools().Tool(annotate.KindText).(*annotate.TextTool)
	return ok && t.Active()
}

func printable(r rune) bool {
	return r > 0 && r != '\n' && r != '\r' && unicode.IsGraphic(r)
}

func (h *host) save() {
	img := h.board.RenderCropped()
	if h.params.shadow {
		img = render.Shadow(img, render.DefaultShadowOptions())
	}
	out, err := os.Create(h.params.output)
	if err != nil {
		log.Printf("save: %v", err)
		h.board.ShowToast("Save failed")
		return
	}
	err = png.Encode(out, img)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Printf("save: %v", err)
		h.board.ShowToast("Save failed")
		return
	}
	h.board.ShowToast(fmt.Sprintf("Saved %s", h.params.output))
	h.params.notifier.Save(h.params.output)
}

func (h *host) copy() {
	img := h.board.RenderCropped()
	if err := clipboard.WriteImage(img); err != nil {
		log.Printf("copy: %v", err)
		h.board.ShowToast("Copy failed")
		return
	}
	h.board.ShowToast("Copied to clipboard")
	h.params.notifier.Copy("image")
}
