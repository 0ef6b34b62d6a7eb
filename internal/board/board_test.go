package board

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"

	"github.com/example/inkshot/internal/annotate"
	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/style"
)

func solidBackground(w, h int, col color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	return img
}

func gradientBackground(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 5), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func dragBoard(b *Board, from, delta geometry.Vec2D) {
	b.HandleMouse(annotate.MouseEvent{Kind: annotate.BeginDrag, Pos: from})
	b.HandleMouse(annotate.MouseEvent{Kind: annotate.UpdateDrag, Pos: delta})
	b.HandleMouse(annotate.MouseEvent{Kind: annotate.EndDrag, Pos: delta})
}

func TestBoardCommitsDragToHistory(t *testing.T) {
	b := New(solidBackground(100, 100, color.White))
	b.SwitchTool(annotate.KindLine)
	dragBoard(b, geometry.Vec(10, 50), geometry.Vec(50, 0))

	if got := len(b.History().Drawables()); got != 1 {
		t.Fatalf("history holds %d drawables, want 1", got)
	}
	img := b.RenderFull()
	r, g, bl, _ := img.At(30, 50).RGBA()
	if r == g && g == bl {
		t.Error("line not visible in composed frame")
	}
}

func TestBoardUndoRedo(t *testing.T) {
	b := New(solidBackground(100, 100, color.White))
	b.SwitchTool(annotate.KindLine)
	dragBoard(b, geometry.Vec(10, 50), geometry.Vec(50, 0))

	if !b.Undo() {
		t.Fatal("Undo found nothing")
	}
	if len(b.History().Drawables()) != 0 {
		t.Fatal("drawable survived undo")
	}
	if !b.Redo() {
		t.Fatal("Redo found nothing")
	}
	if len(b.History().Drawables()) != 1 {
		t.Fatal("drawable missing after redo")
	}
	if b.Redo() {
		t.Error("second Redo should find nothing")
	}
}

func TestBoardUndoPrefersTextEdits(t *testing.T) {
	b := New(solidBackground(100, 100, color.White))
	b.SwitchTool(annotate.KindLine)
	dragBoard(b, geometry.Vec(10, 10), geometry.Vec(20, 0))

	b.SwitchTool(annotate.KindText)
	b.HandleMouse(annotate.MouseEvent{Kind: annotate.Click, Pos: geometry.Vec(5, 5)})
	b.HandleText(annotate.TextEvent{Kind: annotate.TextCommit, Text: "a"})
	b.HandleText(annotate.TextEvent{Kind: annotate.TextCommit, Text: "b"})

	b.Undo()
	b.Undo()
	if got := len(b.History().Drawables()); got != 1 {
		t.Fatalf("buffer undos touched the drawable history, %d left", got)
	}
	if !b.Undo() {
		t.Fatal("third undo should reach the drawable history")
	}
	if len(b.History().Drawables()) != 0 {
		t.Error("line survived the third undo")
	}
}

func TestBoardSwitchCommitsTextBlock(t *testing.T) {
	b := New(solidBackground(100, 100, color.White))
	b.SwitchTool(annotate.KindText)
	b.HandleMouse(annotate.MouseEvent{Kind: annotate.Click, Pos: geometry.Vec(5, 5)})
	b.HandleText(annotate.TextEvent{Kind: annotate.TextCommit, Text: "note"})

	b.SwitchTool(annotate.KindPointer)
	if got := len(b.History().Drawables()); got != 1 {
		t.Fatalf("switching away left %d drawables, want the committed block", got)
	}
}

func TestBoardRenderCropped(t *testing.T) {
	bg := gradientBackground(100, 80)
	b := New(bg)
	b.SwitchTool(annotate.KindCrop)
	dragBoard(b, geometry.Vec(10, 10), geometry.Vec(30, 20))

	out := b.RenderCropped()
	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 20 {
		t.Fatalf("cropped size = %v", out.Bounds())
	}
	if out.RGBAAt(0, 0) != bg.RGBAAt(10, 10) {
		t.Error("crop origin pixel does not match the source")
	}
	if out.RGBAAt(29, 19) != bg.RGBAAt(39, 29) {
		t.Error("crop far corner does not match the source")
	}
}

func TestBoardRenderCroppedWithoutRect(t *testing.T) {
	b := New(gradientBackground(50, 40))
	out := b.RenderCropped()
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 40 {
		t.Errorf("no-crop export size = %v", out.Bounds())
	}
}

func TestBoardExportIncludesOpenTextBlock(t *testing.T) {
	bg := solidBackground(100, 80, color.White)
	b := New(bg)
	b.SwitchTool(annotate.KindText)
	b.HandleMouse(annotate.MouseEvent{Kind: annotate.Click, Pos: geometry.Vec(10, 10)})
	b.HandleText(annotate.TextEvent{Kind: annotate.TextCommit, Text: "hello"})

	out := b.RenderCropped()
	var inked bool
	for y := 0; y < 80 && !inked; y++ {
		for x := 0; x < 100; x++ {
			if out.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("export missing the open text block visible on screen")
	}
}

func TestBoardCropOverlayNotExported(t *testing.T) {
	bg := solidBackground(100, 80, color.White)
	b := New(bg)
	b.SwitchTool(annotate.KindCrop)
	dragBoard(b, geometry.Vec(20, 20), geometry.Vec(40, 30))

	out := b.RenderCropped()
	for _, p := range []image.Point{{0, 0}, {20, 15}, {39, 29}} {
		if got := out.RGBAAt(p.X, p.Y); got != (color.RGBA{255, 255, 255, 255}) {
			t.Errorf("overlay leaked into export at %v: %v", p, got)
		}
	}
}

func TestBoardRenderWindowedFits(t *testing.T) {
	b := New(solidBackground(200, 100, color.White))
	out := b.RenderWindowed(100, 100)
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
		t.Fatalf("window frame size = %v", out.Bounds())
	}
	if got := out.RGBAAt(50, 50); got.R < 200 {
		t.Errorf("image area pixel = %v, want near white", got)
	}
	if got := out.RGBAAt(50, 5); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("letterbox pixel = %v, want black", got)
	}
}

func TestBoardWindowToImageRoundTrip(t *testing.T) {
	b := New(solidBackground(200, 100, color.White))
	img := geometry.Vec(120, 40)
	// Forward map by the same fit RenderWindowed uses: scale 0.5,
	// centered vertically in a 100x100 window.
	win := geometry.Vec(img.X*0.5, img.Y*0.5+25)
	got := b.WindowToImage(win, 100, 100)
	if got != img {
		t.Errorf("WindowToImage = %v, want %v", got, img)
	}
}

func TestBoardToastLifecycle(t *testing.T) {
	b := New(solidBackground(10, 10, color.White))
	now := time.Unix(100, 0)
	b.now = func() time.Time { return now }

	if _, ok := b.Toast(); ok {
		t.Fatal("toast visible before anything was shown")
	}
	b.ShowToast("saved out.png")
	if msg, ok := b.Toast(); !ok || msg != "saved out.png" {
		t.Fatalf("toast = %q, %v", msg, ok)
	}
	now = now.Add(toastDuration + time.Second)
	if _, ok := b.Toast(); ok {
		t.Error("toast survived its deadline")
	}

	b.ShowToast("copied")
	b.DismissToast()
	if _, ok := b.Toast(); ok {
		t.Error("toast survived dismissal")
	}
}

func TestBoardStyleChangeReachesTools(t *testing.T) {
	b := New(solidBackground(100, 100, color.White))
	b.SwitchTool(annotate.KindLine)
	st := style.Style{Color: style.Blue, Size: style.Large}
	b.SetStyle(st)
	if b.Style() != st {
		t.Fatalf("board style = %+v", b.Style())
	}
	b.HandleMouse(annotate.MouseEvent{Kind: annotate.BeginDrag, Pos: geometry.Vec(0, 0)})
	ln := b.Tools().Active().Drawable().(*annotate.Line)
	if ln.Style != st {
		t.Errorf("new drawable styled %+v, want %+v", ln.Style, st)
	}
}
