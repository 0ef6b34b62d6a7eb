// Package capture grabs screen pixels for annotation. On X11 it reads
// the root window directly; when that fails it falls back to the
// desktop portal, which also covers Wayland sessions.
package capture

import (
	"fmt"
	"image"
	"image/draw"
)

// Options tunes a capture request.
type Options struct {
	// IncludeCursor embeds the pointer in portal captures.
	IncludeCursor bool
}

// Screen captures the whole desktop. A non-empty display selector
// crops the result to the matching monitor.
func Screen(display string, opts Options) (*image.RGBA, error) {
	img, err := grabScreen(opts)
	if err != nil {
		return nil, err
	}
	if display == "" {
		return img, nil
	}
	monitors, err := Monitors()
	if err != nil {
		return nil, err
	}
	mon, err := FindMonitor(monitors, display)
	if err != nil {
		return nil, err
	}
	return cropToRect(img, mon.Rect)
}

// Window captures the window matching the selector. Direct window
// capture is tried first; compositors that refuse it get a desktop
// capture cropped to the window geometry.
func Window(selector string, opts Options) (*image.RGBA, error) {
	windows, err := Windows()
	if err != nil {
		return nil, err
	}
	info, err := SelectWindow(selector, windows)
	if err != nil {
		return nil, err
	}
	if info.Rect.Empty() {
		return nil, fmt.Errorf("window has empty geometry")
	}
	img, directErr := grabWindow(info.ID)
	if directErr == nil {
		return img, nil
	}
	shot, err := grabScreen(opts)
	if err != nil {
		return nil, fmt.Errorf("window capture: %v; fallback screenshot failed: %w", directErr, err)
	}
	img, err = cropToRect(shot, info.Rect)
	if err != nil {
		return nil, fmt.Errorf("window capture: %v; fallback crop failed: %w", directErr, err)
	}
	return img, nil
}

// Region lets the user pick a region interactively through the portal.
func Region(opts Options) (*image.RGBA, error) {
	return portalScreenshot(true, opts)
}

func cropToRect(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("requested region outside captured image")
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}
