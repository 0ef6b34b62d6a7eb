package capture

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

var (
	errNoMonitors = errors.New("no monitors available")
	errNoWindows  = errors.New("no windows available")
)

// MonitorInfo describes an individual monitor in the desktop layout.
type MonitorInfo struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

// WindowInfo describes a top-level window available for capture.
type WindowInfo struct {
	Index  int
	ID     uint32
	Title  string
	Class  string
	Rect   image.Rectangle
	Active bool
}

// FindMonitor resolves a monitor selector: "primary", an index with an
// optional leading #, or a substring of the output name.
func FindMonitor(monitors []MonitorInfo, selector string) (MonitorInfo, error) {
	if len(monitors) == 0 {
		return MonitorInfo{}, errNoMonitors
	}
	sel := strings.ToLower(strings.TrimSpace(selector))
	if sel == "" {
		return monitors[0], nil
	}
	if sel == "primary" {
		for _, mon := range monitors {
			if mon.Primary {
				return mon, nil
			}
		}
		return monitors[0], nil
	}
	sel = strings.TrimPrefix(sel, "#")
	if idx, err := strconv.Atoi(sel); err == nil {
		if idx < 0 || idx >= len(monitors) {
			return MonitorInfo{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return monitors[idx], nil
	}
	for _, mon := range monitors {
		if strings.Contains(strings.ToLower(mon.Name), sel) {
			return mon, nil
		}
	}
	return MonitorInfo{}, fmt.Errorf("monitor %q not found", selector)
}

// SelectWindow resolves a window selector: "active", an index, an
// "id:" prefix with a decimal or hex window ID, or a substring of the
// title or class. Empty picks the active window, then the topmost.
func SelectWindow(selector string, windows []WindowInfo) (WindowInfo, error) {
	if len(windows) == 0 {
		return WindowInfo{}, errNoWindows
	}
	sel := strings.TrimSpace(selector)
	lower := strings.ToLower(sel)
	if lower == "" || lower == "active" {
		for _, win := range windows {
			if win.Active {
				return win, nil
			}
		}
		if lower == "active" {
			return WindowInfo{}, fmt.Errorf("no active window detected")
		}
		return windows[len(windows)-1], nil
	}
	if rest, ok := strings.CutPrefix(lower, "id:"); ok {
		id, err := parseWindowID(rest)
		if err != nil {
			return WindowInfo{}, err
		}
		for _, win := range windows {
			if win.ID == id {
				return win, nil
			}
		}
		return WindowInfo{}, fmt.Errorf("window id 0x%x not found", id)
	}
	if idx, err := strconv.Atoi(sel); err == nil {
		if idx < 0 || idx >= len(windows) {
			return WindowInfo{}, fmt.Errorf("window index %d out of range", idx)
		}
		return windows[idx], nil
	}
	for _, win := range windows {
		if strings.Contains(strings.ToLower(win.Title), lower) ||
			strings.Contains(strings.ToLower(win.Class), lower) {
			return win, nil
		}
	}
	return WindowInfo{}, fmt.Errorf("no window matched %q", selector)
}

func parseWindowID(val string) (uint32, error) {
	v := strings.TrimSpace(val)
	base := 10
	if rest, ok := strings.CutPrefix(strings.ToLower(v), "0x"); ok {
		v, base = rest, 16
	}
	parsed, err := strconv.ParseUint(v, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q", val)
	}
	return uint32(parsed), nil
}
