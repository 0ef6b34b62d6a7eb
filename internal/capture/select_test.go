package capture

import (
	"image"
	"testing"
)

func sampleMonitors() []MonitorInfo {
	return []MonitorInfo{
		{Index: 0, Name: "eDP-1", Rect: image.Rect(0, 0, 1920, 1080)},
		{Index: 1, Name: "DP-2", Rect: image.Rect(1920, 0, 4480, 1440), Primary: true},
	}
}

func TestFindMonitor(t *testing.T) {
	monitors := sampleMonitors()
	cases := []struct {
		selector string
		want     int
		wantErr  bool
	}{
		{"", 0, false},
		{"primary", 1, false},
		{"1", 1, false},
		{"#0", 0, false},
		{"edp", 0, false},
		{"5", 0, true},
		{"HDMI", 0, true},
	}
	for _, tc := range cases {
		mon, err := FindMonitor(monitors, tc.selector)
		if tc.wantErr {
			if err == nil {
				t.Errorf("FindMonitor(%q) succeeded, want error", tc.selector)
			}
			continue
		}
		if err != nil {
			t.Errorf("FindMonitor(%q): %v", tc.selector, err)
			continue
		}
		if mon.Index != tc.want {
			t.Errorf("FindMonitor(%q) = monitor %d, want %d", tc.selector, mon.Index, tc.want)
		}
	}
}

func TestFindMonitorEmptyList(t *testing.T) {
	if _, err := FindMonitor(nil, "primary"); err == nil {
		t.Error("empty monitor list accepted")
	}
}

func sampleWindows() []WindowInfo {
	return []WindowInfo{
		{Index: 0, ID: 0x1a, Title: "Terminal", Class: "Alacritty"},
		{Index: 1, ID: 0x2b, Title: "Inbox - Mail", Class: "thunderbird", Active: true},
		{Index: 2, ID: 0x3c, Title: "projects - editor", Class: "Code"},
	}
}

func TestSelectWindow(t *testing.T) {
	windows := sampleWindows()
	cases := []struct {
		selector string
		want     uint32
		wantErr  bool
	}{
		{"", 0x2b, false},
		{"active", 0x2b, false},
		{"0", 0x1a, false},
		{"id:0x3c", 0x3c, false},
		{"id:43", 0x2b, false},
		{"mail", 0x2b, false},
		{"code", 0x3c, false},
		{"alacritty", 0x1a, false},
		{"9", 0, true},
		{"id:0xff", 0, true},
		{"gimp", 0, true},
	}
	for _, tc := range cases {
		win, err := SelectWindow(tc.selector, windows)
		if tc.wantErr {
			if err == nil {
				t.Errorf("SelectWindow(%q) succeeded, want error", tc.selector)
			}
			continue
		}
		if err != nil {
			t.Errorf("SelectWindow(%q): %v", tc.selector, err)
			continue
		}
		if win.ID != tc.want {
			t.Errorf("SelectWindow(%q) = 0x%x, want 0x%x", tc.selector, win.ID, tc.want)
		}
	}
}

func TestSelectWindowNoActive(t *testing.T) {
	windows := []WindowInfo{
		{Index: 0, ID: 1, Title: "a"},
		{Index: 1, ID: 2, Title: "b"},
	}
	win, err := SelectWindow("", windows)
	if err != nil {
		t.Fatalf("SelectWindow: %v", err)
	}
	if win.ID != 2 {
		t.Errorf("empty selector = window %d, want the topmost", win.ID)
	}
	if _, err := SelectWindow("active", windows); err == nil {
		t.Error("explicit active selector should fail without an active window")
	}
}

func TestCropToRect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	out, err := cropToRect(src, image.Rect(10, 10, 60, 40))
	if err != nil {
		t.Fatalf("cropToRect: %v", err)
	}
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 30 {
		t.Errorf("cropped size = %v", out.Bounds())
	}
	if _, err := cropToRect(src, image.Rect(200, 200, 300, 300)); err == nil {
		t.Error("out-of-bounds region accepted")
	}
}
