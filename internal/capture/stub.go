//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package capture

import (
	"fmt"
	"image"
)

func grabScreen(Options) (*image.RGBA, error) {
	return nil, fmt.Errorf("screen capture is not supported on this platform")
}

func grabWindow(uint32) (*image.RGBA, error) {
	return nil, fmt.Errorf("window capture is not supported on this platform")
}

func portalScreenshot(bool, Options) (*image.RGBA, error) {
	return nil, fmt.Errorf("portal capture is not supported on this platform")
}

// Monitors reports the monitor layout; unavailable here.
func Monitors() ([]MonitorInfo, error) { return nil, errNoMonitors }

// Windows reports the top-level windows; unavailable here.
func Windows() ([]WindowInfo, error) { return nil, errNoWindows }
