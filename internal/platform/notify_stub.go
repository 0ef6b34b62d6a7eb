//go:build !linux && !darwin && !windows

package platform

// Notify drops the notification on platforms without a transport; the
// toast inside the window still reports the outcome.
func Notify(title, body string, opts Options) error { return nil }
