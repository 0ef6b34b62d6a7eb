package notify

import "testing"

func TestLoadPreferencesEnvOverrides(t *testing.T) {
	t.Setenv("INKSHOT_NOTIFY_TITLE", "Shots")
	t.Setenv("INKSHOT_NOTIFY_SAVE_TEXT", "Wrote %s")

	prefs := LoadPreferences()
	if prefs.Title != "Shots" {
		t.Errorf("Title = %q", prefs.Title)
	}
	if got := prefs.Templates[EventSave]; got != "Wrote %s" {
		t.Errorf("save template = %q", got)
	}
	if got := prefs.Templates[EventCopy]; got != "Copied %s to clipboard" {
		t.Errorf("copy template changed unexpectedly: %q", got)
	}
}

func TestNotifierDisabledByDefault(t *testing.T) {
	n := New(DefaultPreferences())
	// All events start disabled, so these must return without touching
	// the platform notification service.
	n.Capture("screen", nil)
	n.Save("out.png")
	n.Copy("image")

	if n.enabledFor(EventSave) {
		t.Error("save enabled without a toggle")
	}
	n.Enable(EventSave, true)
	if !n.enabledFor(EventSave) {
		t.Error("Enable did not take")
	}
	n.Enable(EventSave, false)
	if n.enabledFor(EventSave) {
		t.Error("disable did not take")
	}
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	n.Enable(EventCopy, true)
	if n.enabledFor(EventCopy) {
		t.Error("nil notifier reported an enabled event")
	}
	if n.template(EventCopy) != "" {
		t.Error("nil notifier returned a template")
	}
}
