package textbuf

import "testing"

func TestPreeditLifecycle(t *testing.T) {
	b := New()
	b.Insert("ab")
	b.SetCursor(1)
	b.BeginPreedit()
	b.UpdatePreedit("か", -1)
	if got := b.String(); got != "aかb" {
		t.Fatalf("after update: %q", got)
	}
	if b.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2 (end of composition)", b.Cursor())
	}
	b.UpdatePreedit("かん", -1)
	if got := b.String(); got != "aかんb" {
		t.Fatalf("after second update: %q", got)
	}
	b.UpdatePreedit("感", 0)
	if got := b.String(); got != "a感b" {
		t.Fatalf("after replacement: %q", got)
	}
	if b.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1 (start of composition)", b.Cursor())
	}
	b.CommitPreedit("感じ")
	if got := b.String(); got != "a感じb" {
		t.Fatalf("after commit: %q", got)
	}
	if _, _, active := b.PreeditRange(); active {
		t.Error("composition still active after commit")
	}
}

func TestEndPreeditRestores(t *testing.T) {
	b := New()
	b.Insert("hello")
	b.SetCursor(5)
	b.BeginPreedit()
	b.UpdatePreedit("xyz", -1)
	b.EndPreedit()
	if got := b.String(); got != "hello" {
		t.Errorf("EndPreedit left %q", got)
	}
	if b.Cursor() != 5 {
		t.Errorf("cursor = %d, want 5", b.Cursor())
	}
}

func TestPreeditNoOps(t *testing.T) {
	b := New()
	b.Insert("x")
	// Ending with no composition active does nothing.
	b.EndPreedit()
	if got := b.String(); got != "x" {
		t.Errorf("stray EndPreedit changed buffer: %q", got)
	}
	b.BeginPreedit()
	b.BeginPreedit() // second begin is absorbed
	b.UpdatePreedit("a", -1)
	start, end, active := b.PreeditRange()
	if !active || start != 1 || end != 2 {
		t.Errorf("PreeditRange = %d, %d, %v", start, end, active)
	}
}

func TestPreeditSkipsUndoHistory(t *testing.T) {
	b := New()
	b.Insert("base")
	b.BeginPreedit()
	b.UpdatePreedit("けい", -1)
	b.UpdatePreedit("形", -1)
	b.CommitPreedit("形")
	if got := b.String(); got != "base形" {
		t.Fatalf("buffer = %q", got)
	}
	b.Undo()
	if got := b.String(); got != "base" {
		t.Errorf("undo should revert the committed text only, got %q", got)
	}
	b.Undo()
	if got := b.String(); got != "" {
		t.Errorf("second undo should revert the initial insert, got %q", got)
	}
}
