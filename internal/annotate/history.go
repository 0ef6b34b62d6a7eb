package annotate

// History is the undo model: a stack of committed drawables and a redo
// buffer. Committing anything clears the redo buffer.
type History struct {
	committed []Drawable
	redo      []Drawable
}

// Commit appends d to the committed stack and drops any redoable
// drawables.
func (h *History) Commit(d Drawable) {
	if d == nil {
		return
	}
	h.committed = append(h.committed, d)
	h.redo = nil
}

// Undo moves the newest committed drawable to the redo buffer, running
// its undo hook. It reports whether anything changed.
func (h *History) Undo() bool {
	if len(h.committed) == 0 {
		return false
	}
	d := h.committed[len(h.committed)-1]
	h.committed = h.committed[:len(h.committed)-1]
	if hk, ok := d.(UndoHooker); ok {
		hk.HandleUndo()
	}
	h.redo = append(h.redo, d)
	return true
}

// Redo moves the newest redoable drawable back to the committed stack,
// running its redo hook. It reports whether anything changed.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	d := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	if hk, ok := d.(UndoHooker); ok {
		hk.HandleRedo()
	}
	h.committed = append(h.committed, d)
	return true
}

// Drawables is the committed stack in insertion order. Callers must
// not mutate it.
func (h *History) Drawables() []Drawable { return h.committed }

// CanRedo reports whether the redo buffer holds anything.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
