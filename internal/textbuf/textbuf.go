// Package textbuf implements the editable rune buffer behind the text
// tool: cursor movement by character, word and line, range deletion,
// and an undo history local to one editing session.
package textbuf

import "unicode"

// Buffer is a rune-addressed editable string with a cursor. The zero
// value is an empty buffer.
type Buffer struct {
	runes  []rune
	cursor int
	undo   []snapshot
	redo   []snapshot

	preeditActive bool
	preeditStart  int
	preeditLen    int
}

type snapshot struct {
	runes  []rune
	cursor int
}

// New returns an empty buffer.
func New() *Buffer { return &Buffer{} }

// String is the buffer content.
func (b *Buffer) String() string { return string(b.runes) }

// Len is the content length in runes.
func (b *Buffer) Len() int { return len(b.runes) }

// Cursor is the insertion point as a rune index in [0, Len()].
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor clamps pos into range and moves the cursor there.
func (b *Buffer) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.runes) {
		pos = len(b.runes)
	}
	b.cursor = pos
}

func (b *Buffer) save() {
	snap := snapshot{runes: append([]rune(nil), b.runes...), cursor: b.cursor}
	b.undo = append(b.undo, snap)
	b.redo = nil
}

// Insert places s at the cursor and moves the cursor past it.
func (b *Buffer) Insert(s string) {
	if s == "" {
		return
	}
	b.save()
	ins := []rune(s)
	rest := append([]rune(nil), b.runes[b.cursor:]...)
	b.runes = append(append(b.runes[:b.cursor], ins...), rest...)
	b.cursor += len(ins)
}

// DeleteBackward removes the rune before the cursor.
func (b *Buffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.save()
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
}

// DeleteForward removes the rune at the cursor.
func (b *Buffer) DeleteForward() {
	if b.cursor >= len(b.runes) {
		return
	}
	b.save()
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
}

// DeleteWordBackward removes from the previous word boundary to the
// cursor.
func (b *Buffer) DeleteWordBackward() {
	start := b.prevWord()
	if start == b.cursor {
		return
	}
	b.save()
	b.runes = append(b.runes[:start], b.runes[b.cursor:]...)
	b.cursor = start
}

// DeleteWordForward removes from the cursor to the next word boundary.
func (b *Buffer) DeleteWordForward() {
	end := b.nextWord()
	if end == b.cursor {
		return
	}
	b.save()
	b.runes = append(b.runes[:b.cursor], b.runes[end:]...)
}

// MoveLeft moves the cursor one rune left.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.runes) {
		b.cursor++
	}
}

func (b *Buffer) prevWord() int {
	i := b.cursor
	for i > 0 && unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	return i
}

func (b *Buffer) nextWord() int {
	i := b.cursor
	for i < len(b.runes) && unicode.IsSpace(b.runes[i]) {
		i++
	}
	for i < len(b.runes) && !unicode.IsSpace(b.runes[i]) {
		i++
	}
	return i
}

// MoveWordLeft moves to the start of the previous word.
func (b *Buffer) MoveWordLeft() { b.cursor = b.prevWord() }

// MoveWordRight moves past the end of the next word.
func (b *Buffer) MoveWordRight() { b.cursor = b.nextWord() }

// MoveLineStart moves to the beginning of the current display line,
// where lines are separated by explicit newlines.
func (b *Buffer) MoveLineStart() {
	i := b.cursor
	for i > 0 && b.runes[i-1] != '\n' {
		i--
	}
	b.cursor = i
}

// MoveLineEnd moves to the end of the current line.
func (b *Buffer) MoveLineEnd() {
	i := b.cursor
	for i < len(b.runes) && b.runes[i] != '\n' {
		i++
	}
	b.cursor = i
}

// Undo reverts the last edit. It reports whether anything changed.
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	cur := snapshot{runes: b.runes, cursor: b.cursor}
	last := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.redo = append(b.redo, cur)
	b.runes = last.runes
	b.cursor = last.cursor
	return true
}

// Redo re-applies the last undone edit. It reports whether anything
// changed.
func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	cur := snapshot{runes: b.runes, cursor: b.cursor}
	next := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	b.undo = append(b.undo, cur)
	b.runes = next.runes
	b.cursor = next.cursor
	return true
}

// CanUndo reports whether an edit can be reverted.
func (b *Buffer) CanUndo() bool { return len(b.undo) > 0 }

// CanRedo reports whether an undone edit can be re-applied.
func (b *Buffer) CanRedo() bool { return len(b.redo) > 0 }
