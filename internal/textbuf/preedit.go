package textbuf

// Input-method composition support. While a preedit is active the
// composition text lives inside the buffer so it renders in place, but
// it is replaced wholesale on every update and stripped again if the
// composition is abandoned. Composition edits are not recorded in the
// undo history; only the final committed text is.

// BeginPreedit marks the current cursor as the composition start. A
// second begin while composing is a no-op.
func (b *Buffer) BeginPreedit() {
	if b.preeditActive {
		return
	}
	b.preeditActive = true
	b.preeditStart = b.cursor
	b.preeditLen = 0
}

// UpdatePreedit replaces the composition run with text and places the
// cursor at the rune offset cursor within it; a negative cursor means
// the end of the composition. Without an active composition it begins
// one first.
func (b *Buffer) UpdatePreedit(text string, cursor int) {
	if !b.preeditActive {
		b.BeginPreedit()
	}
	b.spliceRaw(b.preeditStart, b.preeditStart+b.preeditLen, text)
	b.preeditLen = len([]rune(text))
	if cursor < 0 || cursor > b.preeditLen {
		cursor = b.preeditLen
	}
	b.cursor = b.preeditStart + cursor
}

// EndPreedit removes any uncommitted composition text, leaving the
// buffer as if the composition never happened. Without an active
// composition it is a no-op.
func (b *Buffer) EndPreedit() {
	if !b.preeditActive {
		return
	}
	b.spliceRaw(b.preeditStart, b.preeditStart+b.preeditLen, "")
	b.cursor = b.preeditStart
	b.preeditActive = false
	b.preeditLen = 0
}

// CommitPreedit ends the composition and inserts text as ordinary
// input at its position.
func (b *Buffer) CommitPreedit(text string) {
	b.EndPreedit()
	b.Insert(text)
}

// PreeditRange reports the composition run as rune offsets. active is
// false outside a composition.
func (b *Buffer) PreeditRange() (start, end int, active bool) {
	if !b.preeditActive {
		return 0, 0, false
	}
	return b.preeditStart, b.preeditStart + b.preeditLen, true
}

// spliceRaw replaces [start, end) with s without touching the undo
// history.
func (b *Buffer) spliceRaw(start, end int, s string) {
	if start < 0 {
		start = 0
	}
	if end > len(b.runes) {
		end = len(b.runes)
	}
	if end < start {
		end = start
	}
	ins := []rune(s)
	rest := append([]rune(nil), b.runes[end:]...)
	b.runes = append(append(b.runes[:start], ins...), rest...)
}
