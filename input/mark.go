package input

// Mark is a snapshot of the current lexeme bounds and line number. It
// is tied to the buffer layout at the time it was taken: once a
// compaction moves bytes, outstanding Marks are stale and SetPrev
// rejects them.
type Mark struct {
	start, end int
	line       int
	gen        int
}

// Line returns the line number recorded in the mark.
func (m Mark) Line() int { return m.line }

// Len returns the length of the marked lexeme.
func (m Mark) Len() int { return m.end - m.start }

func (in *Input) snapshot() Mark {
	return Mark{
		start: in.sMark,
		end:   in.eMark,
		line:  in.mLine,
		gen:   in.gen,
	}
}

// MarkStart begins a new lexeme at the cursor: both marks move to the
// cursor and the current line number is recorded. The returned Mark
// can later be installed with SetPrev.
func (in *Input) MarkStart() Mark {
	in.mLine = in.lineno
	in.sMark = in.next
	in.eMark = in.next

	return in.snapshot()
}

// MarkEnd moves the end mark to the cursor, leaving the start mark in
// place, and refreshes the recorded line number.
func (in *Input) MarkEnd() Mark {
	in.mLine = in.lineno
	in.eMark = in.next

	return in.snapshot()
}

// MoveStart shrinks the lexeme by one byte from the left. It reports
// false, and does nothing, once the lexeme is empty.
func (in *Input) MoveStart() bool {
	if in.sMark >= in.eMark {
		return false
	}

	in.sMark++

	return true
}

// ToMark rewinds the cursor to the end mark and restores the line
// number recorded when it was set.
func (in *Input) ToMark() {
	in.lineno = in.mLine
	in.next = in.eMark
}

// SetPrev installs m as the previous lexeme, which compaction will then
// preserve alongside the current one. A Mark taken before the last
// compaction or source switch is rejected with ErrStaleMark, since its
// offsets no longer describe the buffer.
//
// The install must be refreshed every time the start mark moves if the
// older lexeme is still wanted; the session never does this implicitly.
func (in *Input) SetPrev(m Mark) error {
	if m.gen != in.gen {
		return ErrStaleMark
	}

	in.pMark = m.start
	in.pLen = m.end - m.start
	in.pLine = m.line

	return nil
}

// Pushback retreats the cursor up to n bytes, never past the start
// mark. The line counter is decremented for every newline (or NUL, a
// historical quirk kept for compatibility) crossed backward, and the
// end mark is dragged along if the cursor passes it. It returns the
// count actually moved and whether the full request was honored.
func (in *Input) Pushback(n int) (int, bool) {
	moved := 0

	for moved < n && in.next > in.sMark {
		in.next--
		moved++

		if c := in.buf[in.next]; c == '\n' || c == 0 {
			in.lineno--
		}
	}

	if in.next < in.eMark {
		in.eMark = in.next
		in.mLine = in.lineno
	}

	return moved, moved == n
}
