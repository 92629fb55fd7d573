package input

// Term overwrites the byte at the cursor with a NUL terminator, so the
// bytes from the start mark up to the cursor read as a terminated
// string. The overwritten byte is saved, NUL or not, and restored by
// Unterm.
func (in *Input) Term() {
	if in.next >= len(in.buf) {
		return
	}

	in.termChar = in.buf[in.next]
	in.termSaved = true
	in.buf[in.next] = 0
}

// Unterm restores the byte saved by Term. Calling it with no
// terminator pending is a no-op.
func (in *Input) Unterm() {
	if in.termSaved {
		in.buf[in.next] = in.termChar
		in.termSaved = false
	}
}

// Input advances past one byte like Advance, but transparently removes
// and reapplies an active terminator, re-marking the lexeme end so the
// terminated view stays consistent. The consumed byte is not returned;
// use Lookahead(1) beforehand when the value is needed.
func (in *Input) Input() error {
	if !in.termSaved {
		_, err := in.Advance()
		in.MarkEnd()

		return err
	}

	in.Unterm()

	_, err := in.Advance()
	in.MarkEnd()
	in.Term()

	return err
}

// Uninput pushes the cursor back one byte and writes c at the new
// position, terminator-transparently. It returns ErrPushback when the
// cursor cannot retreat past the start mark.
func (in *Input) Uninput(c byte) error {
	if in.termSaved {
		in.Unterm()
		defer in.Term()
	}

	if _, ok := in.Pushback(1); !ok {
		return ErrPushback
	}

	in.buf[in.next] = c

	return nil
}

// Lookahead is Look with terminator transparency: with a terminator
// active, one byte of lookahead is the saved byte, not the NUL sitting
// in the buffer.
func (in *Input) Lookahead(n int) (byte, error) {
	if n == 1 && in.termSaved {
		return in.termChar, nil
	}

	return in.Look(n)
}

// FlushBuf removes any pending terminator and forces a compaction,
// discarding whatever history is not protected by a live mark. It is
// the recovery path for ErrBufferFull.
func (in *Input) FlushBuf() error {
	in.Unterm()

	return in.Flush(true)
}
