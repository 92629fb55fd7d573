package input

import (
	"errors"
	"fmt"
	"io"
)

// Advance consumes and returns the next byte. It returns io.EOF once
// the source is exhausted and the buffer drained, and ErrBufferFull
// when the opportunistic flush cannot free room (FlushBuf recovers,
// discarding the saved lexeme history).
//
// The very first call seeds a synthetic newline ahead of the stream so
// a start-of-line condition holds for the first real line; the newline
// is returned like any other byte, and the line counter is
// pre-decremented so that line stays 1-based.
func (in *Input) Advance() (byte, error) {
	if !in.started {
		in.next = len(in.buf) - 1
		in.sMark = in.next
		in.eMark = in.next
		in.buf[in.next] = '\n'
		in.lineno--
		in.mLine--
		in.started = true
	}

	if in.noMoreChars() {
		return 0, io.EOF
	}

	if !in.eofRead {
		if err := in.Flush(false); err != nil {
			return 0, err
		}
	}

	c := in.buf[in.next]
	if c == '\n' {
		in.lineno++
	}

	in.next++

	return c, nil
}

// Look returns the nth byte of lookahead (1-based) without moving the
// cursor. It returns io.EOF for positions at or past the end of an
// exhausted source, and ErrNoData for positions outside the buffered
// window in either direction.
func (in *Input) Look(n int) (byte, error) {
	p := in.next + (n - 1)

	if in.eofRead && p >= in.end {
		return 0, io.EOF
	}

	if p < 0 || p >= in.end {
		return 0, ErrNoData
	}

	return in.buf[p], nil
}

// Flush compacts the buffer and refills its tail. It does nothing when
// the stream is fully consumed, or when the cursor has not reached the
// danger zone and force is false.
//
// The left edge of the retained region is the smaller of the start mark
// and the installed previous mark; nothing at or right of it is lost.
// When that edge is too close to the origin to free room for one
// worst-case lexeme, a non-forced flush refuses with ErrBufferFull. A
// forced flush instead sacrifices the lexeme history, re-marking the
// start at the cursor, and proceeds.
func (in *Input) Flush(force bool) error {
	if in.noMoreChars() {
		return nil
	}

	if in.eofRead {
		return nil
	}

	if !force && in.next < in.end-in.maxLook {
		return nil
	}

	leftEdge := in.sMark
	if in.pMark >= 0 && in.pMark < leftEdge {
		leftEdge = in.pMark
	}

	shift := leftEdge

	if shift < in.maxLexeme {
		if !force {
			return ErrBufferFull
		}

		// Give up the current and previous lexemes to make room.
		m := in.MarkStart()
		_ = in.SetPrev(m)

		leftEdge = in.sMark
		shift = leftEdge
	}

	copyAmount := in.end - leftEdge
	copy(in.buf, in.buf[leftEdge:in.end])

	got, err := in.fillAt(copyAmount)
	if err != nil {
		return err
	}

	if got == 0 && !in.eofRead {
		return fmt.Errorf("%w: refill at %d produced no data", ErrInternal, copyAmount)
	}

	if in.pMark >= 0 {
		in.pMark -= shift
	}

	in.sMark -= shift
	in.eMark -= shift
	in.next -= shift

	if shift > 0 {
		in.gen++
	}

	return nil
}

// fillAt reads from the source into the buffer starting at off. Only
// whole multiples of the lexeme size that fit before the physical end
// are requested, so refill quanta stay predictable regardless of where
// compaction left the tail. A request of zero is a no-op returning 0;
// callers distinguish that from end of input via EOFRead.
func (in *Input) fillAt(off int) (int, error) {
	if off < 0 || off > len(in.buf) {
		return 0, fmt.Errorf("%w: bad refill offset %d", ErrInternal, off)
	}

	need := ((len(in.buf) - off) / in.maxLexeme) * in.maxLexeme
	if need == 0 {
		return 0, nil
	}

	// io.ReadFull, rather than a single Read, so that a short read
	// from an arbitrary reader is not mistaken for end of input.
	got, err := io.ReadFull(in.src, in.buf[off:off+need])

	in.end = off + got

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		in.eofRead = true
		err = nil
	}

	if err != nil {
		return got, fmt.Errorf("input: read %s: %w", in.filename, err)
	}

	return got, nil
}
