// Package input implements the buffered input window used by the lexer:
// a fixed-capacity byte buffer over a stream, with lookahead, pushback,
// lexeme marking and transparent compaction. The buffer never grows;
// its capacity is sized for the worst-case lexeme and lookahead lengths.
package input

import (
	"errors"
	"io"
	"os"
)

const (
	// DefaultMaxLexeme is the largest lexeme the buffer guarantees to
	// hold with the default geometry.
	DefaultMaxLexeme = 1024
	// DefaultMaxLook is the deepest lookahead with the default geometry.
	DefaultMaxLook = 16
)

var (
	// ErrNoData is returned by Look when the requested position is not
	// inside the buffered window. This is distinct from a literal NUL
	// byte in the stream.
	ErrNoData = errors.New("input: position not buffered")
	// ErrBufferFull is returned when a non-forced flush cannot free
	// enough room for another worst-case lexeme. FlushBuf recovers, at
	// the cost of the saved lexeme history.
	ErrBufferFull = errors.New("input: buffer full, flush refused")
	// ErrStaleMark is returned by SetPrev for a Mark taken before the
	// last compaction or source switch.
	ErrStaleMark = errors.New("input: mark predates a buffer compaction")
	// ErrPushback is returned by Uninput when the cursor cannot retreat.
	ErrPushback = errors.New("input: pushback past start of lexeme")
	// ErrInternal indicates a broken buffer invariant, typically a
	// geometry too small for the stream being scanned.
	ErrInternal = errors.New("input: internal invariant violated")
)

// Input is a single scanning session: one source stream and one window
// over it. It is not safe for concurrent use.
type Input struct {
	buf       []byte
	maxLexeme int
	maxLook   int

	next   int // next unread byte
	end    int // just past the last byte read from the source
	sMark  int // start of the current lexeme
	eMark  int // end of the current lexeme
	mLine  int // line number when eMark was set
	pMark  int // start of the previous lexeme, -1 when unset
	pLen   int
	pLine  int
	lineno int

	eofRead   bool
	started   bool // the synthetic leading newline has been seeded
	termChar  byte
	termSaved bool
	gen       int // bumped whenever a compaction moves bytes

	src      io.Reader
	closer   io.Closer
	filename string
}

// New returns a session with the default geometry, reading from stdin
// until NewFile or SetSource selects another stream.
func New() *Input {
	return NewSize(DefaultMaxLexeme, DefaultMaxLook)
}

// NewSize returns a session whose buffer holds 3*maxLexeme+2*maxLook
// bytes. maxLexeme bounds the lexeme the window guarantees to retain;
// maxLook bounds Look.
func NewSize(maxLexeme, maxLook int) *Input {
	if maxLexeme < 1 {
		maxLexeme = DefaultMaxLexeme
	}

	if maxLook < 1 {
		maxLook = DefaultMaxLook
	}

	// A refill quantum is one maxLexeme, so deeper lookahead than that
	// could never be satisfied after a flush.
	if maxLook > maxLexeme {
		maxLook = maxLexeme
	}

	size := 3*maxLexeme + 2*maxLook

	in := &Input{
		buf:       make([]byte, size),
		maxLexeme: maxLexeme,
		maxLook:   maxLook,
		src:       os.Stdin,
		filename:  "<stdin>",
	}

	in.reset()

	return in
}

// NewFile switches the session to the named file, or back to stdin when
// path is empty. On success the previous stream is closed (stdin never
// is) and the cursor, marks, line number and eof state are reset. On
// failure the previous stream stays untouched and active, and the error
// from os.Open is returned for inspection.
func (in *Input) NewFile(path string) error {
	if path == "" {
		in.closeCurrent()
		in.src = os.Stdin
		in.closer = nil
		in.filename = "<stdin>"
		in.reset()

		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	in.closeCurrent()
	in.src = f
	in.closer = f
	in.filename = path
	in.reset()

	return nil
}

// SetSource switches the session to an arbitrary reader, with the same
// state reset as NewFile. The reader is not closed by the session.
func (in *Input) SetSource(name string, r io.Reader) {
	in.closeCurrent()
	in.src = r
	in.closer = nil
	in.filename = name
	in.reset()
}

func (in *Input) closeCurrent() {
	if in.closer != nil {
		_ = in.closer.Close()
		in.closer = nil
	}
}

// reset puts the window in the degenerate fully-consumed state so the
// next Advance forces a fill. Buffer contents are left alone; they are
// overwritten by that fill. The seeded-newline state is deliberately
// not reset: the synthetic newline is seeded once per session.
func (in *Input) reset() {
	size := len(in.buf)

	in.next = size
	in.end = size
	in.sMark = size
	in.eMark = size
	in.mLine = 1
	in.pMark = -1
	in.pLen = 0
	in.pLine = 0
	in.lineno = 1
	in.eofRead = false
	in.termSaved = false
	in.gen++
}

// Filename returns the name of the current source.
func (in *Input) Filename() string { return in.filename }

// Text returns the current lexeme, the bytes between the start and end
// marks. The slice aliases the buffer and is valid only until the next
// compaction.
func (in *Input) Text() []byte { return in.buf[in.sMark:in.eMark] }

// Length returns the length of the current lexeme.
func (in *Input) Length() int { return in.eMark - in.sMark }

// Line returns the 1-based line number of the cursor.
func (in *Input) Line() int { return in.lineno }

// PrevText returns the previous lexeme installed by SetPrev, or nil.
// Like Text, the slice is only valid until the next compaction.
func (in *Input) PrevText() []byte {
	if in.pMark < 0 {
		return nil
	}

	return in.buf[in.pMark : in.pMark+in.pLen]
}

// PrevLength returns the length of the previous lexeme.
func (in *Input) PrevLength() int { return in.pLen }

// PrevLine returns the line number of the previous lexeme.
func (in *Input) PrevLine() int { return in.pLine }

// EOFRead reports whether the source has returned end of input. Bytes
// may still remain in the buffer after this becomes true.
func (in *Input) EOFRead() bool { return in.eofRead }

func (in *Input) noMoreChars() bool {
	return in.eofRead && in.next >= in.end
}
