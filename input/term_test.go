package input

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTermUnterm(t *testing.T) {
	t.Parallel()

	in := newTestInput(t, "word rest")

	_, err := in.Advance()
	require.NoError(t, err)

	in.MarkStart()

	for range 4 {
		_, err := in.Advance()
		require.NoError(t, err)
	}

	in.MarkEnd()
	require.Equal(t, "word", string(in.Text()))

	in.Term()

	b, err := in.Look(1)
	require.NoError(t, err)
	require.Zero(t, b, "byte at the cursor is overwritten with NUL")

	b, err = in.Lookahead(1)
	require.NoError(t, err)
	require.Equal(t, byte(' '), b, "lookahead sees through the terminator")

	in.Unterm()

	b, err = in.Look(1)
	require.NoError(t, err)
	require.Equal(t, byte(' '), b, "original byte restored")

	in.Unterm() // nothing pending: no-op

	b, err = in.Look(1)
	require.NoError(t, err)
	require.Equal(t, byte(' '), b)
}

func TestTermOverNulByte(t *testing.T) {
	t.Parallel()

	in := newTestInput(t, "a\x00b")

	for range 2 { // '\n', 'a'
		_, err := in.Advance()
		require.NoError(t, err)
	}

	in.Term()
	in.Unterm()
	in.Unterm() // still a no-op, even with a NUL saved

	b, err := in.Advance()
	require.NoError(t, err)
	require.Zero(t, b, "the literal NUL byte comes back out")

	b, err = in.Advance()
	require.NoError(t, err)
	require.Equal(t, byte('b'), b)
}

func TestInputWrapper(t *testing.T) {
	t.Parallel()

	in := newTestInput(t, "abc")

	_, err := in.Advance()
	require.NoError(t, err)

	in.MarkStart()
	in.Term()

	b, err := in.Lookahead(1)
	require.NoError(t, err)
	require.Equal(t, byte('a'), b)

	require.NoError(t, in.Input())

	b, err = in.Lookahead(1)
	require.NoError(t, err)
	require.Equal(t, byte('b'), b, "terminator reapplied past the consumed byte")
	require.Equal(t, "a", string(in.Text()), "end mark follows the cursor")

	b, err = in.Look(1)
	require.NoError(t, err)
	require.Zero(t, b, "raw view still shows the terminator")

	require.NoError(t, in.Input())
	require.Equal(t, "ab", string(in.Text()))

	in.Unterm()

	b, err = in.Advance()
	require.NoError(t, err)
	require.Equal(t, byte('c'), b)
}

func TestUninputWrapper(t *testing.T) {
	t.Parallel()

	in := newTestInput(t, "abc")

	_, err := in.Advance()
	require.NoError(t, err)

	in.MarkStart()
	in.Term()

	require.NoError(t, in.Input()) // consume 'a'

	require.NoError(t, in.Uninput('X'))

	b, err := in.Lookahead(1)
	require.NoError(t, err)
	require.Equal(t, byte('X'), b, "replacement byte visible through the terminator")

	in.Unterm()

	var got []byte

	for {
		b, err := in.Advance()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)

		got = append(got, b)
	}

	require.Equal(t, "Xbc", string(got))
}

func TestUninputOntoStartMark(t *testing.T) {
	t.Parallel()

	// Retreating exactly onto the start mark is a fully honored
	// pushback, so the replacement byte is written there.
	in := newTestInput(t, "ab")

	_, err := in.Advance()
	require.NoError(t, err)

	in.MarkStart()

	b, err := in.Advance()
	require.NoError(t, err)
	require.Equal(t, byte('a'), b)

	require.NoError(t, in.Uninput('Q'))

	b, err = in.Advance()
	require.NoError(t, err)
	require.Equal(t, byte('Q'), b)

	b, err = in.Advance()
	require.NoError(t, err)
	require.Equal(t, byte('b'), b)
}

func TestUninputAtStartMark(t *testing.T) {
	t.Parallel()

	in := newTestInput(t, "z")

	_, err := in.Advance()
	require.NoError(t, err)

	in.MarkStart()

	require.ErrorIs(t, in.Uninput('q'), ErrPushback)
}

func TestFlushBufClearsTerminator(t *testing.T) {
	t.Parallel()

	in := newTestInput(t, "some input here")

	for range 5 {
		_, err := in.Advance()
		require.NoError(t, err)
	}

	in.MarkStart()
	in.Term()
	require.NoError(t, in.FlushBuf())

	raw, err := in.Look(1)
	require.NoError(t, err)

	seen, err := in.Lookahead(1)
	require.NoError(t, err)
	require.Equal(t, raw, seen, "no terminator pending after a forced flush")
	require.Equal(t, byte(' '), seen)
}
