package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWordToken(t *testing.T) {
	t.Parallel()

	tt := []struct {
		text string
		want TokenType
	}{
		{text: "foo", want: TypeIdent},
		{text: "return", want: TypeKeyword},
		{text: "if", want: TypeKeyword},
		{text: "true", want: TypeBool},
		{text: "false", want: TypeBool},
		{text: "truer", want: TypeIdent},
		{text: "_x1", want: TypeIdent},
	}

	for _, tc := range tt {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			tok := newWordToken(tc.text, Location{Filename: "t.in", Line: 1})
			require.Equal(t, tc.want, tok.Type)
			require.Equal(t, tc.text, tok.Text)
		})
	}
}

func TestNewNumberToken(t *testing.T) {
	t.Parallel()

	tok, err := newNumberToken("42", Location{Filename: "t.in", Line: 3})
	require.NoError(t, err)
	require.Equal(t, TypeNumber, tok.Type)
	require.Equal(t, 42, tok.Value)
	require.Equal(t, 3, tok.Location.Line)

	_, err = newNumberToken("99999999999999999999", Location{Filename: "t.in", Line: 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid number")
}

func TestLocationString(t *testing.T) {
	t.Parallel()

	loc := Location{Filename: "dir/file.in", Line: 12}
	require.Equal(t, "dir/file.in:12", loc.String())

	err := loc.Errorf("bad %s", "thing")
	require.EqualError(t, err, "dir/file.in:12: bad thing")
}
