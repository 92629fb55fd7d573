// Package lexer is a hand-written scanner over the bounded input
// window. It shows the intended calling discipline: bracket every
// lexeme with MarkStart/MarkEnd, undo overshoot with Pushback, and take
// the text out before the next compaction can move it.
package lexer

import (
	"errors"
	"io"

	"github.com/corani/lexbuf/input"
)

type Lexer struct {
	in *input.Input
}

func New(in *input.Input) *Lexer {
	return &Lexer{in: in}
}

// Tokens drains the stream.
func (lx *Lexer) Tokens() ([]Token, error) {
	var tokens []Token

	for {
		token, err := lx.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tokens, nil
			}

			return nil, err
		}

		tokens = append(tokens, token)
	}
}

// Next returns the next token, or io.EOF once the stream is drained.
func (lx *Lexer) Next() (Token, error) {
	for {
		// Re-marking before every byte keeps the window free to
		// compact behind us while we skip filler.
		lx.in.MarkStart()

		c, err := lx.advance()
		if err != nil {
			return Token{}, err
		}

		switch {
		case isWhitespace(c):
			continue
		case c == '/':
			if c2, err := lx.in.Lookahead(1); err == nil && c2 == '/' {
				if err := lx.skipComment(); err != nil {
					return Token{}, err
				}

				continue
			}

			return lx.symbol(c)
		case isAlpha(c):
			return lx.word()
		case isNumeric(c):
			return lx.number()
		case c == '"':
			return lx.str()
		default:
			return lx.symbol(c)
		}
	}
}

func (lx *Lexer) loc() Location {
	return Location{Filename: lx.in.Filename(), Line: lx.in.Line()}
}

// advance reads one byte between tokens. A refused flush is recovered
// by forcing one: nothing before the freshly re-marked start is needed.
func (lx *Lexer) advance() (byte, error) {
	c, err := lx.in.Advance()
	if errors.Is(err, input.ErrBufferFull) {
		if err := lx.in.FlushBuf(); err != nil {
			return 0, err
		}

		c, err = lx.in.Advance()
	}

	return c, err
}

// consume reads one byte inside a token. Here a refused flush means the
// lexeme itself no longer fits, which is a hard error.
func (lx *Lexer) consume() (byte, error) {
	c, err := lx.in.Advance()
	if errors.Is(err, input.ErrBufferFull) {
		return 0, lx.loc().Errorf("lexeme too long: %v", err)
	}

	return c, err
}

func (lx *Lexer) skipComment() error {
	for {
		c, err := lx.advance()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		if c == '\n' {
			// Leave the newline for the whitespace skip.
			lx.in.Pushback(1)

			return nil
		}
	}
}

func (lx *Lexer) word() (Token, error) {
	loc := lx.loc()

	for {
		c, err := lx.in.Look(1)
		if err != nil || !isAlphanumeric(c) {
			break
		}

		if _, err := lx.consume(); err != nil {
			return Token{}, err
		}
	}

	m := lx.in.MarkEnd()
	text := string(lx.in.Text())

	_ = lx.in.SetPrev(m)

	return newWordToken(text, loc), nil
}

func (lx *Lexer) number() (Token, error) {
	loc := lx.loc()

	for {
		c, err := lx.in.Look(1)
		if err != nil || !isNumeric(c) {
			break
		}

		if _, err := lx.consume(); err != nil {
			return Token{}, err
		}
	}

	m := lx.in.MarkEnd()
	text := string(lx.in.Text())

	_ = lx.in.SetPrev(m)

	return newNumberToken(text, loc)
}

func (lx *Lexer) str() (Token, error) {
	loc := lx.loc()
	closed := false

	for {
		c, err := lx.consume()
		if errors.Is(err, io.EOF) {
			// EOF inside the literal: return what we have.
			break
		}

		if err != nil {
			return Token{}, err
		}

		if c == '"' {
			closed = true
			break
		}

		if c == '\\' {
			if _, err := lx.consume(); err != nil && !errors.Is(err, io.EOF) {
				return Token{}, err
			}
		}
	}

	m := lx.in.MarkEnd()
	raw := lx.in.Text()

	// Strip the quotes; the closing one may be missing at EOF.
	text := string(raw[1:])
	if closed {
		text = text[:len(text)-1]
	}

	_ = lx.in.SetPrev(m)

	return Token{Type: TypeString, Text: text, Location: loc}, nil
}

func (lx *Lexer) symbol(c byte) (Token, error) {
	loc := lx.loc()
	prefix := []byte{c}

	mmToken := ""
	mmType := TypeEOF

	for {
		foundPrefix := false

		for k, v := range symbols {
			if len(k) >= len(prefix) && k[:len(prefix)] == string(prefix) {
				foundPrefix = true

				if k == string(prefix) {
					mmToken = k
					mmType = v
				}
			}
		}

		if !foundPrefix {
			break
		}

		c2, err := lx.consume()
		if err != nil {
			break
		}

		prefix = append(prefix, c2)
	}

	if mmToken == "" {
		return Token{}, loc.Errorf("unexpected character %q", c)
	}

	if over := len(prefix) - len(mmToken); over > 0 {
		lx.in.Pushback(over)
	}

	m := lx.in.MarkEnd()

	_ = lx.in.SetPrev(m)

	return Token{Type: mmType, Text: mmToken, Location: loc}, nil
}

func isAlphanumeric(a byte) bool { return isAlpha(a) || isNumeric(a) }
func isAlpha(a byte) bool        { return (a >= 'a' && a <= 'z') || (a >= 'A' && a <= 'Z') || a == '_' }
func isNumeric(d byte) bool      { return d >= '0' && d <= '9' }
func isWhitespace(c byte) bool   { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
