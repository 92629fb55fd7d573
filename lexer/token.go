package lexer

import (
	"slices"
	"strconv"
)

type TokenType string

const (
	TypeEOF       TokenType = "EOF"
	TypeIdent     TokenType = "Identifier"
	TypeKeyword   TokenType = "Keyword"
	TypeNumber    TokenType = "Number"
	TypeBool      TokenType = "Bool"      // "true" / "false"
	TypeString    TokenType = "String"    // Double-quoted string
	TypeLparen    TokenType = "LeftParen" // "("
	TypeRparen    TokenType = "RightParen"
	TypeLbrace    TokenType = "LeftBrace"
	TypeRbrace    TokenType = "RightBrace"
	TypeDot       TokenType = "Dot"
	TypeComma     TokenType = "Comma"
	TypeColon     TokenType = "Colon"
	TypeSemicolon TokenType = "Semicolon"
	TypeArrow     TokenType = "Arrow"  // "->"
	TypeAssign    TokenType = "Assign" // "="
	TypePlus      TokenType = "Plus"
	TypeMinus     TokenType = "Minus"
	TypeStar      TokenType = "Star"
	TypeSlash     TokenType = "Slash"
	TypePercent   TokenType = "Percent"
	TypeEq        TokenType = "Eq" // "=="
	TypeNe        TokenType = "Ne" // "!="
	TypeLt        TokenType = "Lt"
	TypeLe        TokenType = "Le"
	TypeGt        TokenType = "Gt"
	TypeGe        TokenType = "Ge"
)

// symbols is a map of string to TokenType for maximal munch.
var symbols = map[string]TokenType{
	"(":  TypeLparen,
	")":  TypeRparen,
	"{":  TypeLbrace,
	"}":  TypeRbrace,
	".":  TypeDot,
	",":  TypeComma,
	":":  TypeColon,
	";":  TypeSemicolon,
	"->": TypeArrow,
	"=":  TypeAssign,
	"+":  TypePlus,
	"-":  TypeMinus,
	"*":  TypeStar,
	"/":  TypeSlash,
	"%":  TypePercent,
	"==": TypeEq,
	"!=": TypeNe,
	"<":  TypeLt,
	"<=": TypeLe,
	">":  TypeGt,
	">=": TypeGe,
}

var keywords = []string{
	"break",
	"continue",
	"else",
	"for",
	"func",
	"if",
	"return",
}

type Token struct {
	Type     TokenType
	Text     string
	Value    int
	Location Location
}

func newWordToken(text string, location Location) Token {
	switch {
	case text == "true" || text == "false":
		return Token{Type: TypeBool, Text: text, Location: location}
	case slices.Contains(keywords, text):
		return Token{Type: TypeKeyword, Text: text, Location: location}
	default:
		return Token{Type: TypeIdent, Text: text, Location: location}
	}
}

func newNumberToken(text string, location Location) (Token, error) {
	v, err := strconv.Atoi(text)
	if err != nil {
		return Token{}, location.Errorf("invalid number %q: %v", text, err)
	}

	return Token{Type: TypeNumber, Text: text, Value: v, Location: location}, nil
}
