package lexer

import "fmt"

type Location struct {
	Filename string
	Line     int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.Filename, l.Line)
}

func (l Location) Errorf(format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{l}, args...)...)
}
