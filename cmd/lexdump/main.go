package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/corani/lexbuf/input"
	"github.com/corani/lexbuf/lexer"
)

func main() {
	var chars, help bool

	flag.BoolVar(&chars, "chars", false, "dump the raw character stream instead of tokens")
	flag.BoolVar(&help, "help", false, "show help message")

	flag.Parse()

	if help {
		fmt.Println("Usage: lexdump [options] [source_file]")
		fmt.Println("Reads from stdin when no source file is given.")
		fmt.Println("Options:")
		flag.PrintDefaults()

		return
	}

	srcFile := ""
	if flag.NArg() > 0 {
		srcFile = flag.Arg(0)
	}

	in := input.New()

	if err := in.NewFile(srcFile); err != nil {
		fmt.Fprintf(os.Stderr, "can't open %s: %v\n", srcFile, err)
		os.Exit(1)
	}

	var err error
	if chars {
		err = dumpChars(in)
	} else {
		err = dumpTokens(in)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func dumpChars(in *input.Input) error {
	for {
		c, err := in.Advance()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if errors.Is(err, input.ErrBufferFull) {
			// No lexeme to protect here, so force the flush.
			if err := in.FlushBuf(); err != nil {
				return err
			}

			continue
		}

		if err != nil {
			return err
		}

		fmt.Printf("%4d: %q\n", in.Line(), c)
	}
}

func dumpTokens(in *input.Input) error {
	lx := lexer.New(in)

	for {
		tok, err := lx.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		fmt.Printf("%s\t%s\t%q\n", tok.Location, tok.Type, tok.Text)
	}
}
