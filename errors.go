package main

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure is fatal, only the printed label differs.
var (
	ErrIO       = errors.New("i/o error")
	ErrArgument = errors.New("argument error")
	ErrTokenize = errors.New("tokenize error")
)

// Units, as printed in front of the message
const (
	unitFileInput      = "File input"
	unitArgumentParser = "Argument parser"
	unitTokenizer      = "Tokenizer"
)

// CompilerError is an internal compiler error, labeled with the unit that found it
type CompilerError struct {
	Kind    error
	Unit    string
	Message string
	Err     error // underlying OS error, if any
}

func (e *CompilerError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Unit, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Unit, e.Message)
}

// Unwrap exposes both the kind and the underlying OS error to errors.Is and errors.As
func (e *CompilerError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(message string, err error) error {
	return &CompilerError{Kind: ErrIO, Unit: unitFileInput, Message: message, Err: err}
}

func argumentError() error {
	return &CompilerError{Kind: ErrArgument, Unit: unitArgumentParser, Message: "Could not parse command-line arguments"}
}

// tokenizeError is reported for any source that is not the one working program
func tokenizeError() error {
	return &CompilerError{Kind: ErrTokenize, Unit: unitTokenizer, Message: "Out of memory!"}
}
