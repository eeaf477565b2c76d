package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/xyproto/env/v2"
)

const (
	ansiRed    = "\033[1;31m"
	ansiBlue   = "\033[1;34m"
	ansiNormal = "\033[0m"
)

// crashExitCode is what the Go runtime exits with after a fatal signal
const crashExitCode = 2

// internalError prints err as an internal compiler error and aborts.
// All error kinds terminate the same way.
func internalError(w io.Writer, err error) {
	unit, message := "Internal", err.Error()
	var ce *CompilerError
	if errors.As(err, &ce) {
		unit, message = ce.Unit, ce.Message
	}

	fmt.Fprint(w, formatInternalError(unit, message, env.Str("NO_COLOR") == ""))
	if verbose() && ce != nil && ce.Err != nil {
		fmt.Fprintf(w, "-> cause: %v\n", ce.Err)
	}

	abort()
}

func formatInternalError(unit, message string, color bool) string {
	if !color {
		return fmt.Sprintf("Internal Compiler Error: %s: %s\n", unit, message)
	}
	return fmt.Sprintf(ansiRed+"Internal Compiler Error: "+ansiBlue+"%s: "+ansiNormal+"%s\n", unit, message)
}

// verbose is set with AMOGUSCC_VERBOSE=1
func verbose() bool {
	return env.Bool("AMOGUSCC_VERBOSE")
}
