package main

import (
	"os"
)

// A tiny C compiler. It supports one program.

const versionString = "amoguscc 0.0.1"

func main() {
	ctx := NewCommandContext(os.Args)
	ctx.progress("----=[ %s ]=----", versionString)

	if err := RunCLI(ctx); err != nil {
		internalError(ctx.Stderr, err)
	}
}
