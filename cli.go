package main

import (
	"fmt"
	"io"
	"os"
)

// cli.go - the compiler driver
//
//	amoguscc <file.c>    compile to a.out
//	./a.out              run a compiled program

// CommandContext holds the execution context for one invocation
type CommandContext struct {
	Args       []string // arguments after the program name
	SelfPath   string   // path of the running executable
	OutputPath string
	Stdout     io.Writer
	Stderr     io.Writer
	Verbose    bool
}

// NewCommandContext creates a CommandContext for the current process
func NewCommandContext(args []string) *CommandContext {
	argv0 := ""
	if len(args) > 0 {
		argv0, args = args[0], args[1:]
	}
	return &CommandContext{
		Args:       args,
		SelfPath:   selfPath(argv0),
		OutputPath: DefaultOutput,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Verbose:    verbose(),
	}
}

// selfPath returns the path of the running executable, or argv0 if the OS can not tell
func selfPath(argv0 string) string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	return argv0
}

// RunCLI is the main entry point for the compiler.
// A compiled program prints its output and ignores any arguments.
// Otherwise exactly one source file is compiled to ctx.OutputPath.
func RunCLI(ctx *CommandContext) error {
	ctx.progress("-> checking %s", ctx.SelfPath)
	isProgram, err := IsCompiledProgram(ctx.SelfPath)
	if err != nil {
		return err
	}
	if isProgram {
		return runProgram(ctx)
	}

	if len(ctx.Args) != 1 {
		return argumentError()
	}
	sourceFile := ctx.Args[0]

	ctx.progress("-> validating %s", sourceFile)
	valid, err := IsValidSource(sourceFile)
	if err != nil {
		return err
	}
	if !valid {
		return tokenizeError()
	}

	ctx.progress("-> writing %s", ctx.OutputPath)
	return Compile(ctx.SelfPath, ctx.OutputPath)
}

// runProgram is everything a compiled program does
func runProgram(ctx *CommandContext) error {
	_, err := fmt.Fprintln(ctx.Stdout, "amogus")
	return err
}

func (ctx *CommandContext) progress(format string, args ...any) {
	if ctx.Verbose {
		fmt.Fprintf(ctx.Stderr, format+"\n", args...)
	}
}
