//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// abort ends the process abnormally. Replaced in tests.
var abort = func() {
	// The runtime treats a SIGSEGV sent by kill(2) as a crash and exits
	// with crashExitCode, so this only returns if the kill itself failed.
	if err := unix.Kill(unix.Getpid(), unix.SIGSEGV); err != nil {
		os.Exit(crashExitCode)
	}
	select {}
}
