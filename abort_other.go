//go:build !unix

package main

import "os"

// abort ends the process with the status of a runtime crash, since there is
// no kill(2) to send SIGSEGV with. Replaced in tests.
var abort = func() {
	os.Exit(crashExitCode)
}
