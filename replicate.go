package main

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// DefaultOutput is where compiled programs are written, relative to the cwd
const DefaultOutput = "a.out"

// outputMode is rwxr-xr-x
const outputMode os.FileMode = 0o755

// Compile writes a copy of the executable at selfPath, followed by
// MagicMarker, to outputPath. An existing file at outputPath is truncated.
func Compile(selfPath, outputPath string) (err error) {
	compiler, err := os.Open(selfPath)
	if err != nil {
		return ioError("Could not open files for compilation: permission denied", err)
	}
	defer compiler.Close()

	output, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputMode)
	if err != nil {
		return ioError("Could not open files for compilation: permission denied", err)
	}
	defer func() {
		if cerr := output.Close(); cerr != nil && err == nil {
			err = ioError("Could not output compiled program: permission denied", cerr)
		}
	}()

	// OpenFile only applies the mode when creating, and the umask may strip bits
	if err := output.Chmod(outputMode); err != nil {
		return ioError("Could not output compiled program: permission denied", err)
	}

	return replicate(bufio.NewReader(compiler), output)
}

// replicate copies all of image to w and appends the marker
func replicate(image io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)

	// Copy the entire compiler to the final executable.
	// Read and write failures are told apart for the diagnostic.
	buf := make([]byte, 32*1024)
	for {
		n, rerr := image.Read(buf)
		if n > 0 {
			if _, werr := bw.Write(buf[:n]); werr != nil {
				return ioError("Could not output compiled program: permission denied", werr)
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return ioError("Could not run compiler: permission denied", rerr)
		}
	}

	if _, err := bw.WriteString(MagicMarker); err != nil {
		return ioError("Could not output compiled program: permission denied", err)
	}
	if err := bw.Flush(); err != nil {
		return ioError("Could not output compiled program: permission denied", err)
	}
	return nil
}
