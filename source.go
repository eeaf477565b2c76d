package main

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// FixedSource is the one working source program
const FixedSource = "#include <stdio.h>\nint main(){puts(\"amogus\");}"

// IsValidSource checks if the file at path contains exactly FixedSource,
// with nothing before or after it
func IsValidSource(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, ioError("Could not open source file: permission denied", err)
	}
	defer f.Close()

	return matchesSource(bufio.NewReader(f))
}

func matchesSource(r io.ByteReader) (bool, error) {
	for i := 0; i < len(FixedSource); i++ {
		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, ioError("Could not read source: permission denied", err)
		}
		if b != FixedSource[i] {
			return false, nil
		}
	}

	_, err := r.ReadByte()
	switch {
	case errors.Is(err, io.EOF):
		return true, nil
	case err != nil:
		return false, ioError("Could not read source: permission denied", err)
	default:
		// trailing bytes
		return false, nil
	}
}
