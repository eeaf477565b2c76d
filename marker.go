package main

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// MagicMarker is appended to every compiled program.
// The leading NUL keeps it from matching any printable tail by accident.
const MagicMarker = "\x00mogusmogusmogus"

// IsCompiledProgram checks if the executable at path ends with MagicMarker
func IsCompiledProgram(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, ioError("Could not run compiler: permission denied", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, ioError("Could not run compiler: permission denied", err)
	}

	// Too short to carry the marker, and seeking would go before the start
	if info.Size() < int64(len(MagicMarker)) {
		return false, nil
	}

	if _, err := f.Seek(-int64(len(MagicMarker)), io.SeekEnd); err != nil {
		return false, ioError("Unknown I/O error occurred", err)
	}

	return hasMarkerTail(bufio.NewReader(f))
}

// hasMarkerTail reads the remaining bytes of r and checks that they are
// exactly MagicMarker, ending at EOF
func hasMarkerTail(r io.ByteReader) (bool, error) {
	for i := 0; i < len(MagicMarker); i++ {
		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, ioError("Could not run compiler: permission denied", err)
		}
		if b != MagicMarker[i] {
			return false, nil
		}
	}

	// The marker matches only if the file ends here too
	if _, err := r.ReadByte(); !errors.Is(err, io.EOF) {
		if err != nil {
			return false, ioError("Could not run compiler: permission denied", err)
		}
		return false, nil
	}
	return true, nil
}
