// Package fileio reads and writes whole files for the stego CLI. Every
// failure is wrapped with the path involved so it renders as a precise
// user-facing message, and so I/O errors stay distinguishable from the
// core's format errors.
package fileio

import (
	"fmt"
	"io"
	"os"
)

// Stdout is the path argument that routes output to standard output
// instead of a file.
const Stdout = "-"

// Read returns the entire contents of the file at path.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Write writes data to the file at path, creating or truncating it. The
// Stdout path writes to w instead, which lets embedded output be piped.
func Write(path string, data []byte, w io.Writer) error {
	if path == Stdout {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
