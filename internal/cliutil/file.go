package cliutil

import (
	"fmt"
	"io"
	"os"
)

// ReadFile reads the full contents of path, wrapping any error with the
// path for a useful CLI diagnostic.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// ReadStdin reads all of stdin, for tools that accept piped input when no
// -f flag is given.
func ReadStdin() ([]byte, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// WriteFile writes data to path with owner-only permissions, suitable for
// key material as well as plain output files.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
