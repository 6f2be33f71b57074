// Package source loads program text from disk for the CLI driver.
// It mirrors the single-shot file-read step of the teacher's
// runFile helper, generalized to report the read failure as an error
// instead of writing directly to stderr and exiting, so the caller
// controls exit-code mapping.
package source

import (
	"fmt"
	"os"
)

// Load reads the full contents of path and returns it as a string.
// Any I/O failure (missing file, permission error, directory instead
// of a file) is wrapped with the path so the caller can report it
// verbatim — matching the original interpreter's
// "Error reading file %s: %s" diagnostic.
func Load(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("Error reading file %s: %w", path, err)
	}
	return string(contents), nil
}
