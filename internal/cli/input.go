package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/mosaic/pattern"
)

// readInput returns the contents of path, or of stdin when path is empty
// or "-".
func readInput(stdin io.Reader, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadPattern reads pattern art from path. The file name becomes the
// pattern name.
func loadPattern(path string) (pattern.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pattern.Pattern{}, err
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return pattern.Parse(filepath.Base(path), lines)
}
