package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFiles saves every generated file under outDir, creating folders as
// needed and overwriting existing files. It returns the paths written.
func WriteFiles(outDir string, out *Output) ([]string, error) {
	var written []string
	for _, f := range out.Files() {
		path := filepath.Join(outDir, filepath.FromSlash(f.Name))

		// Ensure the kind folder exists
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return written, fmt.Errorf("creating folder for %s: %w", f.Name, err)
		}

		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
