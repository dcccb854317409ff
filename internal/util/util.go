// internal/util/util.go
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// WatchableDirs returns rootDir and every subdirectory beneath it,
// skipping hidden directories (.git, .vscode, ...) and build output.
func WatchableDirs(rootDir string) ([]string, error) {
	var dirs []string

	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		name := info.Name()
		if path != rootDir && (strings.HasPrefix(name, ".") || name == "node_modules") {
			return filepath.SkipDir
		}

		dirs = append(dirs, path)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return dirs, nil
}
