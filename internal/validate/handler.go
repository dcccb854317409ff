// internal/validate/handler.go
package validate

import (
	"os"
	"path/filepath"
	"strings"
)

// resolveHandler reports whether a "path.exportedSymbol" handler
// reference is backed by a source file under root. The reference must
// split into exactly two dot-separated segments; the file part is
// probed as path + "." + ext for each extension in order. This is a
// pure existence check, file contents are never read.
func resolveHandler(root, handler string, extensions []string) bool {
	parts := strings.Split(handler, ".")
	if len(parts) != 2 {
		return false
	}

	// An unknown runtime has no extension list; nothing can resolve.
	if len(extensions) == 0 {
		return false
	}

	for _, ext := range extensions {
		if _, err := os.Stat(filepath.Join(root, parts[0]+"."+ext)); err == nil {
			return true
		}
	}
	return false
}
