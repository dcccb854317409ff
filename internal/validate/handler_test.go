package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, name string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("// stub\n"), 0o644))
}

func TestResolveHandler(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "handlers/hello.js")
	writeFile(t, root, "src/world.py")

	assert.True(t, resolveHandler(root, "handlers/hello.handle", []string{"ts", "js"}))
	assert.True(t, resolveHandler(root, "src/world.handle", []string{"py"}))
	assert.False(t, resolveHandler(root, "handlers/missing.handle", []string{"ts", "js"}))

	// Wrong extension list for the file on disk.
	assert.False(t, resolveHandler(root, "handlers/hello.handle", []string{"py"}))
}

func TestResolveHandlerSegmentCount(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "handlers/hello.js")

	// Three or more dot-separated segments never resolve, regardless of
	// what exists on disk.
	assert.False(t, resolveHandler(root, "handlers.hello.handle", []string{"js"}))
	assert.False(t, resolveHandler(root, "handlers/hello", []string{"js"}))
	assert.False(t, resolveHandler(root, "", []string{"js"}))
}

func TestResolveHandlerWithoutExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "handlers/hello.js")

	assert.False(t, resolveHandler(root, "handlers/hello.handle", nil))
	assert.False(t, resolveHandler(root, "handlers/hello.handle", []string{}))
}
