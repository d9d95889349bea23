package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/simple-shadcn/cli/internal/schema"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file (and its parents) under root.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// parseItem builds a typed item from raw data the way callers do.
func parseItem(t *testing.T, raw map[string]any) *schema.RegistryItem {
	t.Helper()
	item, err := schema.NewValidator(schema.WithBlocks(true)).ParseItem(raw)
	require.NoError(t, err)
	return item
}
