package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/simple-shadcn/cli/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_BlockedByFile(t *testing.T) {
	file := writeFile(t, t.TempDir(), "file", "x")
	assert.Error(t, EnsureDir(filepath.Join(file, "sub")))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "x.json", "{}")

	ok, err := FileExists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(filepath.Join(dir, "y.json"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteArtifact(t *testing.T) {
	dir := t.TempDir()
	art := &Artifact{Item: &schema.RegistryItem{Name: "button"}, JSON: []byte(`{"name":"button"}`)}

	path, err := WriteArtifact(dir, art)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "button.json"), path)
	assert.Equal(t, path, OutputPath(dir, art))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"button"}`, string(data))
}
