package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and its parents. It is a no-op when dir exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether something exists at path.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// OutputPath returns where an artifact is written inside dir.
func OutputPath(dir string, art *Artifact) string {
	return filepath.Join(dir, art.FileName())
}

// WriteArtifact writes the artifact into dir, replacing any existing file,
// and returns the path written.
func WriteArtifact(dir string, art *Artifact) (string, error) {
	path := OutputPath(dir, art)
	if err := os.WriteFile(path, art.JSON, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
