//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to an isolated project.
type testEnv struct {
	ProjectDir  string // contains simple-shadcn.json
	RegistryDir string // registryDirectory of the config
	OutputDir   string // outputDir of the config
}

// setupTestEnv creates a project with a config file and an empty registry
// directory.
func setupTestEnv(t *testing.T, config string) *testEnv {
	t.Helper()

	project := t.TempDir()
	env := &testEnv{
		ProjectDir:  project,
		RegistryDir: filepath.Join(project, "registry"),
		OutputDir:   filepath.Join(project, "public", "r"),
	}
	if err := os.MkdirAll(env.RegistryDir, 0755); err != nil {
		t.Fatalf("creating registry dir: %v", err)
	}
	writeFile(t, project, "simple-shadcn.json", config)
	return env
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}
