package registry

import (
	"path"
	"path/filepath"

	"github.com/simple-shadcn/cli/internal/schema"
)

// outputDirs maps a canonical file type to its output bucket.
var outputDirs = map[schema.ItemType]string{
	schema.TypeUI:    "ui",
	schema.TypeLib:   "lib",
	schema.TypeHook:  "hooks",
	schema.TypeBlock: "blocks",
}

// RemapPath places a file's base name into the output bucket for its type.
// Short aliases ("ui", "hook", ...) map like their canonical form; unknown
// types get no directory prefix. The result always uses "/".
func RemapPath(t schema.ItemType, baseName string) string {
	dir, ok := outputDirs[t.Canonical()]
	if !ok {
		return baseName
	}
	return path.Join(dir, baseName)
}

// RemapFile is RemapPath for a declared source path: directories are
// stripped, the extension is kept. "src/components/button.tsx" declared as
// registry:ui becomes "ui/button.tsx".
func RemapFile(t schema.ItemType, declaredPath string) string {
	return RemapPath(t, filepath.Base(filepath.FromSlash(declaredPath)))
}
