package registry

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/simple-shadcn/cli/internal/schema"
)

// category is a top-level folder of a registry directory and the item type
// of every file found under it.
type category struct {
	dir  string
	kind schema.ItemType
}

// knownCategories are the folders scanned by Discover, in scan order.
var knownCategories = []category{
	{"ui", schema.TypeUI},
	{"lib", schema.TypeLib},
	{"hooks", schema.TypeHook},
	{"blocks", schema.TypeBlock},
}

// excludedNames are skipped during discovery, as are dotfiles.
var excludedNames = map[string]bool{
	"node_modules": true,
}

// Discover derives a registry from a directory laid out in category folders
// (ui/, lib/, hooks/ and, when blocks is true, blocks/). Every regular file
// becomes one item named after the file, with a single file whose path is
// relative to root. Missing category folders are skipped; a missing root is
// an error.
func Discover(root string, blocks bool) (schema.Registry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("registry directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("registry directory %s is not a directory", root)
	}

	reg := schema.Registry{}
	for _, cat := range knownCategories {
		if cat.kind == schema.TypeBlock && !blocks {
			continue
		}
		items, err := walkCategory(root, cat)
		if err != nil {
			return nil, err
		}
		reg = append(reg, items...)
	}
	return reg, nil
}

// walkCategory walks one category folder in lexical order.
func walkCategory(root string, cat category) ([]schema.RegistryItem, error) {
	catDir := filepath.Join(root, cat.dir)
	if _, err := os.Stat(catDir); err != nil {
		return nil, nil
	}

	var items []schema.RegistryItem
	err := filepath.WalkDir(catDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != catDir && shouldExclude(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		items = append(items, schema.RegistryItem{
			Name:  schema.NameFromPath(rel),
			Type:  cat.kind,
			Files: []schema.RegistryItemFile{{Path: rel, Type: cat.kind}},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", catDir, err)
	}
	return items, nil
}

// shouldExclude returns true for dotfiles and excluded folder names.
func shouldExclude(name string) bool {
	return strings.HasPrefix(name, ".") || excludedNames[name]
}
