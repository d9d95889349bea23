package schema

import (
	"path/filepath"
	"strings"
)

// ItemType is the kind of a registry item or of one of its files.
type ItemType string

// Canonical item types, as written to the persisted JSON.
const (
	TypeUI    ItemType = "registry:ui"
	TypeLib   ItemType = "registry:lib"
	TypeHook  ItemType = "registry:hook"
	TypeBlock ItemType = "registry:block"
)

const typePrefix = "registry:"

// ItemTypes returns the accepted item types. TypeBlock is only included when
// blocks is true.
func ItemTypes(blocks bool) []ItemType {
	types := []ItemType{TypeUI, TypeLib, TypeHook}
	if blocks {
		types = append(types, TypeBlock)
	}
	return types
}

// Canonical maps a short alias ("ui", "hook", ...) to its canonical
// "registry:" form. Values that are already canonical, or unknown, are
// returned unchanged.
func (t ItemType) Canonical() ItemType {
	switch t {
	case "ui", "lib", "hook", "block":
		return ItemType(typePrefix + string(t))
	}
	return t
}

// Short returns the type without its "registry:" prefix.
func (t ItemType) Short() string {
	return strings.TrimPrefix(string(t), typePrefix)
}

// RegistryItemFile is one declared file of an item. Content is nil until the
// item is resolved; a resolved empty file has a non-nil pointer to "".
type RegistryItemFile struct {
	Path    string   `json:"path" yaml:"path"`
	Content *string  `json:"content,omitempty" yaml:"content,omitempty"`
	Type    ItemType `json:"type" yaml:"type"`
	Target  string   `json:"target,omitempty" yaml:"target,omitempty"`
}

// RegistryItem is one named unit of the registry.
type RegistryItem struct {
	Name                 string             `json:"name,omitempty" yaml:"name,omitempty"`
	Type                 ItemType           `json:"type,omitempty" yaml:"type,omitempty"`
	Description          string             `json:"description,omitempty" yaml:"description,omitempty"`
	Dependencies         []string           `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	DevDependencies      []string           `json:"devDependencies,omitempty" yaml:"devDependencies,omitempty"`
	RegistryDependencies []string           `json:"registryDependencies,omitempty" yaml:"registryDependencies,omitempty"`
	Files                []RegistryItemFile `json:"files,omitempty" yaml:"files,omitempty"`
}

// Registry is an ordered list of items.
type Registry []RegistryItem

// Clone returns a deep copy of the item.
func (it *RegistryItem) Clone() *RegistryItem {
	c := *it
	c.Dependencies = cloneStrings(it.Dependencies)
	c.DevDependencies = cloneStrings(it.DevDependencies)
	c.RegistryDependencies = cloneStrings(it.RegistryDependencies)
	if it.Files != nil {
		c.Files = make([]RegistryItemFile, len(it.Files))
		for i, f := range it.Files {
			if f.Content != nil {
				content := *f.Content
				f.Content = &content
			}
			c.Files[i] = f
		}
	}
	return &c
}

// NameFromPath derives an item name from a file path: the base name with its
// extension removed. "foo/bar.tsx" -> "bar".
func NameFromPath(path string) string {
	base := filepath.Base(filepath.FromSlash(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// EffectiveType returns the item's canonical type, TypeUI when unset.
func (it *RegistryItem) EffectiveType() ItemType {
	if it.Type == "" {
		return TypeUI
	}
	return it.Type.Canonical()
}

// Normalized returns a deep copy with defaults applied: the type defaults to
// TypeUI, short aliases become canonical and a missing name is derived from
// the first file.
func (it *RegistryItem) Normalized() *RegistryItem {
	c := it.Clone()
	c.applyDefaults()
	return c
}

// applyDefaults fills in the type default, canonicalizes aliases and derives
// a missing name from the first declared file.
func (it *RegistryItem) applyDefaults() {
	it.Type = it.EffectiveType()
	for i := range it.Files {
		it.Files[i].Type = it.Files[i].Type.Canonical()
	}
	if it.Name == "" && len(it.Files) > 0 {
		it.Name = NameFromPath(it.Files[0].Path)
	}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
