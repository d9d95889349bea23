package prompt

import (
	"strings"

	"github.com/simple-shadcn/cli/internal/schema"
)

// FileAnswer is one declared file as entered by the user.
type FileAnswer struct {
	Path string
	Type schema.ItemType
}

// Answers holds the raw fields of an item collected by the create form.
// List fields are comma-separated, exactly as typed.
type Answers struct {
	Name                 string
	Type                 schema.ItemType
	Description          string
	Dependencies         string
	DevDependencies      string
	RegistryDependencies string
	Files                []FileAnswer
}

// SplitList splits a comma-separated answer and trims each element. Empty
// input yields nil so the field is left out of the item.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Raw converts the answers into the untyped form accepted by
// schema.Validator.ParseItem. Optional fields left blank are omitted, so the
// validator applies its own defaults.
func (a *Answers) Raw() map[string]any {
	raw := map[string]any{}
	if name := strings.TrimSpace(a.Name); name != "" {
		raw["name"] = name
	}
	if a.Type != "" {
		raw["type"] = string(a.Type)
	}
	if desc := strings.TrimSpace(a.Description); desc != "" {
		raw["description"] = desc
	}
	for key, val := range map[string]string{
		"dependencies":         a.Dependencies,
		"devDependencies":      a.DevDependencies,
		"registryDependencies": a.RegistryDependencies,
	} {
		if list := SplitList(val); list != nil {
			items := make([]any, len(list))
			for i, s := range list {
				items[i] = s
			}
			raw[key] = items
		}
	}
	if len(a.Files) > 0 {
		files := make([]any, len(a.Files))
		for i, f := range a.Files {
			files[i] = map[string]any{"path": strings.TrimSpace(f.Path), "type": string(f.Type)}
		}
		raw["files"] = files
	}
	return raw
}
