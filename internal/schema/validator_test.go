package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidate_SchemaCompiles(t *testing.T) {
	item, reg, err := getSchemas()
	require.NoError(t, err)
	assert.NotNil(t, item)
	assert.NotNil(t, reg)
}

func TestParseItem_MinimalItemAccepted(t *testing.T) {
	item, err := NewValidator().ParseItem(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, TypeUI, item.Type, "type defaults to registry:ui")
	assert.Empty(t, item.Name)
	assert.Nil(t, item.Files)
	assert.Nil(t, item.Dependencies)
}

func TestParseItem_FullItem(t *testing.T) {
	raw := map[string]any{
		"name":                 "button",
		"type":                 "registry:ui",
		"description":          "A button",
		"dependencies":         []any{"@radix-ui/react-slot", "clsx", "clsx"},
		"devDependencies":      []any{"@types/react"},
		"registryDependencies": []any{"utils"},
		"files": []any{
			map[string]any{"path": "ui/button.tsx", "type": "registry:ui", "target": "components/ui/button.tsx"},
			map[string]any{"path": "lib/utils.ts", "type": "registry:lib"},
		},
	}

	item, err := NewValidator().ParseItem(raw)
	require.NoError(t, err)

	assert.Equal(t, "button", item.Name)
	assert.Equal(t, "A button", item.Description)
	assert.Equal(t, []string{"@radix-ui/react-slot", "clsx", "clsx"}, item.Dependencies, "order and duplicates are kept")
	assert.Equal(t, []string{"@types/react"}, item.DevDependencies)
	assert.Equal(t, []string{"utils"}, item.RegistryDependencies)
	require.Len(t, item.Files, 2)
	assert.Equal(t, "ui/button.tsx", item.Files[0].Path)
	assert.Equal(t, "components/ui/button.tsx", item.Files[0].Target)
	assert.Nil(t, item.Files[0].Content)
	assert.Equal(t, TypeLib, item.Files[1].Type)
}

func TestParseItem_ShortAliasesCanonicalized(t *testing.T) {
	item, err := NewValidator().ParseItem(map[string]any{
		"name":  "button",
		"type":  "ui",
		"files": []any{map[string]any{"path": "src/use-x.ts", "type": "hook"}},
	})
	require.NoError(t, err)
	assert.Equal(t, TypeUI, item.Type)
	assert.Equal(t, TypeHook, item.Files[0].Type)
}

func TestParseItem_DerivesNameFromFirstFile(t *testing.T) {
	item, err := NewValidator().ParseItem(map[string]any{
		"files": []any{
			map[string]any{"path": "foo/bar.tsx", "type": "registry:ui"},
			map[string]any{"path": "foo/baz.ts", "type": "registry:lib"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "bar", item.Name)
}

func TestParseItem_DoesNotMutateInput(t *testing.T) {
	files := []any{map[string]any{"path": "foo/bar.tsx", "type": "ui"}}
	raw := map[string]any{"files": files}

	_, err := NewValidator().ParseItem(raw)
	require.NoError(t, err)

	assert.NotContains(t, raw, "name")
	assert.NotContains(t, raw, "type")
	assert.Equal(t, "ui", files[0].(map[string]any)["type"])
}

func TestParseItem_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		wantPath string
		keyword  string
	}{
		{"type not in enumeration", map[string]any{"type": "registry:page"}, "/type", "enum"},
		{"type wrong primitive", map[string]any{"type": 3}, "/type", "type"},
		{"files not a sequence", map[string]any{"files": "ui/button.tsx"}, "/files", "type"},
		{"dependencies wrong element", map[string]any{"dependencies": []any{"react", 1}}, "/dependencies/1", "type"},
		{"file missing path", map[string]any{"files": []any{map[string]any{"type": "registry:ui"}}}, "/files/0", "required"},
		{"file missing type", map[string]any{"files": []any{map[string]any{"path": "a.tsx"}}}, "/files/0", "required"},
		{"file empty path", map[string]any{"files": []any{map[string]any{"path": "", "type": "registry:ui"}}}, "/files/0/path", "minLength"},
		{"name not a string", map[string]any{"name": []any{"x"}}, "/name", "type"},
		{"item not an object", []any{"x"}, "", "type"},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ParseItem(tt.raw)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T", err)
			require.NotEmpty(t, ve.Issues)

			found := false
			for _, issue := range ve.Issues {
				if issue.Path == tt.wantPath && issue.Keyword == tt.keyword {
					found = true
					assert.NotEmpty(t, issue.Message)
				}
			}
			assert.True(t, found, "no %s issue at %q in %v", tt.keyword, tt.wantPath, ve.Issues)
		})
	}
}

func TestParseItem_ReportsEveryViolation(t *testing.T) {
	_, err := NewValidator().ParseItem(map[string]any{
		"name":  1,
		"type":  "registry:page",
		"files": []any{map[string]any{"path": 2, "type": "nope"}},
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	paths := map[string]bool{}
	for _, issue := range ve.Issues {
		paths[issue.Path] = true
	}
	for _, want := range []string{"/name", "/type", "/files/0/path", "/files/0/type"} {
		assert.True(t, paths[want], "missing issue for %s in %v", want, ve.Issues)
	}
}

func TestParseItem_BlockCapability(t *testing.T) {
	raw := map[string]any{
		"name":  "dashboard",
		"type":  "registry:block",
		"files": []any{map[string]any{"path": "blocks/dashboard.tsx", "type": "block"}},
	}

	_, err := NewValidator().ParseItem(raw)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Issues, 2)
	assert.Equal(t, "/files/0/type", ve.Issues[0].Path)
	assert.Equal(t, "/type", ve.Issues[1].Path)

	item, err := NewValidator(WithBlocks(true)).ParseItem(raw)
	require.NoError(t, err)
	assert.Equal(t, TypeBlock, item.Type)
	assert.Equal(t, TypeBlock, item.Files[0].Type)
}

func TestParseRegistry_ReportsAllElements(t *testing.T) {
	raw := []any{
		map[string]any{"name": "ok", "type": "registry:ui"},
		map[string]any{"name": "bad-type", "type": "registry:page"},
		map[string]any{"name": "ok-too"},
		map[string]any{"name": "bad-files", "files": "nope"},
	}

	_, err := NewValidator().ParseRegistry(raw)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, KindRegistry, ve.Kind)

	paths := map[string]bool{}
	for _, issue := range ve.Issues {
		paths[issue.Path] = true
	}
	assert.True(t, paths["/1/type"], "issues: %v", ve.Issues)
	assert.True(t, paths["/3/files"], "issues: %v", ve.Issues)
	assert.Contains(t, err.Error(), "invalid registry")
}

func TestParseRegistry_BlockAndSchemaIssuesTogether(t *testing.T) {
	raw := []any{
		map[string]any{"name": "a", "type": "block"},
		map[string]any{"name": "b", "type": "bogus"},
		map[string]any{"name": "c", "files": []any{
			map[string]any{"path": "x.tsx", "type": "registry:block"},
			map[string]any{"type": "ui"},
		}},
	}

	_, err := NewValidator().ParseRegistry(raw)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	var paths []string
	for _, issue := range ve.Issues {
		paths = append(paths, issue.Path)
	}
	assert.Equal(t, []string{"/0/type", "/1/type", "/2/files/0/type", "/2/files/1"}, paths)
	assert.Contains(t, ve.Issues[0].Message, "not enabled")
	assert.Contains(t, ve.Issues[2].Message, "not enabled")
}

func TestParseItem_BlockWithSchemaViolation(t *testing.T) {
	_, err := NewValidator().ParseItem(map[string]any{"name": 1, "type": "block"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Issues, 2)
	assert.Equal(t, "/name", ve.Issues[0].Path)
	assert.Equal(t, "/type", ve.Issues[1].Path)
}

func TestEffectiveType(t *testing.T) {
	assert.Equal(t, TypeUI, (&RegistryItem{}).EffectiveType())
	assert.Equal(t, TypeHook, (&RegistryItem{Type: "hook"}).EffectiveType())
	assert.Equal(t, TypeLib, (&RegistryItem{Type: TypeLib}).EffectiveType())
}

func TestNormalized(t *testing.T) {
	item := &RegistryItem{Type: "ui", Files: []RegistryItemFile{{Path: "src/button.tsx", Type: "ui"}}}
	n := item.Normalized()
	assert.Equal(t, "button", n.Name)
	assert.Equal(t, TypeUI, n.Type)
	assert.Equal(t, TypeUI, n.Files[0].Type)
	assert.Equal(t, ItemType("ui"), item.Type, "the receiver is left alone")
	assert.Empty(t, item.Name)
}

func TestParseRegistry_PreservesOrder(t *testing.T) {
	reg, err := NewValidator().ParseRegistry([]any{
		map[string]any{"name": "c"},
		map[string]any{"name": "a"},
		map[string]any{"name": "b", "type": "registry:hook"},
	})
	require.NoError(t, err)
	require.Len(t, reg, 3)
	assert.Equal(t, "c", reg[0].Name)
	assert.Equal(t, "a", reg[1].Name)
	assert.Equal(t, "b", reg[2].Name)
	assert.Equal(t, TypeHook, reg[2].Type)
	assert.Equal(t, TypeUI, reg[0].Type)
}

func TestParseRegistry_NotASequence(t *testing.T) {
	_, err := NewValidator().ParseRegistry(map[string]any{"name": "x"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "", ve.Issues[0].Path)
}

func TestParseRegistry_Empty(t *testing.T) {
	reg, err := NewValidator().ParseRegistry([]any{})
	require.NoError(t, err)
	assert.Empty(t, reg)
}

func TestCheckItem_TypedValue(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.CheckItem(&RegistryItem{
		Name:  "button",
		Type:  TypeUI,
		Files: []RegistryItemFile{{Path: "ui/button.tsx", Type: TypeUI, Content: strPtr("X")}},
	}))

	err := v.CheckItem(&RegistryItem{Name: "x", Type: "registry:page"})
	assert.Error(t, err)
}

func TestCheckResolved(t *testing.T) {
	v := NewValidator()
	resolved := &RegistryItem{
		Name:  "button",
		Type:  TypeUI,
		Files: []RegistryItemFile{{Path: "ui/button.tsx", Type: TypeUI, Content: strPtr("")}},
	}
	assert.NoError(t, v.CheckResolved(resolved), "empty content is still content")

	tests := []struct {
		name string
		item *RegistryItem
		path string
	}{
		{"missing name", &RegistryItem{Type: TypeUI}, "/name"},
		{"name escapes directory", &RegistryItem{Name: "../evil", Type: TypeUI}, "/name"},
		{"name is dot-dot", &RegistryItem{Name: "..", Type: TypeUI}, "/name"},
		{"unresolved file", &RegistryItem{Name: "b", Type: TypeUI, Files: []RegistryItemFile{{Path: "ui/b.tsx", Type: TypeUI}}}, "/files/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.CheckResolved(tt.item)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.path, ve.Issues[0].Path)
		})
	}
}

func TestValidate_ResultShape(t *testing.T) {
	v := NewValidator()

	res, err := v.Validate(map[string]any{"name": "x"}, KindItem)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Issues)

	res, err = v.Validate(map[string]any{"type": "nope"}, KindItem)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Issues)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Kind: KindItem, Issues: []ValidationIssue{
		{Path: "/type", Message: "bad type"},
		{Path: "", Message: "bad root"},
	}}
	assert.Equal(t, "invalid registry item (2 issues): /type: bad type; (root): bad root", err.Error())
}

func TestNameFromPath(t *testing.T) {
	tests := map[string]string{
		"foo/bar.tsx":         "bar",
		"button.tsx":          "button",
		"hooks/use-x.test.ts": "use-x.test",
		"noext":               "noext",
	}
	for in, want := range tests {
		assert.Equal(t, want, NameFromPath(in), in)
	}
}

func TestClone_IsDeep(t *testing.T) {
	orig := &RegistryItem{
		Name:         "a",
		Dependencies: []string{"x"},
		Files:        []RegistryItemFile{{Path: "a.tsx", Type: TypeUI, Content: strPtr("1")}},
	}
	c := orig.Clone()
	c.Dependencies[0] = "y"
	*c.Files[0].Content = "2"
	c.Files[0].Path = "b.tsx"

	assert.Equal(t, "x", orig.Dependencies[0])
	assert.Equal(t, "1", *orig.Files[0].Content)
	assert.Equal(t, "a.tsx", orig.Files[0].Path)
}
