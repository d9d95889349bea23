package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/simple-shadcn/cli/internal/schema"
)

// Builder resolves and serializes registry items.
type Builder struct {
	validator *schema.Validator
	opts      []Option
	o         options
}

// NewBuilder creates a Builder. The options are also passed to the
// resolvers it creates.
func NewBuilder(v *schema.Validator, opts ...Option) *Builder {
	return &Builder{validator: v, opts: opts, o: newOptions(opts)}
}

// DefaultWhitelist returns the item types the single-item flow builds.
func DefaultWhitelist(blocks bool) []schema.ItemType {
	return schema.ItemTypes(blocks)
}

// BuildOne resolves one item with no source root and serializes it. When
// whitelist is non-nil and does not contain the item's canonical type, it
// returns ok=false without reading anything. Writing the artifact is left to the
// caller.
func (b *Builder) BuildOne(ctx context.Context, item *schema.RegistryItem, whitelist []schema.ItemType) (art *Artifact, ok bool, err error) {
	if typ := item.EffectiveType(); whitelist != nil && !slices.Contains(whitelist, typ) {
		b.o.log.Debug().Str("item", item.Name).Str("type", string(typ)).Msg("type not in whitelist, skipping")
		return nil, false, nil
	}

	art, err = b.artifact(ctx, NewResolver(b.validator, "", b.opts...), item)
	if err != nil {
		return nil, false, err
	}
	return art, true, nil
}

// Build resolves every item of reg against sourceRoot and writes one
// "<name>.json" per item into outputDir, overwriting existing files. All
// items are resolved before anything is written, so a failing item leaves
// no partial output; the failure is an *ItemError naming the item.
func (b *Builder) Build(ctx context.Context, reg schema.Registry, sourceRoot, outputDir string) (*BuildResult, error) {
	if err := EnsureDir(outputDir); err != nil {
		return nil, err
	}
	if err := checkNames(reg); err != nil {
		return nil, err
	}

	resolver := NewResolver(b.validator, sourceRoot, b.opts...)
	artifacts := make([]*Artifact, len(reg))
	for i := range reg {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		art, err := b.artifact(ctx, resolver, &reg[i])
		if err != nil {
			return nil, &ItemError{Index: i, Name: reg[i].Name, Err: err}
		}
		artifacts[i] = art
	}

	result := &BuildResult{OutputDir: outputDir}
	for _, art := range artifacts {
		path, err := WriteArtifact(outputDir, art)
		if err != nil {
			return result, err
		}
		b.o.log.Debug().Str("item", art.Item.Name).Str("path", path).Msg("wrote registry item")
		result.Written = append(result.Written, path)
		result.Warnings = append(result.Warnings, art.Warnings...)
		if b.o.progress != nil {
			b.o.progress(art.Item, path)
		}
	}
	return result, nil
}

func (b *Builder) artifact(ctx context.Context, r *Resolver, item *schema.RegistryItem) (*Artifact, error) {
	resolved, err := r.Resolve(ctx, item)
	if err != nil {
		return nil, err
	}
	data, err := Marshal(resolved)
	if err != nil {
		return nil, err
	}
	warnings := schema.LintItem(resolved)
	for _, w := range warnings {
		b.o.log.Warn().Str("item", resolved.Name).Msg(w)
	}
	return &Artifact{Item: resolved, JSON: data, Warnings: warnings}, nil
}

// checkNames rejects unnamed items and names used twice.
func checkNames(reg schema.Registry) error {
	seen := make(map[string]int, len(reg))
	for i, item := range reg {
		if item.Name == "" {
			return &ItemError{Index: i, Err: ErrNoName}
		}
		if first, ok := seen[item.Name]; ok {
			return &ItemError{Index: i, Name: item.Name, Err: fmt.Errorf("%w: also used by item %d", ErrDuplicateName, first)}
		}
		seen[item.Name] = i
	}
	return nil
}

// Marshal serializes an item as 2-space indented JSON. HTML characters are
// left as they are since file contents are full of "<" and ">".
func Marshal(item *schema.RegistryItem) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(item); err != nil {
		return nil, fmt.Errorf("encoding item %s: %w", item.Name, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
