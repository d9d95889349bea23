package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simple-shadcn/cli/internal/schema"
	"golang.org/x/sync/errgroup"
)

// Resolver reads the declared files of an item and remaps them into their
// output buckets.
type Resolver struct {
	validator  *schema.Validator
	sourceRoot string
	opts       options
}

// NewResolver creates a Resolver reading files relative to sourceRoot. An
// empty sourceRoot reads declared paths as given, relative to the working
// directory.
func NewResolver(v *schema.Validator, sourceRoot string, opts ...Option) *Resolver {
	return &Resolver{
		validator:  v,
		sourceRoot: sourceRoot,
		opts:       newOptions(opts),
	}
}

// Resolve returns a new item whose files carry their content and remapped
// paths, in declaration order, with defaults applied and types canonical.
// The input item is not modified. If any file cannot be read the whole item
// fails with a *ResolveError.
func (r *Resolver) Resolve(ctx context.Context, item *schema.RegistryItem) (*schema.RegistryItem, error) {
	out := item.Normalized()
	declared := out.Files
	out.Files = nil

	if len(declared) > 0 {
		files, err := r.readFiles(ctx, declared)
		if err != nil {
			return nil, err
		}
		out.Files = files
	}

	if err := r.validator.CheckResolved(out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInconsistent, err)
	}
	return out, nil
}

// readFiles reads every declared file concurrently. Each goroutine writes
// only its own slot, so the result keeps declaration order.
func (r *Resolver) readFiles(ctx context.Context, declared []schema.RegistryItemFile) ([]schema.RegistryItemFile, error) {
	files := make([]schema.RegistryItemFile, len(declared))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.concurrency)
	for i, f := range declared {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			src := r.sourcePath(f.Path)
			data, err := os.ReadFile(src)
			if err != nil {
				return &ResolveError{Path: src, Err: err}
			}
			content := string(data)

			files[i] = schema.RegistryItemFile{
				Path:    RemapFile(f.Type, f.Path),
				Type:    f.Type,
				Content: &content,
			}
			r.opts.log.Debug().
				Str("source", src).
				Str("path", files[i].Path).
				Int("bytes", len(data)).
				Msg("read registry file")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// sourcePath joins a declared path onto the source root. Absolute declared
// paths are used as they are.
func (r *Resolver) sourcePath(declared string) string {
	p := filepath.FromSlash(declared)
	if r.sourceRoot == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.sourceRoot, p)
}
