package registry

import (
	"github.com/rs/zerolog"
	"github.com/simple-shadcn/cli/internal/schema"
)

// Artifact is a resolved item and its serialized form.
type Artifact struct {
	Item     *schema.RegistryItem
	JSON     []byte
	Warnings []string // dependency lint warnings; never fatal
}

// FileName returns the output file name, "<name>.json".
func (a *Artifact) FileName() string {
	return a.Item.Name + ".json"
}

// BuildResult captures the outcome of a batch build.
type BuildResult struct {
	OutputDir string
	Written   []string // output paths, in registry order
	Warnings  []string
}

// ProgressFunc is called after each item of a batch build is written.
type ProgressFunc func(item *schema.RegistryItem, path string)

const defaultConcurrency = 8

type options struct {
	log         zerolog.Logger
	concurrency int
	progress    ProgressFunc
}

// Option configures a Resolver or Builder.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithConcurrency bounds the number of files of one item read at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithProgress sets a callback invoked after each item is written.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

func newOptions(opts []Option) options {
	o := options{log: zerolog.Nop(), concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
