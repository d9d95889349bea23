package registry

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrInconsistent wraps a schema failure of an item after resolution.
	// Inputs that already passed validation should never produce it.
	ErrInconsistent = errors.New("resolved item failed validation")

	// ErrDuplicateName is returned when two items of a registry would write
	// the same output file.
	ErrDuplicateName = errors.New("duplicate item name")

	// ErrNoName is returned when an item has no name and no file to derive one from.
	ErrNoName = errors.New("item has no name")
)

// ResolveError reports a declared file that could not be read.
type ResolveError struct {
	Path string // path that was read (source root joined)
	Err  error
}

func (e *ResolveError) Error() string {
	reason := e.Err
	var pe *fs.PathError
	if errors.As(e.Err, &pe) {
		reason = pe.Err
	}
	return fmt.Sprintf("cannot read %s: %v", e.Path, reason)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// ItemError identifies the registry item a batch build failed on.
type ItemError struct {
	Index int
	Name  string
	Err   error
}

func (e *ItemError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("item %d (%s): %v", e.Index, name, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
