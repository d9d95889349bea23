package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/simple-shadcn/cli/internal/schema"
	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels a form (ctrl+c or esc).
var ErrAborted = errors.New("operation cancelled")

// Prompter runs the create forms against a pair of streams.
type Prompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
	types      []schema.ItemType
}

// New returns a Prompter reading from in and writing to out. Accessible mode
// is enabled when in is not a terminal. types lists the item types offered
// in the select fields.
func New(in io.Reader, out io.Writer, types []schema.ItemType) *Prompter {
	return &Prompter{
		in:         in,
		out:        out,
		accessible: !isTerminal(in),
		types:      types,
	}
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (p *Prompter) run(groups ...*huh.Group) error {
	err := huh.NewForm(groups...).
		WithAccessible(p.accessible).
		WithInput(p.in).
		WithOutput(p.out).
		WithShowHelp(!p.accessible).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

func (p *Prompter) typeOptions() []huh.Option[schema.ItemType] {
	opts := make([]huh.Option[schema.ItemType], len(p.types))
	for i, t := range p.types {
		opts[i] = huh.NewOption(string(t), t)
	}
	return opts
}

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

// OutputDir asks for the directory the item file is written to.
func (p *Prompter) OutputDir(def string) (string, error) {
	dir := def
	err := p.run(huh.NewGroup(
		huh.NewInput().
			Title("Output directory").
			Description(fmt.Sprintf("Where to save the JSON file (default: %s)", def)).
			Placeholder(def).
			Value(&dir),
	))
	if err != nil {
		return "", err
	}
	if dir = strings.TrimSpace(dir); dir == "" {
		dir = def
	}
	return dir, nil
}

// Item asks for the item fields, then for files until the user declines to
// add another. At least one file is always collected.
func (p *Prompter) Item() (*Answers, error) {
	a := &Answers{Type: schema.TypeUI}
	err := p.run(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Description("Optional, defaults to the first file name").
			Value(&a.Name),
		huh.NewSelect[schema.ItemType]().
			Title("Item type").
			Options(p.typeOptions()...).
			Value(&a.Type),
		huh.NewInput().
			Title("Description").
			Description("Optional").
			Value(&a.Description),
		huh.NewInput().
			Title("npm dependencies").
			Description("Comma-separated, optional").
			Value(&a.Dependencies),
		huh.NewInput().
			Title("npm dev dependencies").
			Description("Comma-separated, optional").
			Value(&a.DevDependencies),
		huh.NewInput().
			Title("Registry dependencies").
			Description("shadcn registry items, comma-separated, optional").
			Value(&a.RegistryDependencies),
	))
	if err != nil {
		return nil, err
	}

	for {
		f, more, err := p.file(len(a.Files) + 1)
		if err != nil {
			return nil, err
		}
		a.Files = append(a.Files, f)
		if !more {
			return a, nil
		}
	}
}

func (p *Prompter) file(n int) (FileAnswer, bool, error) {
	f := FileAnswer{Type: schema.TypeUI}
	var more bool
	err := p.run(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Path of file %d", n)).
			Validate(required("path")).
			Value(&f.Path),
		huh.NewSelect[schema.ItemType]().
			Title("File type").
			Options(p.typeOptions()...).
			Value(&f.Type),
		huh.NewConfirm().
			Title("Add another file?").
			Value(&more),
	))
	return f, more, err
}

// ConfirmOverwrite asks whether an existing output file may be replaced.
func (p *Prompter) ConfirmOverwrite(path string) (bool, error) {
	var ok bool
	err := p.run(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("%s already exists. Overwrite it?", path)).
			Affirmative("Overwrite").
			Negative("Cancel").
			Value(&ok),
	))
	return ok, err
}
