package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.json
var schemaFS embed.FS

const (
	schemaBase        = "https://simple-shadcn.dev/schema/"
	itemSchemaURL     = schemaBase + "registry-item.json"
	registrySchemaURL = schemaBase + "registry.json"
)

var (
	itemSchema     *jsonschema.Schema
	registrySchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Kind selects which shape a raw value is validated against.
type Kind int

const (
	KindItem Kind = iota
	KindRegistry
)

func (k Kind) String() string {
	if k == KindRegistry {
		return "registry"
	}
	return "registry item"
}

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single field-level violation.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/type", "/files/0/path", "/1/name")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed (required, type, enum, ...)
}

func (i ValidationIssue) String() string {
	path := i.Path
	if path == "" {
		path = "(root)"
	}
	return path + ": " + i.Message
}

// ValidationError is returned by the Parse and Check functions when the input
// does not conform. It always carries at least one issue.
type ValidationError struct {
	Kind   Kind
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	noun := "issues"
	if len(e.Issues) == 1 {
		noun = "issue"
	}
	return fmt.Sprintf("invalid %s (%d %s): %s", e.Kind, len(e.Issues), noun, strings.Join(msgs, "; "))
}

// Validator validates registry items and registries. The zero value rejects
// registry:block; use WithBlocks to accept it.
type Validator struct {
	blocks bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithBlocks enables the registry:block item type.
func WithBlocks(enabled bool) Option {
	return func(v *Validator) { v.blocks = enabled }
}

// NewValidator creates a Validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Blocks reports whether registry:block is accepted.
func (v *Validator) Blocks() bool { return v.blocks }

// getSchemas compiles the embedded JSON schemas once.
func getSchemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		for name, url := range map[string]string{
			"schema/registry-item.json": itemSchemaURL,
			"schema/registry.json":      registrySchemaURL,
		} {
			data, err := schemaFS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("reading embedded schema %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", name, err)
				return
			}
			if err := c.AddResource(url, doc); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", name, err)
				return
			}
		}
		if itemSchema, compileErr = c.Compile(itemSchemaURL); compileErr != nil {
			compileErr = fmt.Errorf("compiling item schema: %w", compileErr)
			return
		}
		if registrySchema, compileErr = c.Compile(registrySchemaURL); compileErr != nil {
			compileErr = fmt.Errorf("compiling registry schema: %w", compileErr)
		}
	})
	return itemSchema, registrySchema, compileErr
}

// Validate checks a raw structured value (as decoded from JSON or YAML)
// against the item or registry shape. The error return is for encoding or
// schema compilation failures; violations are reported in the result.
func (v *Validator) Validate(raw any, kind Kind) (*ValidationResult, error) {
	_, res, err := v.check(raw, kind)
	return res, err
}

// ParseItem validates raw and returns a new typed item with the type default
// applied, aliases canonicalized and the name derived when absent.
func (v *Validator) ParseItem(raw any) (*RegistryItem, error) {
	reg, res, err := v.check(raw, KindItem)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, &ValidationError{Kind: KindItem, Issues: res.Issues}
	}
	return &reg[0], nil
}

// ParseRegistry validates a raw sequence of items. It fails as a whole when
// any element is invalid and reports the issues of every element.
func (v *Validator) ParseRegistry(raw any) (Registry, error) {
	reg, res, err := v.check(raw, KindRegistry)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, &ValidationError{Kind: KindRegistry, Issues: res.Issues}
	}
	return reg, nil
}

// CheckItem re-validates an already typed item.
func (v *Validator) CheckItem(item *RegistryItem) error {
	_, err := v.ParseItem(item)
	return err
}

// CheckResolved validates the persisted form of an item: the schema must
// hold, the name must be a usable file stem, and every file must carry
// content.
func (v *Validator) CheckResolved(item *RegistryItem) error {
	if err := v.CheckItem(item); err != nil {
		return err
	}

	var issues []ValidationIssue
	if item.Name == "" {
		issues = append(issues, ValidationIssue{Path: "/name", Keyword: "required", Message: "missing property 'name'"})
	} else if !validFileStem(item.Name) {
		issues = append(issues, ValidationIssue{Path: "/name", Keyword: "pattern", Message: fmt.Sprintf("%q cannot be used as a file name", item.Name)})
	}
	for i, f := range item.Files {
		if f.Content == nil {
			issues = append(issues, ValidationIssue{
				Path:    "/files/" + strconv.Itoa(i),
				Keyword: "required",
				Message: "missing property 'content'",
			})
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Kind: KindItem, Issues: issues}
	}
	return nil
}

// check runs the schema and capability checks and, on success, decodes raw
// into typed items. For KindItem the returned registry has one element.
func (v *Validator) check(raw any, kind Kind) (Registry, *ValidationResult, error) {
	itemSch, regSch, err := getSchemas()
	if err != nil {
		return nil, nil, fmt.Errorf("loading schema: %w", err)
	}
	sch := itemSch
	if kind == KindRegistry {
		sch = regSch
	}

	// Round-trip through JSON so typed values, YAML documents and generic
	// maps all reach the validator in the same form. This also leaves raw
	// untouched.
	data, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	// Capability issues are collected from the raw instance so they are
	// reported alongside schema violations of other elements.
	issues := v.capabilityIssues(inst, kind)
	if err := sch.Validate(inst); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		issues = append(extractIssues(validationErr), issues...)
	}
	if len(issues) > 0 {
		sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
		return nil, &ValidationResult{Issues: issues}, nil
	}

	var reg Registry
	if kind == KindRegistry {
		err = json.Unmarshal(data, &reg)
	} else {
		reg = make(Registry, 1)
		err = json.Unmarshal(data, &reg[0])
	}
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", kind, err)
	}
	for i := range reg {
		reg[i].applyDefaults()
	}
	return reg, &ValidationResult{Valid: true}, nil
}

// capabilityIssues reports uses of registry:block, in either spelling, when
// blocks are disabled. inst is the decoded JSON instance.
func (v *Validator) capabilityIssues(inst any, kind Kind) []ValidationIssue {
	if v.blocks {
		return nil
	}
	if kind == KindItem {
		return blockIssues(inst, "")
	}
	list, _ := inst.([]any)
	var issues []ValidationIssue
	for i, el := range list {
		issues = append(issues, blockIssues(el, "/"+strconv.Itoa(i))...)
	}
	return issues
}

func blockIssues(el any, prefix string) []ValidationIssue {
	const msg = "registry:block is not enabled (set \"blocks\": true in the config)"
	m, ok := el.(map[string]any)
	if !ok {
		return nil
	}
	var issues []ValidationIssue
	if isBlock(m["type"]) {
		issues = append(issues, ValidationIssue{Path: prefix + "/type", Keyword: "enum", Message: msg})
	}
	files, _ := m["files"].([]any)
	for i, f := range files {
		if fm, ok := f.(map[string]any); ok && isBlock(fm["type"]) {
			issues = append(issues, ValidationIssue{Path: prefix + "/files/" + strconv.Itoa(i) + "/type", Keyword: "enum", Message: msg})
		}
	}
	return issues
}

func isBlock(v any) bool {
	s, ok := v.(string)
	return ok && ItemType(s).Canonical() == TypeBlock
}

// extractIssues walks the ValidationError tree and returns leaf-level issues,
// sorted by path so reports are stable.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	issues = deduplicateIssues(issues)
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}

// collectValidationIssues recursively walks the error tree to find leaf errors.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Container errors carry no field-level information.
		if keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}

// normalizeYAML converts YAML-decoded values to JSON-compatible types.
// yaml.v3 decodes mappings with non-string keys as map[interface{}]interface{},
// which encoding/json refuses.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}

// validFileStem reports whether name can be used as "<name>.json" inside
// the output directory without escaping it.
func validFileStem(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.ContainsRune(name, 0)
}
