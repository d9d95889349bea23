// Package schema defines the registry item shape and validates untrusted
// structured input against it. The shape is an embedded JSON Schema compiled
// once; successful validation decodes into a new typed RegistryItem (or
// Registry) with defaults applied, and failures carry every field-level issue
// found. The package also reads registry index files (YAML or JSON) and lints
// npm dependency ranges.
package schema
