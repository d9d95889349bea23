// Package registry turns declared registry items into content-complete JSON
// artifacts. It remaps each declared file into a canonical output bucket by
// its type, reads file contents from a source root, re-validates the result,
// and writes one "<name>.json" file per item. It can also derive a registry
// from a directory laid out in ui/, lib/, hooks/ and blocks/ folders.
package registry
