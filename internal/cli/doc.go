// Package cli defines the Cobra command tree for the simple-shadcn CLI. Each
// file in this package registers one top-level command (create, build, list,
// init, version) with the root command. Commands delegate to internal
// packages for the registry work and only handle flags, prompting and output.
package cli
