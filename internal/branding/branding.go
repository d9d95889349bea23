// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only has to edit that file to rename the
// tool, its config file, and its environment variable prefix.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	ConfigFile       string `yaml:"config_file"`
	EnvPrefix        string `yaml:"env_prefix"`
	GoModule         string `yaml:"go_module"`
	DefaultOutputDir string `yaml:"default_output_dir"`
	DefaultCreateDir string `yaml:"default_create_dir"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:          "simple-shadcn",
			DisplayName:      "Simple Shadcn",
			Description:      "Build shadcn-compatible registry items from your own components",
			ConfigFile:       "simple-shadcn.json",
			EnvPrefix:        "SIMPLE_SHADCN",
			GoModule:         "github.com/simple-shadcn/cli",
			DefaultOutputDir: "public/r",
			DefaultCreateDir: "public/registry",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "simple-shadcn").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfigFile returns the project config file name (e.g., "simple-shadcn.json").
func ConfigFile() string { load(); return defaults.ConfigFile }

// EnvPrefix returns the environment variable prefix (e.g., "SIMPLE_SHADCN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// DefaultOutputDir is where `build` writes when the config names no outputDir.
func DefaultOutputDir() string { load(); return defaults.DefaultOutputDir }

// DefaultCreateDir is the directory offered by `create` when none is given.
func DefaultCreateDir() string { load(); return defaults.DefaultCreateDir }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("outputDir") → "SIMPLE_SHADCN_OUTPUTDIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
