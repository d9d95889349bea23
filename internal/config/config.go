package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/simple-shadcn/cli/internal/branding"
	"github.com/spf13/viper"
)

const fileType = "json"

// Keys as written in the config file.
const (
	KeyOutputDir         = "outputDir"
	KeyRegistryDirectory = "registryDirectory"
	KeyRegistryIndex     = "registryIndex"
	KeyBlocks            = "blocks"
)

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("configuration file not found")

// Error reports a config file that exists but cannot be used.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Config is the project configuration. Relative directories are resolved
// against the directory holding the config file.
type Config struct {
	OutputDir         string `mapstructure:"outputDir" json:"outputDir"`
	RegistryDirectory string `mapstructure:"registryDirectory" json:"registryDirectory"`
	RegistryIndex     string `mapstructure:"registryIndex" json:"registryIndex,omitempty"`
	Blocks            bool   `mapstructure:"blocks" json:"blocks,omitempty"`

	// Path is the file the configuration was read from.
	Path string `mapstructure:"-" json:"-"`
}

// DefaultPath returns the config file path in the working directory.
func DefaultPath() string {
	return branding.ConfigFile()
}

// Load reads the config file at path, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, &Error{Path: path, Err: err}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(KeyOutputDir, branding.DefaultOutputDir())
	v.SetDefault(KeyBlocks, false)
	// AutomaticEnv only applies to keys viper already knows about.
	v.SetDefault(KeyRegistryDirectory, "")
	v.SetDefault(KeyRegistryIndex, "")

	if err := v.ReadInConfig(); err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("decoding: %w", err)}
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	cfg.resolvePaths()
	return cfg, nil
}

// Validate checks the required keys.
func (c *Config) Validate() error {
	if c.RegistryDirectory == "" {
		return fmt.Errorf("%q is required", KeyRegistryDirectory)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%q must not be empty", KeyOutputDir)
	}
	return nil
}

// resolvePaths makes relative directories relative to the config file.
func (c *Config) resolvePaths() {
	base := filepath.Dir(c.Path)
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	c.OutputDir = resolve(c.OutputDir)
	c.RegistryDirectory = resolve(c.RegistryDirectory)
	c.RegistryIndex = resolve(c.RegistryIndex)
}

// Example returns the starter configuration.
func Example() Config {
	return Config{
		OutputDir:         branding.DefaultOutputDir(),
		RegistryDirectory: "src/registry",
	}
}

// ExampleJSON returns Example formatted the way WriteDefault writes it.
func ExampleJSON() []byte {
	data, _ := json.MarshalIndent(Example(), "", "  ")
	return append(data, '\n')
}

// WriteDefault writes the starter configuration to path. An existing file is
// only replaced when force is true.
func WriteDefault(path string, force bool) error {
	if path == "" {
		path = DefaultPath()
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, ExampleJSON(), 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
