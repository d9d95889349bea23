package cli

import (
	"errors"
	"fmt"

	"github.com/simple-shadcn/cli/internal/config"
	"github.com/simple-shadcn/cli/internal/registry"
	"github.com/simple-shadcn/cli/internal/schema"
	"github.com/spf13/cobra"
)

// loadConfig reads the project config. A missing file is reported with the
// starter example so the user knows what to create.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, config.ErrNotFound) {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintf(errOut, "Create %s in your project root with the following structure, or run \"init\":\n", config.DefaultPath())
		fmt.Fprint(errOut, string(config.ExampleJSON()))
	}
	return cfg, err
}

// loadRegistry returns the validated registry named by cfg: the index file
// when one is configured, otherwise the items discovered in the registry
// directory.
func loadRegistry(cfg *config.Config, v *schema.Validator) (schema.Registry, error) {
	if cfg.RegistryIndex != "" {
		log.Debug().Str("index", cfg.RegistryIndex).Msg("loading registry index")
		return v.LoadRegistry(cfg.RegistryIndex)
	}

	log.Debug().Str("dir", cfg.RegistryDirectory).Msg("discovering registry items")
	discovered, err := registry.Discover(cfg.RegistryDirectory, cfg.Blocks)
	if err != nil {
		return nil, err
	}
	return v.ParseRegistry(discovered)
}
