package cli

import (
	"errors"
	"fmt"

	"github.com/simple-shadcn/cli/internal/branding"
	"github.com/simple-shadcn/cli/internal/config"
	"github.com/simple-shadcn/cli/internal/prompt"
	"github.com/simple-shadcn/cli/internal/registry"
	"github.com/simple-shadcn/cli/internal/schema"
	"github.com/spf13/cobra"
)

var (
	createOutputDir string
	createYes       bool
)

func init() {
	createCmd.Flags().StringVarP(&createOutputDir, "output-dir", "o", "", "Output directory (asked for when not set)")
	createCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "Overwrite an existing item file without asking")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Describe one registry item interactively and write its JSON file",
	Long: `Ask for the fields of one registry item (name, type, dependencies and its
files), read every file from disk relative to the current directory, and write
<name>.json into the output directory.

When stdin is not a terminal the questions are asked line by line, so answers
can be piped in.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	blocks, err := createBlocks()
	if err != nil {
		return err
	}
	v := schema.NewValidator(schema.WithBlocks(blocks))
	p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr(), schema.ItemTypes(blocks))

	err = collectAndWrite(cmd, v, p, blocks)
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}
	return err
}

// createBlocks reads the blocks flag from the config, if there is one. The
// config is optional for create.
func createBlocks() (bool, error) {
	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, config.ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return cfg.Blocks, nil
}

func collectAndWrite(cmd *cobra.Command, v *schema.Validator, p *prompt.Prompter, blocks bool) error {
	out := cmd.OutOrStdout()

	outputDir := createOutputDir
	if outputDir == "" {
		dir, err := p.OutputDir(branding.DefaultCreateDir())
		if err != nil {
			return err
		}
		outputDir = dir
	}

	answers, err := p.Item()
	if err != nil {
		return err
	}
	item, err := v.ParseItem(answers.Raw())
	if err != nil {
		return fmt.Errorf("invalid registry item: %w", err)
	}

	b := registry.NewBuilder(v, registry.WithLogger(log))
	art, ok, err := b.BuildOne(cmd.Context(), item, registry.DefaultWhitelist(blocks))
	if err != nil {
		return err
	}
	// The validator already rejects types outside the whitelist, so this only
	// fires if the two ever diverge.
	if !ok {
		printWarning(out, "Items of type %s are not built; nothing was written.", item.Type)
		return nil
	}

	if err := registry.EnsureDir(outputDir); err != nil {
		return err
	}
	path := registry.OutputPath(outputDir, art)
	exists, err := registry.FileExists(path)
	if err != nil {
		return err
	}
	if exists && !createYes {
		overwrite, err := p.ConfirmOverwrite(path)
		if err != nil {
			return err
		}
		if !overwrite {
			return prompt.ErrAborted
		}
	}

	if _, err := registry.WriteArtifact(outputDir, art); err != nil {
		return err
	}
	printSuccess(out, "Registry item saved to %s", path)
	return nil
}
