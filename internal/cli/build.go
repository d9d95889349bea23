package cli

import (
	"fmt"

	"github.com/simple-shadcn/cli/internal/registry"
	"github.com/simple-shadcn/cli/internal/schema"
	"github.com/spf13/cobra"
)

var buildOutputDir string

func init() {
	buildCmd.Flags().StringVarP(&buildOutputDir, "output-dir", "o", "", "Output directory (default: outputDir from the config)")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build every registry item from the config",
	Long: `Build one JSON file per registry item into the output directory.

Items come from the registryIndex file when the config names one, otherwise
every file under the ui/, lib/ and hooks/ folders of registryDirectory (and
blocks/ when "blocks" is true) becomes one item. Declared file paths are read
relative to registryDirectory. Existing output files are overwritten; if any
item fails, nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	outputDir := cfg.OutputDir
	if buildOutputDir != "" {
		outputDir = buildOutputDir
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, dimStyle.Render("Using registry directory: "+cfg.RegistryDirectory))

	v := schema.NewValidator(schema.WithBlocks(cfg.Blocks))
	reg, err := loadRegistry(cfg, v)
	if err != nil {
		return err
	}
	if len(reg) == 0 {
		printWarning(out, "No registry items found in %s", cfg.RegistryDirectory)
		return nil
	}

	b := registry.NewBuilder(v,
		registry.WithLogger(log),
		registry.WithProgress(func(item *schema.RegistryItem, path string) {
			printSuccess(out, "%s %s", item.Name, dimStyle.Render("→ "+path))
		}),
	)
	result, err := b.Build(cmd.Context(), reg, cfg.RegistryDirectory, outputDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nBuilt %d registry item(s) into %s\n", len(result.Written), result.OutputDir)
	if n := len(result.Warnings); n > 0 {
		printWarning(out, "%d dependency warning(s); run with --verbose for details", n)
	}
	return nil
}
