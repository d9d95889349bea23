package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/simple-shadcn/cli/internal/schema"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registry items build would write",
	Long:  `List the items of the configured registry without reading any file content.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(cfg, schema.NewValidator(schema.WithBlocks(cfg.Blocks)))
	if err != nil {
		return err
	}

	if listJSON {
		return printListJSON(cmd, reg)
	}
	if len(reg) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No registry items found.")
		return nil
	}
	return printListTable(cmd, reg)
}

func printListTable(cmd *cobra.Command, reg schema.Registry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tFILES")
	for _, item := range reg {
		paths := make([]string, len(item.Files))
		for i, f := range item.Files {
			paths[i] = f.Path
		}
		files := strings.Join(paths, ", ")
		if files == "" {
			files = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Name, item.Type.Short(), files)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, reg schema.Registry) error {
	if reg == nil {
		reg = schema.Registry{}
	}
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
