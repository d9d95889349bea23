package cli

import (
	"fmt"

	"github.com/simple-shadcn/cli/internal/config"
	"github.com/spf13/cobra"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a starter simple-shadcn.json in the current directory (or at --config).

The file names the registry directory read by "build" and the directory the
item files are written to. Edit it before running "build".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.WriteDefault(path, initForce); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSuccess(out, "Created %s", path)
		fmt.Fprint(out, dimStyle.Render(string(config.ExampleJSON())))
		return nil
	},
}
