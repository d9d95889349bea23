package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/simple-shadcn/cli/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	configPath string
	verbose    bool

	// log is replaced in PersistentPreRun once flags are parsed.
	log = zerolog.Nop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ./"+branding.ConfigFile()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every file read and written")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` builds shadcn-compatible registry items: JSON descriptors that carry
the content of every file of a component, hook or lib snippet.

Use "create" to describe a single item interactively, or "build" to turn a
whole registry directory into one JSON file per item.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = newLogger(cmd.ErrOrStderr(), verbose)
	},
}

// newLogger returns a console logger. Only warnings are shown unless verbose
// is set.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	if f, ok := w.(*os.File); !ok || f != os.Stderr {
		out.NoColor = true
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Execute runs the root command with build info injected via ldflags. The
// error, if any, has already been printed.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}
