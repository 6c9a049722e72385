package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/groupgen/groupgen/internal/branding"
	"github.com/groupgen/groupgen/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags.
var (
	projectDir string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds feature groups: it asks which artifacts a group needs
(controller, model, repository pair), renders them from stubs into the group
directory and prints the manual wiring steps that remain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project-dir", "C", ".", "Project root to generate into")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logging to stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

func newLogger() zerolog.Logger {
	return logging.New(os.Stderr, verbose)
}
