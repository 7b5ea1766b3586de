// Package cli implements the snaphu-watch commands.
package cli

import (
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	readme     string
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand performs the check.
func NewRootCmd() *cobra.Command {
	var global globalFlags
	var check checkFlags

	rootCmd := &cobra.Command{
		Use:   "snaphu-watch",
		Short: "Check whether a newer snaphu release is available upstream",
		Long: `snaphu-watch compares the latest snaphu release archive published on the
upstream download page with the version recorded in the local README.

It only detects new releases: nothing is downloaded or changed. The result is
printed as GitHub Actions workflow commands by default so a pipeline can act on it.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), global, check)
		},
	}

	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "Path to a YAML settings file (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVar(&global.readme, "readme", "", "Path to the README recording the local version")
	check.addFlags(rootCmd)

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(newCheckCmd(&global))
	rootCmd.AddCommand(newLocalCmd(&global))
	rootCmd.AddCommand(newRemoteCmd(&global))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
