package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snaphu-watch/snaphu-watch/internal/config"
)

func newLocalCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "local",
		Short: "Show the snaphu version recorded in the local README",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(global.configPath)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			version, err := readLocal(settings, global.readme)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := newPainter(out)
			fmt.Fprintf(out, "%s %s\n", p.render(styleBrand, "snaphu"), p.render(styleVersion, version))
			return nil
		},
	}
}
