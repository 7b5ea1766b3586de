package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snaphu-watch/snaphu-watch/internal/config"
)

func newRemoteCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remote",
		Short: "Show the latest snaphu release published upstream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(global.configPath)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			finder, err := newFinder(settings)
			if err != nil {
				return err
			}

			release, err := finder.FindLatest(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to find latest release: %w", err)
			}

			out := cmd.OutOrStdout()
			p := newPainter(out)
			if !release.Found() {
				fmt.Fprintln(out, p.render(styleWarning, "No release archives found at "+finder.SourceURL()))
				return nil
			}

			fmt.Fprintf(out, "%s %s\n", p.render(styleBrand, "snaphu"), p.render(styleVersion, release.Version))
			fmt.Fprintf(out, "  %s %s\n", p.render(styleLabel, "Archive"), p.render(styleValue, release.DownloadURL))
			return nil
		},
	}
}
