package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/snaphu-watch/snaphu-watch/internal/buildinfo"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			p := newPainter(out)
			fmt.Fprintf(out, "  %s %s\n",
				p.render(styleBrand, "snaphu-watch"),
				p.render(styleVersion, buildinfo.Version),
			)
			fmt.Fprintf(out, "    %s  %s\n", p.render(styleLabel, "Commit"), p.render(styleValue, buildinfo.CommitHash))
			fmt.Fprintf(out, "    %s   %s\n", p.render(styleLabel, "Built"), p.render(styleValue, buildinfo.BuildDate))
			fmt.Fprintf(out, "    %s %s\n", p.render(styleLabel, "OS/Arch"), p.render(styleValue, runtime.GOOS+"/"+runtime.GOARCH))
			fmt.Fprintf(out, "    %s      %s\n", p.render(styleLabel, "Go"), p.render(styleValue, runtime.Version()))
			fmt.Fprintf(out, "    %s  %s\n", p.render(styleLabel, "Agent"), p.render(styleHint, buildinfo.UserAgent()))
		},
	}
}
