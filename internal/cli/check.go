package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/snaphu-watch/snaphu-watch/internal/config"
	"github.com/snaphu-watch/snaphu-watch/internal/models"
	"github.com/snaphu-watch/snaphu-watch/internal/report"
	"github.com/snaphu-watch/snaphu-watch/internal/updater"
)

type checkFlags struct {
	format       string
	githubOutput string
}

func (f *checkFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", string(report.FormatActions), "Output format: actions, yaml or json")
	cmd.Flags().StringVar(&f.githubOutput, "github-output", "", "Also append key=value outputs to this file (pass \"$GITHUB_OUTPUT\")")
}

func newCheckCmd(global *globalFlags) *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare the latest upstream release with the local README version",
		Long: `Fetch the upstream download page, pick the latest snaphu archive and compare its
version with the one in the local README.

Outputs (actions format):
  new_version_available=true   remote_version=<version>   when they differ
  new_version_available=false                             when they match

Any failure to fetch the page or to read a version is fatal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), *global, flags)
		},
	}
	flags.addFlags(cmd)
	return cmd
}

// runCheck fetches the remote release first, then reads the local version,
// compares them and writes the report.
func runCheck(ctx context.Context, out io.Writer, global globalFlags, flags checkFlags) error {
	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings(global.configPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	finder, err := newFinder(settings)
	if err != nil {
		return err
	}

	log.Printf("[check] Fetching %s", finder.SourceURL())
	remote, err := finder.FindLatest(ctx)
	if err != nil {
		return fmt.Errorf("failed to find latest release: %w", err)
	}

	local, err := readLocal(settings, global.readme)
	if err != nil {
		return err
	}

	result := updater.Compare(remote, local)
	result.SourceURL = finder.SourceURL()

	switch result.Outcome {
	case models.OutcomeMismatch:
		log.Printf("[check] New version available: %s → %s", result.LocalVersion, result.RemoteVersion)
	case models.OutcomeMatch:
		log.Printf("[check] Up to date (%s)", result.LocalVersion)
	}

	if flags.githubOutput != "" {
		if err := report.WriteGitHubOutput(flags.githubOutput, result); err != nil {
			return err
		}
	}

	p := newPainter(out)
	return report.NewWriter(out, format, p.outcomeStyler).Write(result)
}

// newFinder builds the remote finder from settings.
func newFinder(settings *models.Settings) (*updater.Finder, error) {
	pattern, err := regexp.Compile(settings.Source.ArchivePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid archive pattern: %w", err)
	}

	return updater.NewFinder(
		updater.WithSourceURL(settings.Source.URL),
		updater.WithArchiveSuffix(settings.Source.ArchiveSuffix),
		updater.WithNamePrefix(settings.Source.NamePrefix),
		updater.WithArchivePattern(pattern),
	), nil
}

// readLocal reads the local version. The --readme flag takes precedence over
// the settings file.
func readLocal(settings *models.Settings, readmeFlag string) (string, error) {
	pattern, err := regexp.Compile(settings.Local.ReadmePattern)
	if err != nil {
		return "", fmt.Errorf("invalid readme pattern: %w", err)
	}

	explicit := readmeFlag
	if explicit == "" {
		explicit = settings.Local.Readme
	}
	path := config.ResolveReadme(explicit)
	log.Printf("[check] Reading local version from %s", path)

	version, err := updater.NewLocalReader(pattern).Read(path)
	if err != nil {
		return "", fmt.Errorf("failed to read local version: %w", err)
	}
	return version, nil
}
