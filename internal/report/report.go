// Package report renders a check result for CI pipelines and humans.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/snaphu-watch/snaphu-watch/internal/models"
)

// Format selects how a result is written to stdout.
type Format string

const (
	FormatActions Format = "actions" // GitHub Actions workflow commands plus a human line
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatActions, FormatYAML, FormatJSON}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected one of: actions, yaml, json)", s)
}

// Output keys shared by the workflow commands and the GitHub output file.
const (
	KeyNewVersionAvailable = "new_version_available"
	KeyRemoteVersion       = "remote_version"
	KeyDownloadURL         = "download_url"
)

// Human-readable messages.
const (
	MsgNoAutoUpdate = "Automatic update is not implemented: update the local code manually."
	MsgUpToDate     = "Local version matches remote: nothing to do"
)

// Styler decorates a human-readable line for the given outcome.
type Styler func(outcome models.Outcome, line string) string

func plain(_ models.Outcome, line string) string { return line }

// Writer writes results in a fixed format.
type Writer struct {
	out    io.Writer
	format Format
	style  Styler
}

// NewWriter creates a Writer. A nil style writes human lines unstyled.
func NewWriter(out io.Writer, format Format, style Styler) *Writer {
	if style == nil {
		style = plain
	}
	return &Writer{out: out, format: format, style: style}
}

// document is the structured form of a result.
type document struct {
	models.Result       `yaml:",inline"`
	NewVersionAvailable bool `yaml:"new_version_available" json:"new_version_available"`
}

// Write renders result.
func (w *Writer) Write(result models.Result) error {
	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(document{Result: result, NewVersionAvailable: result.NewVersionAvailable()}); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(document{Result: result, NewVersionAvailable: result.NewVersionAvailable()}); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	default:
		return w.writeActions(result)
	}
}

func (w *Writer) writeActions(result models.Result) error {
	var lines []string
	switch result.Outcome {
	case models.OutcomeMismatch:
		lines = []string{
			setOutput(KeyNewVersionAvailable, "true"),
			setOutput(KeyRemoteVersion, result.RemoteVersion),
			w.style(result.Outcome, MsgNoAutoUpdate),
		}
	case models.OutcomeRemoteEmpty:
		lines = []string{
			setOutput(KeyNewVersionAvailable, "false"),
			w.style(result.Outcome, fmt.Sprintf("No release archives found at %s: nothing to compare", result.SourceURL)),
		}
	default:
		lines = []string{
			setOutput(KeyNewVersionAvailable, "false"),
			w.style(result.Outcome, MsgUpToDate),
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w.out, line); err != nil {
			return err
		}
	}
	return nil
}

func setOutput(name, value string) string {
	return fmt.Sprintf("::set-output name=%s::%s", name, value)
}

// OutputPairs returns the key/value pairs exported to later workflow steps.
func OutputPairs(result models.Result) [][2]string {
	pairs := [][2]string{{KeyNewVersionAvailable, fmt.Sprint(result.NewVersionAvailable())}}
	if result.NewVersionAvailable() {
		pairs = append(pairs,
			[2]string{KeyRemoteVersion, result.RemoteVersion},
			[2]string{KeyDownloadURL, result.DownloadURL},
		)
	}
	return pairs
}

// WriteGitHubOutput appends the result as key=value lines to the GitHub
// Actions output file at path.
func WriteGitHubOutput(path string, result models.Result) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open github output %s: %w", path, err)
	}
	defer f.Close()

	for _, kv := range OutputPairs(result) {
		if _, err := fmt.Fprintf(f, "%s=%s\n", kv[0], kv[1]); err != nil {
			return fmt.Errorf("write github output %s: %w", path, err)
		}
	}
	return f.Close()
}
