package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/snaphu-watch/snaphu-watch/internal/models"
)

var (
	mismatch = models.Result{
		Outcome:       models.OutcomeMismatch,
		LocalVersion:  "2.0.4",
		RemoteVersion: "2.0.5",
		DownloadURL:   "https://example.com/snaphu/snaphu-v2.0.5.tar.gz",
		SourceURL:     "https://example.com/snaphu/",
	}
	match = models.Result{
		Outcome:       models.OutcomeMatch,
		LocalVersion:  "2.0.4",
		RemoteVersion: "2.0.4",
		DownloadURL:   "https://example.com/snaphu/snaphu-v2.0.4.tar.gz",
		SourceURL:     "https://example.com/snaphu/",
	}
	empty = models.Result{
		Outcome:      models.OutcomeRemoteEmpty,
		LocalVersion: "2.0.4",
		SourceURL:    "https://example.com/snaphu/",
	}
)

func TestWriteActions(t *testing.T) {
	tests := []struct {
		name   string
		result models.Result
		want   string
	}{
		{
			name:   "update available",
			result: mismatch,
			want: "::set-output name=new_version_available::true\n" +
				"::set-output name=remote_version::2.0.5\n" +
				MsgNoAutoUpdate + "\n",
		},
		{
			name:   "up to date",
			result: match,
			want: "::set-output name=new_version_available::false\n" +
				"Local version matches remote: nothing to do\n",
		},
		{
			name:   "nothing upstream",
			result: empty,
			want: "::set-output name=new_version_available::false\n" +
				"No release archives found at https://example.com/snaphu/: nothing to compare\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewWriter(&buf, FormatActions, nil).Write(tt.result); err != nil {
				t.Fatalf("Write error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output:\n%s\nwant:\n%s", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteActionsStylesOnlyHumanLine(t *testing.T) {
	var buf bytes.Buffer
	style := func(o models.Outcome, s string) string { return "<" + string(o) + ">" + s }
	if err := NewWriter(&buf, FormatActions, style).Write(mismatch); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "::set-output") || !strings.HasPrefix(lines[1], "::set-output") {
		t.Errorf("machine lines were styled: %q", lines[:2])
	}
	if lines[2] != "<mismatch>"+MsgNoAutoUpdate {
		t.Errorf("human line = %q", lines[2])
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatYAML, nil).Write(mismatch); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var got map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if got["outcome"] != "mismatch" || got["new_version_available"] != true || got["remote_version"] != "2.0.5" {
		t.Errorf("unexpected document: %v", got)
	}
	if got["download_url"] != mismatch.DownloadURL {
		t.Errorf("download_url = %v", got["download_url"])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatJSON, nil).Write(empty); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got["outcome"] != "remote-empty" || got["new_version_available"] != false {
		t.Errorf("unexpected document: %v", got)
	}
	if _, ok := got["remote_version"]; ok {
		t.Errorf("remote_version should be omitted when empty: %v", got)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"actions", "YAML", " json "} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) error: %v", s, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteGitHubOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")
	if err := os.WriteFile(path, []byte("existing=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteGitHubOutput(path, mismatch); err != nil {
		t.Fatalf("WriteGitHubOutput error: %v", err)
	}
	if err := WriteGitHubOutput(path, match); err != nil {
		t.Fatalf("WriteGitHubOutput error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "existing=1\n" +
		"new_version_available=true\n" +
		"remote_version=2.0.5\n" +
		"download_url=https://example.com/snaphu/snaphu-v2.0.5.tar.gz\n" +
		"new_version_available=false\n"
	if string(data) != want {
		t.Errorf("github output:\n%s\nwant:\n%s", data, want)
	}
}
