package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/snaphu-watch/snaphu-watch/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings(\"\") error: %v", err)
	}
	if *settings != *models.NewSettings() {
		t.Errorf("LoadSettings(\"\") = %+v, want defaults", settings)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	settings, err := LoadSettings(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadSettings(%q) error = %v, want os.ErrNotExist", path, err)
	}
	if settings != nil {
		t.Errorf("LoadSettings(%q) = %+v, want nil", path, settings)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the missing file", err.Error())
	}
}

func TestLoadSettingsMergesOverDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.yaml", `
source:
  url: https://mirror.example.com/snaphu/
local:
  readme: ../README
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if settings.Source.URL != "https://mirror.example.com/snaphu/" {
		t.Errorf("Source.URL = %q", settings.Source.URL)
	}
	if settings.Local.Readme != "../README" {
		t.Errorf("Local.Readme = %q", settings.Local.Readme)
	}
	if settings.Source.ArchiveSuffix != models.DefaultArchiveSuffix {
		t.Errorf("Source.ArchiveSuffix = %q, want default", settings.Source.ArchiveSuffix)
	}
	if settings.Source.ArchivePattern != models.DefaultArchivePattern {
		t.Errorf("Source.ArchivePattern = %q, want default", settings.Source.ArchivePattern)
	}
	if settings.Local.ReadmePattern != models.DefaultReadmePattern {
		t.Errorf("Local.ReadmePattern = %q, want default", settings.Local.ReadmePattern)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "source: [", "failed to parse YAML"},
		{"relative url", "source:\n  url: /snaphu/\n", "source.url"},
		{"bad archive pattern", "source:\n  archive_pattern: \"(\"\n", "source.archive_pattern"},
		{"no capture group", "local:\n  readme_pattern: \"^Version\"\n", "exactly one capture group"},
		{"empty suffix", "source:\n  archive_suffix: \"\"\n", "source.archive_suffix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "settings.yaml", tt.content)
			_, err := LoadSettings(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestResolveReadme(t *testing.T) {
	if got := ResolveReadme("/some/where/README"); got != "/some/where/README" {
		t.Errorf("explicit path not returned: %q", got)
	}

	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if got := ResolveReadme(""); got != ReadmeFileName {
		t.Errorf("ResolveReadme(\"\") = %q, want %q", got, ReadmeFileName)
	}

	writeFile(t, dir, ReadmeFileName, "Version 2.0.4\n")
	if got := ResolveReadme(""); !FileExists(got) {
		t.Errorf("ResolveReadme(\"\") = %q, which does not exist", got)
	}
}
