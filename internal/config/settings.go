package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"

	"github.com/snaphu-watch/snaphu-watch/internal/models"
)

// LoadSettings loads settings from the YAML file at path.
// An empty path yields the default settings; a path that does not exist is
// an error.
func LoadSettings(path string) (*models.Settings, error) {
	if path != "" && !FileExists(path) {
		return nil, fmt.Errorf("settings file %s: %w", path, os.ErrNotExist)
	}

	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return settings, nil
}

// ValidateSettings checks that the source URL is absolute and that both
// version patterns compile with exactly one capture group.
func ValidateSettings(s *models.Settings) error {
	u, err := url.Parse(s.Source.URL)
	if err != nil {
		return fmt.Errorf("source.url: %w", err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("source.url: %q is not an absolute URL", s.Source.URL)
	}
	if s.Source.ArchiveSuffix == "" {
		return fmt.Errorf("source.archive_suffix must not be empty")
	}
	if s.Source.NamePrefix == "" {
		return fmt.Errorf("source.name_prefix must not be empty")
	}
	if err := checkPattern("source.archive_pattern", s.Source.ArchivePattern); err != nil {
		return err
	}
	return checkPattern("local.readme_pattern", s.Local.ReadmePattern)
}

func checkPattern(field, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if re.NumSubexp() != 1 {
		return fmt.Errorf("%s: want exactly one capture group, got %d", field, re.NumSubexp())
	}
	return nil
}
