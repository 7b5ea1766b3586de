package updater

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/snaphu-watch/snaphu-watch/internal/models"
)

var defaultReadmePattern = regexp.MustCompile(models.DefaultReadmePattern)

// lineBreak matches every line boundary, including lone CR, form feed,
// the file/group/record separators, NEL and the Unicode line and paragraph
// separators.
var lineBreak = regexp.MustCompile(`\r\n|[\n\r\v\f\x1c-\x1e\x{85}\x{2028}\x{2029}]`)

// LocalReader extracts the bundled version from a README-style file.
type LocalReader struct {
	pattern *regexp.Regexp
}

// NewLocalReader creates a reader using pattern, whose first capture group is
// the version. A nil pattern selects the default "Version X.Y.Z" form.
func NewLocalReader(pattern *regexp.Regexp) *LocalReader {
	if pattern == nil {
		pattern = defaultReadmePattern
	}
	return &LocalReader{pattern: pattern}
}

// Read returns the version recorded in the file at path.
func (l *LocalReader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read local version file: %w", err)
	}

	version, err := l.Parse(string(data))
	if err != nil {
		var nf *LocalVersionNotFoundError
		if errors.As(err, &nf) {
			nf.Path = path
		}
		return "", err
	}
	return version, nil
}

// Parse returns the version from the first matching line of content.
func (l *LocalReader) Parse(content string) (string, error) {
	for _, line := range lineBreak.Split(content, -1) {
		if m := l.pattern.FindStringSubmatch(line); m != nil {
			return m[1], nil
		}
	}
	return "", &LocalVersionNotFoundError{Content: content}
}

// ReadLocalVersion reads path with the default "Version X.Y.Z" pattern.
func ReadLocalVersion(path string) (string, error) {
	return NewLocalReader(nil).Read(path)
}

// ParseLocalVersion parses content with the default "Version X.Y.Z" pattern.
func ParseLocalVersion(content string) (string, error) {
	return NewLocalReader(nil).Parse(content)
}
