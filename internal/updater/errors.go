package updater

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedArchiveName is returned when the selected archive link passed
// the name filter but its version could not be extracted. It usually means
// the upstream naming convention changed.
var ErrMalformedArchiveName = errors.New("malformed archive name")

// RemoteFetchError reports a failed request for the release page, either a
// transport failure (Err set) or a non-success HTTP status.
type RemoteFetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RemoteFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: server returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *RemoteFetchError) Unwrap() error {
	return e.Err
}

// LocalVersionNotFoundError is returned when no line of the local file
// carries a version. The full file content is kept for diagnostics.
type LocalVersionNotFoundError struct {
	Path    string
	Content string
}

func (e *LocalVersionNotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse version from readme: %s", e.Content)
	}
	return fmt.Sprintf("failed to parse version from readme %s: %s", e.Path, e.Content)
}
