// Package updater discovers the latest snaphu release published upstream and
// compares it with the version recorded locally.
//
// Release selection is lexical: the archive whose href sorts last wins. This
// matches numeric ordering only while every version component keeps the same
// digit width. A warning is logged when another archive is numerically higher,
// but the selection itself is never changed.
package updater

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"

	"github.com/snaphu-watch/snaphu-watch/internal/buildinfo"
	"github.com/snaphu-watch/snaphu-watch/internal/models"
)

// HTTPClient is the subset of *http.Client the finder needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Finder.
type Option func(*Finder)

// WithSourceURL sets the page listing the release archives.
func WithSourceURL(u string) Option {
	return func(f *Finder) {
		if u != "" {
			f.sourceURL = u
		}
	}
}

// WithHTTPClient sets the HTTP client used to fetch the source page.
func WithHTTPClient(h HTTPClient) Option {
	return func(f *Finder) {
		if h != nil {
			f.httpClient = h
		}
	}
}

// WithArchiveSuffix sets the suffix an archive href must end with.
func WithArchiveSuffix(suffix string) Option {
	return func(f *Finder) {
		if suffix != "" {
			f.suffix = suffix
		}
	}
}

// WithNamePrefix sets the token an archive href must contain.
func WithNamePrefix(prefix string) Option {
	return func(f *Finder) {
		if prefix != "" {
			f.prefix = prefix
		}
	}
}

// WithArchivePattern sets the pattern extracting the version from an archive
// href. Its first capture group is the version.
func WithArchivePattern(re *regexp.Regexp) Option {
	return func(f *Finder) {
		if re != nil {
			f.pattern = re
		}
	}
}

// WithUserAgent sets the User-Agent header of the page request.
func WithUserAgent(ua string) Option {
	return func(f *Finder) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// Finder locates the latest release archive on the upstream page.
type Finder struct {
	sourceURL  string
	httpClient HTTPClient
	suffix     string
	prefix     string
	pattern    *regexp.Regexp
	userAgent  string
}

var defaultArchivePattern = regexp.MustCompile(models.DefaultArchivePattern)

// NewFinder creates a Finder with the upstream defaults, adjusted by opts.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{
		sourceURL:  models.DefaultSourceURL,
		httpClient: http.DefaultClient,
		suffix:     models.DefaultArchiveSuffix,
		prefix:     models.DefaultNamePrefix,
		pattern:    defaultArchivePattern,
		userAgent:  buildinfo.UserAgent(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SourceURL returns the page the finder reads.
func (f *Finder) SourceURL() string {
	return f.sourceURL
}

// FindLatest fetches the source page and returns the latest release archive.
// A zero Release with a nil error means the page lists no matching archive.
func (f *Finder) FindLatest(ctx context.Context) (models.Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.sourceURL, nil)
	if err != nil {
		return models.Release{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return models.Release{}, &RemoteFetchError{URL: f.sourceURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Release{}, &RemoteFetchError{URL: f.sourceURL, StatusCode: resp.StatusCode}
	}

	return f.ParsePage(resp.Body)
}

// ParsePage selects the latest release archive from an already fetched page.
func (f *Finder) ParsePage(r io.Reader) (models.Release, error) {
	hrefs, err := ExtractLinks(r)
	if err != nil {
		return models.Release{}, err
	}

	candidates := FilterArchiveLinks(hrefs, f.suffix, f.prefix)
	if len(candidates) == 0 {
		log.Printf("[remote] No %s*%s archives found at %s", f.prefix, f.suffix, f.sourceURL)
		return models.Release{}, nil
	}

	href := SelectLatest(candidates)
	m := f.pattern.FindStringSubmatch(href)
	if m == nil {
		return models.Release{}, fmt.Errorf("%w: %q does not match %s", ErrMalformedArchiveName, href, f.pattern)
	}
	version := m[1]

	if higher, ok := highestByVersion(candidates, f.pattern, version); ok {
		log.Printf("[remote] Warning: lexical ordering selected %s, but %s is numerically higher", version, higher)
	}

	downloadURL, err := resolveURL(f.sourceURL, href)
	if err != nil {
		return models.Release{}, err
	}

	return models.Release{
		Version:     version,
		Href:        href,
		DownloadURL: downloadURL,
	}, nil
}

func resolveURL(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse source url %q: %w", base, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse archive href %q: %w", href, err)
	}
	return b.ResolveReference(ref).String(), nil
}
