package models

// Outcome is the result of comparing the remote and local versions.
type Outcome string

const (
	OutcomeMatch       Outcome = "match"
	OutcomeMismatch    Outcome = "mismatch"
	OutcomeRemoteEmpty Outcome = "remote-empty"
)

// Result holds everything a report needs about a single check run.
type Result struct {
	Outcome       Outcome `yaml:"outcome" json:"outcome"`
	LocalVersion  string  `yaml:"local_version" json:"local_version"`
	RemoteVersion string  `yaml:"remote_version,omitempty" json:"remote_version,omitempty"`
	DownloadURL   string  `yaml:"download_url,omitempty" json:"download_url,omitempty"`
	SourceURL     string  `yaml:"source_url" json:"source_url"`
}

// NewVersionAvailable reports whether the remote version differs from the local one.
func (r Result) NewVersionAvailable() bool {
	return r.Outcome == OutcomeMismatch
}
