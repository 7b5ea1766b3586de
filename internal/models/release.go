package models

// Release is an upstream archive discovered on the source page.
// The zero value means no candidate archive was found.
type Release struct {
	Version     string
	Href        string
	DownloadURL string
}

// Found reports whether the release refers to an actual archive.
func (r Release) Found() bool {
	return r.Version != "" || r.DownloadURL != ""
}
