// Package config handles configuration loading and path resolution.
package config

import (
	"os"
	"path/filepath"
)

// ReadmeFileName is the name of the file recording the bundled snaphu version.
const ReadmeFileName = "README"

// ResolveReadme returns the README path to read.
//
// An explicit path always wins. Otherwise the README is looked up relative to
// the executable (one directory up, then alongside it) and finally in the
// working directory. When nothing exists the working-directory candidate is
// returned so the caller reports a meaningful read error.
func ResolveReadme(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for _, candidate := range readmeCandidates() {
		if FileExists(candidate) {
			return candidate
		}
	}
	return ReadmeFileName
}

func readmeCandidates() []string {
	var candidates []string

	execPath, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
			execPath = resolved
		}
		dir := filepath.Dir(execPath)
		candidates = append(candidates,
			filepath.Join(dir, "..", ReadmeFileName),
			filepath.Join(dir, ReadmeFileName),
		)
	}

	return append(candidates, ReadmeFileName)
}
