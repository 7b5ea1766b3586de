package updater

import "github.com/snaphu-watch/snaphu-watch/internal/models"

// Compare checks the remote release against the local version.
// Versions are compared as plain text: "2.0.4" and "2.0.04" differ.
func Compare(remote models.Release, local string) models.Result {
	result := models.Result{
		LocalVersion:  local,
		RemoteVersion: remote.Version,
		DownloadURL:   remote.DownloadURL,
	}

	switch {
	case !remote.Found():
		result.Outcome = models.OutcomeRemoteEmpty
	case remote.Version != local:
		result.Outcome = models.OutcomeMismatch
	default:
		result.Outcome = models.OutcomeMatch
	}
	return result
}
