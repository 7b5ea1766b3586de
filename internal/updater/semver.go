package updater

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// highestByVersion returns the version of the numerically highest candidate
// when it is greater than chosen. Candidates whose version cannot be
// extracted or parsed are ignored.
func highestByVersion(candidates []string, pattern *regexp.Regexp, chosen string) (string, bool) {
	chosenVer, err := semver.StrictNewVersion(chosen)
	if err != nil {
		return "", false
	}

	best := chosenVer
	for _, href := range candidates {
		m := pattern.FindStringSubmatch(href)
		if m == nil {
			continue
		}
		v, err := semver.StrictNewVersion(m[1])
		if err != nil {
			continue
		}
		if v.GreaterThan(best) {
			best = v
		}
	}

	if best == chosenVer {
		return "", false
	}
	return best.Original(), true
}
