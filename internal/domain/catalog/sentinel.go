package catalog

import "strings"

// NoProjectLabel is the canonical bucket label for entries logged without a
// project.
const NoProjectLabel = "Sans projet"

// Both spellings circulate in stored data and in the admin UI; treat them as
// the same sentinel.
var noProjectAliases = []string{NoProjectLabel, "No project"}

// IsNoProject reports whether a label is one of the recognized "no project"
// sentinel spellings, case-insensitively.
func IsNoProject(label string) bool {
	trimmed := strings.TrimSpace(label)
	for _, alias := range noProjectAliases {
		if strings.EqualFold(trimmed, alias) {
			return true
		}
	}
	return false
}
