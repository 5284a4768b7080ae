package rules

import "strings"

// AllowList is a set of path substrings exempt from secret scanning.
// Template and example files legitimately contain secret-shaped text;
// scanning them would bury real findings in noise.
type AllowList []string

// DefaultAllowList returns the built-in exemptions: template/example
// files, test fixtures, the gate's own configuration, and note
// directories.
func DefaultAllowList() AllowList {
	return AllowList{
		".example",
		".sample",
		".template",
		"/templates/",
		"/fixtures/",
		"/testdata/",
		".borg/",
		"/notes/",
	}
}

// Contains reports whether path matches any allow-list entry by
// substring. An empty path never matches.
func (a AllowList) Contains(path string) bool {
	if path == "" {
		return false
	}
	for _, entry := range a {
		if entry != "" && strings.Contains(path, entry) {
			return true
		}
	}
	return false
}
