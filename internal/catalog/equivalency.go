package catalog

import (
	"sort"
	"strings"
)

// NormalizeName canonicalizes a course name for equivalency matching:
// lowercased, with runs of whitespace collapsed to single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Match resolves an old-curriculum code/name pair against the equivalency
// table and returns the new-curriculum course codes it satisfies, sorted
// and deduplicated. Exact code match is tried first; normalized-name match
// is the fallback. An empty result means the record is unmatched, which is
// a diagnostic outcome, not an error.
func (c *Catalog) Match(oldCode, oldName string) []string {
	var indices []int
	if oldCode != "" {
		indices = c.byOldCode[oldCode]
	}
	if len(indices) == 0 && oldName != "" {
		indices = c.byOldName[NormalizeName(oldName)]
	}
	if len(indices) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(indices))
	var targets []string
	for _, i := range indices {
		target := c.rules[i].NewCode
		if !seen[target] {
			seen[target] = true
			targets = append(targets, target)
		}
	}
	sort.Strings(targets)
	return targets
}
