package catalog

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on the course set and the
// equivalency table. It returns one combined error describing every
// problem found, or nil if the catalog is sound.
func validate(courses []Course, rules []EquivalencyRule) error {
	var errs []string

	codeSet := make(map[string]bool, len(courses))
	for _, c := range courses {
		if c.Code == "" {
			errs = append(errs, "course with empty code")
			continue
		}
		if codeSet[c.Code] {
			errs = append(errs, fmt.Sprintf("duplicate course code: %q", c.Code))
		}
		codeSet[c.Code] = true
		if c.Credits <= 0 {
			errs = append(errs, fmt.Sprintf("course %q: credits must be > 0, got %d", c.Code, c.Credits))
		}
	}

	for _, c := range courses {
		for _, prereq := range c.Prerequisites {
			if !codeSet[prereq] {
				errs = append(errs, fmt.Sprintf("course %q references nonexistent prerequisite %q", c.Code, prereq))
			}
		}
	}

	// Cycle check via Kahn's algorithm: anything left with positive
	// in-degree after the sweep sits on a cycle.
	inDegree := make(map[string]int, len(courses))
	adj := make(map[string][]string)
	for _, c := range courses {
		inDegree[c.Code] = len(c.Prerequisites)
		for _, prereq := range c.Prerequisites {
			adj[prereq] = append(adj[prereq], c.Code)
		}
	}

	var queue []string
	for _, c := range courses {
		if inDegree[c.Code] == 0 {
			queue = append(queue, c.Code)
		}
	}

	visited := 0
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[code] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(courses) {
		var cycleNodes []string
		for _, c := range courses {
			if inDegree[c.Code] > 0 {
				cycleNodes = append(cycleNodes, c.Code)
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle detected involving courses: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(courses) > 0 {
		hasRoot := false
		for _, c := range courses {
			if len(c.Prerequisites) == 0 {
				hasRoot = true
				break
			}
		}
		if !hasRoot {
			errs = append(errs, "no root courses found (at least one course must have no prerequisites)")
		}
	}

	for i, r := range rules {
		if r.OldCode == "" && r.OldName == "" {
			errs = append(errs, fmt.Sprintf("equivalency rule %d has neither old code nor old name", i))
		}
		if r.NewCode == "" {
			errs = append(errs, fmt.Sprintf("equivalency rule %d has no target course", i))
		} else if !codeSet[r.NewCode] {
			errs = append(errs, fmt.Sprintf("equivalency rule %d targets nonexistent course %q", i, r.NewCode))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
