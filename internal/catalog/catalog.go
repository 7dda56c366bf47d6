package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Catalog holds the new-curriculum course DAG and the equivalency table,
// with precomputed indices. It is immutable after construction and safe
// for concurrent readers.
type Catalog struct {
	courses    []Course
	byCode     map[string]*Course
	dependents map[string][]string
	roots      []Course
	topoOrder  []Course
	topoIndex  map[string]int

	rules     []EquivalencyRule
	byOldCode map[string][]int // rule indices keyed by old code
	byOldName map[string][]int // rule indices keyed by normalized old name
}

// New validates the course set and equivalency table and builds all
// indices, including a deterministic topological order (Kahn's algorithm).
// A structurally broken catalog is a configuration error: New fails and
// the pipeline must not run.
func New(courses []Course, rules []EquivalencyRule) (*Catalog, error) {
	if err := validate(courses, rules); err != nil {
		return nil, err
	}

	c := &Catalog{
		courses:    slices.Clone(courses),
		byCode:     make(map[string]*Course, len(courses)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(courses)),
		rules:      slices.Clone(rules),
		byOldCode:  make(map[string][]int),
		byOldName:  make(map[string][]int),
	}

	for i := range c.courses {
		c.byCode[c.courses[i].Code] = &c.courses[i]
	}

	// Reverse edges: prerequisite -> courses that require it.
	for i := range c.courses {
		for _, prereq := range c.courses[i].Prerequisites {
			c.dependents[prereq] = append(c.dependents[prereq], c.courses[i].Code)
		}
	}

	// Topological sort with sorted queues for reproducible order.
	inDegree := make(map[string]int, len(c.courses))
	for i := range c.courses {
		inDegree[c.courses[i].Code] = len(c.courses[i].Prerequisites)
	}

	var queue []string
	for code, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, code)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]

		course := c.byCode[code]
		c.topoOrder = append(c.topoOrder, *course)

		next := slices.Clone(c.dependents[code])
		sort.Strings(next)
		for _, dep := range next {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	for i, course := range c.topoOrder {
		c.topoIndex[course.Code] = i
	}

	for i := range c.courses {
		if c.courses[i].Foundational() {
			c.roots = append(c.roots, c.courses[i])
		}
	}

	// Equivalency lookup indices.
	for i, r := range c.rules {
		if r.OldCode != "" {
			c.byOldCode[r.OldCode] = append(c.byOldCode[r.OldCode], i)
		}
		if r.OldName != "" {
			c.byOldName[NormalizeName(r.OldName)] = append(c.byOldName[NormalizeName(r.OldName)], i)
		}
	}

	return c, nil
}

// Course returns a course by code, or an error if not found.
func (c *Catalog) Course(code string) (Course, error) {
	course, ok := c.byCode[code]
	if !ok {
		return Course{}, fmt.Errorf("course not found: %q", code)
	}
	return *course, nil
}

// Has reports whether a course code exists in the catalog.
func (c *Catalog) Has(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Courses returns all courses in topological order.
func (c *Catalog) Courses() []Course {
	return slices.Clone(c.topoOrder)
}

// Len returns the number of courses in the catalog.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// RootCourses returns all courses with no prerequisites.
func (c *Catalog) RootCourses() []Course {
	return slices.Clone(c.roots)
}

// Dependents returns the courses that list the given code as a direct
// prerequisite, sorted by code.
func (c *Catalog) Dependents(code string) []Course {
	depCodes := slices.Clone(c.dependents[code])
	sort.Strings(depCodes)
	result := make([]Course, 0, len(depCodes))
	for _, dep := range depCodes {
		if course, ok := c.byCode[dep]; ok {
			result = append(result, *course)
		}
	}
	return result
}

// UnlockCount returns how many courses list the given code as a direct
// prerequisite.
func (c *Catalog) UnlockCount(code string) int {
	return len(c.dependents[code])
}

// Prerequisites returns the direct prerequisite courses for a code.
func (c *Catalog) Prerequisites(code string) []Course {
	course, ok := c.byCode[code]
	if !ok {
		return nil
	}
	result := make([]Course, 0, len(course.Prerequisites))
	for _, prereq := range course.Prerequisites {
		if p, ok := c.byCode[prereq]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Rules returns the equivalency table.
func (c *Catalog) Rules() []EquivalencyRule {
	return slices.Clone(c.rules)
}
