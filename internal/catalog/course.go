package catalog

// Course is a single course in the new curriculum.
type Course struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Credits       int      `json:"credits"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Foundational reports whether the course has no prerequisites.
func (c Course) Foundational() bool {
	return len(c.Prerequisites) == 0
}

// EquivalencyRule states that completing a given old-curriculum course
// satisfies one new-curriculum course. A rule matches by exact old code,
// by normalized old name, or both. Several rules may point at the same
// new course; any one match suffices.
type EquivalencyRule struct {
	OldCode string `json:"old_code,omitempty"` // old-curriculum code, exact match
	OldName string `json:"old_name,omitempty"` // old-curriculum name, normalized match
	NewCode string `json:"new_code"`           // new-curriculum course this satisfies
}
