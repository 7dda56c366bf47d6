// Package eligibility computes the eligible frontier: courses not yet
// satisfied whose prerequisites are all satisfied.
package eligibility

import (
	"github.com/mfajardo/transmalla/internal/catalog"
	"github.com/mfajardo/transmalla/internal/reconcile"
)

// Resolve returns the eligible frontier for a student, in the catalog's
// topological order so output is reproducible. A single pass suffices:
// satisfaction comes from the finalized progress set, never discovered
// recursively.
func Resolve(progress reconcile.StudentProgress, cat *catalog.Catalog) []catalog.Course {
	var eligible []catalog.Course
	for _, course := range cat.Courses() {
		if progress.IsSatisfied(course.Code) {
			continue
		}
		if unlocked(course, progress) {
			eligible = append(eligible, course)
		}
	}
	return eligible
}

// unlocked reports whether every prerequisite of the course is satisfied.
// Courses with no prerequisites are unlocked by definition.
func unlocked(course catalog.Course, progress reconcile.StudentProgress) bool {
	for _, prereq := range course.Prerequisites {
		if !progress.IsSatisfied(prereq) {
			return false
		}
	}
	return true
}
