// Package reconcile matches a student's extracted transcript records
// against the curriculum equivalency table and derives which courses of
// the new plan are already satisfied.
package reconcile

import (
	"sort"

	"github.com/mfajardo/transmalla/internal/catalog"
)

// CompletedRecord is one completed-course entry as read from a
// transcript by the external extraction step. Fields carry whatever the
// extractor produced; nothing here is assumed clean.
type CompletedRecord struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits,omitempty"`
}

// StudentProgress is the reconciled view of a student against the new
// curriculum. Satisfied only contains codes that exist in the catalog.
// Unmatched keeps records that matched no equivalency rule, as a
// diagnostic; they contribute nothing and block nothing.
type StudentProgress struct {
	StudentName string
	StudentID   string
	Satisfied   map[string]bool
	Unmatched   []CompletedRecord
}

// IsSatisfied reports whether the given new-curriculum course is done.
func (p StudentProgress) IsSatisfied(code string) bool {
	return p.Satisfied[code]
}

// SatisfiedCodes returns the satisfied course codes, sorted.
func (p StudentProgress) SatisfiedCodes() []string {
	codes := make([]string, 0, len(p.Satisfied))
	for code := range p.Satisfied {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// UnmatchedCount returns how many records matched no equivalency rule.
func (p StudentProgress) UnmatchedCount() int {
	return len(p.Unmatched)
}

// Reconcile matches each record against the equivalency table. Exact
// code match is tried first, normalized-name match as fallback. A record
// matching rules for several new courses credits all of them. Pure: no
// state outside the returned progress.
func Reconcile(studentName, studentID string, records []CompletedRecord, cat *catalog.Catalog) StudentProgress {
	progress := StudentProgress{
		StudentName: studentName,
		StudentID:   studentID,
		Satisfied:   make(map[string]bool),
	}

	for _, rec := range records {
		targets := cat.Match(rec.Code, rec.Name)
		if len(targets) == 0 {
			progress.Unmatched = append(progress.Unmatched, rec)
			continue
		}
		for _, code := range targets {
			progress.Satisfied[code] = true
		}
	}

	return progress
}
