package reconcile

import (
	"testing"

	"github.com/mfajardo/transmalla/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	courses := []catalog.Course{
		{Code: "INF101", Name: "Fundamentos", Credits: 3},
		{Code: "INF102", Name: "Programación", Credits: 4, Prerequisites: []string{"INF101"}},
		{Code: "MAT101", Name: "Cálculo", Credits: 4},
	}
	rules := []catalog.EquivalencyRule{
		{OldCode: "1000", OldName: "Introducción", NewCode: "INF101"},
		{OldCode: "2000", OldName: "Programación Básica", NewCode: "INF102"},
		{OldCode: "3000", OldName: "Matemáticas I", NewCode: "MAT101"},
		// One old course satisfying two new ones.
		{OldCode: "9000", OldName: "Informática General", NewCode: "INF101"},
		{OldCode: "9000", OldName: "Informática General", NewCode: "INF102"},
	}
	cat, err := catalog.New(courses, rules)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func TestReconcile_ExactCodeMatch(t *testing.T) {
	cat := testCatalog(t)
	records := []CompletedRecord{{Code: "1000", Name: "algo distinto", Credits: 3}}

	p := Reconcile("Ana Pérez", "20181234", records, cat)

	if !p.IsSatisfied("INF101") {
		t.Error("INF101 should be satisfied via code match")
	}
	if p.UnmatchedCount() != 0 {
		t.Errorf("got %d unmatched, want 0", p.UnmatchedCount())
	}
	if p.StudentName != "Ana Pérez" || p.StudentID != "20181234" {
		t.Errorf("identity not carried through: %q %q", p.StudentName, p.StudentID)
	}
}

func TestReconcile_NameFallback(t *testing.T) {
	cat := testCatalog(t)
	records := []CompletedRecord{{Code: "no-such-code", Name: "  MATEMÁTICAS   i "}}

	p := Reconcile("Ana", "1", records, cat)

	if !p.IsSatisfied("MAT101") {
		t.Error("MAT101 should be satisfied via normalized-name match")
	}
}

func TestReconcile_MultiMatchUnion(t *testing.T) {
	cat := testCatalog(t)
	records := []CompletedRecord{{Code: "9000", Name: "Informática General"}}

	p := Reconcile("Ana", "1", records, cat)

	if !p.IsSatisfied("INF101") || !p.IsSatisfied("INF102") {
		t.Errorf("union match should credit both courses, got %v", p.SatisfiedCodes())
	}
}

func TestReconcile_UnmatchedIsDiagnosticNotError(t *testing.T) {
	cat := testCatalog(t)
	records := []CompletedRecord{
		{Code: "1000", Name: "Introducción"},
		{Code: "5555", Name: "Curso Fantasma"},
	}

	p := Reconcile("Ana", "1", records, cat)

	if p.UnmatchedCount() != 1 {
		t.Fatalf("got %d unmatched, want 1", p.UnmatchedCount())
	}
	if p.Unmatched[0].Code != "5555" {
		t.Errorf("unmatched record: got %q, want 5555", p.Unmatched[0].Code)
	}
	if !p.IsSatisfied("INF101") {
		t.Error("matched record should still be processed")
	}
}

func TestReconcile_EmptyAndMalformedRecords(t *testing.T) {
	cat := testCatalog(t)
	records := []CompletedRecord{{}, {Code: "", Name: ""}}

	p := Reconcile("Ana", "1", records, cat)

	if len(p.Satisfied) != 0 {
		t.Errorf("empty records should satisfy nothing, got %v", p.SatisfiedCodes())
	}
	if p.UnmatchedCount() != 2 {
		t.Errorf("got %d unmatched, want 2", p.UnmatchedCount())
	}
}

func TestReconcile_NoRecords(t *testing.T) {
	cat := testCatalog(t)
	p := Reconcile("Ana", "1", nil, cat)
	if len(p.Satisfied) != 0 || p.UnmatchedCount() != 0 {
		t.Errorf("empty input should produce empty progress, got %v", p)
	}
}

func TestSatisfiedCodes_Sorted(t *testing.T) {
	cat := testCatalog(t)
	records := []CompletedRecord{
		{Code: "3000"},
		{Code: "1000"},
		{Code: "2000"},
	}
	p := Reconcile("Ana", "1", records, cat)
	codes := p.SatisfiedCodes()
	want := []string{"INF101", "INF102", "MAT101"}
	if len(codes) != len(want) {
		t.Fatalf("got %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, codes[i], want[i])
		}
	}
}
