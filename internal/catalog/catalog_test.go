package catalog

import (
	"testing"
)

func TestDefault_Course(t *testing.T) {
	cat := Default()
	c, err := cat.Course("INF301")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Estructuras de Datos" {
		t.Errorf("got name %q, want %q", c.Name, "Estructuras de Datos")
	}
	if c.Credits != 4 {
		t.Errorf("got credits %d, want 4", c.Credits)
	}
	if len(c.Prerequisites) != 2 {
		t.Errorf("got %d prerequisites, want 2", len(c.Prerequisites))
	}
}

func TestDefault_CourseNotFound(t *testing.T) {
	_, err := Default().Course("XXX999")
	if err == nil {
		t.Fatal("expected error for nonexistent course, got nil")
	}
}

func TestDefault_Counts(t *testing.T) {
	cat := Default()
	if cat.Len() != 18 {
		t.Errorf("got %d courses, want 18", cat.Len())
	}
	if len(cat.Rules()) != 22 {
		t.Errorf("got %d equivalency rules, want 22", len(cat.Rules()))
	}
}

func TestRootCourses(t *testing.T) {
	roots := Default().RootCourses()
	if len(roots) != 5 {
		t.Fatalf("got %d root courses, want 5", len(roots))
	}
	for _, c := range roots {
		if len(c.Prerequisites) != 0 {
			t.Errorf("root course %q has prerequisites: %v", c.Code, c.Prerequisites)
		}
	}
}

func TestDependents(t *testing.T) {
	deps := Default().Dependents("INF201")
	want := []string{"INF301", "INF302", "INF402"}
	if len(deps) != len(want) {
		t.Fatalf("INF201: got %d dependents, want %d", len(deps), len(want))
	}
	for i, c := range deps {
		if c.Code != want[i] {
			t.Errorf("dependent %d: got %q, want %q", i, c.Code, want[i])
		}
	}
}

func TestUnlockCount(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"MAT101", 2}, // MAT201, FIS101
		{"INF201", 3}, // INF301, INF302, INF402
		{"INF402", 2}, // INF501, INF502
		{"INF501", 0}, // terminal
		{"HUM101", 0},
	}
	cat := Default()
	for _, tt := range tests {
		if got := cat.UnlockCount(tt.code); got != tt.want {
			t.Errorf("UnlockCount(%q): got %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestPrerequisites(t *testing.T) {
	prereqs := Default().Prerequisites("INF503")
	ids := map[string]bool{}
	for _, p := range prereqs {
		ids[p.Code] = true
	}
	if !ids["INF403"] || !ids["EST201"] {
		t.Errorf("INF503 prerequisites: got %v, want INF403 and EST201", ids)
	}

	if got := Default().Prerequisites("INF101"); len(got) != 0 {
		t.Errorf("INF101: got %d prerequisites, want 0", len(got))
	}
}

func TestCourses_TopologicalProperty(t *testing.T) {
	courses := Default().Courses()
	if len(courses) != Default().Len() {
		t.Fatalf("got %d courses in order, want %d", len(courses), Default().Len())
	}

	pos := make(map[string]int, len(courses))
	for i, c := range courses {
		pos[c.Code] = i
	}
	for _, c := range courses {
		for _, prereq := range c.Prerequisites {
			prereqPos, ok := pos[prereq]
			if !ok {
				t.Errorf("prerequisite %q of %q not found in order", prereq, c.Code)
				continue
			}
			if prereqPos >= pos[c.Code] {
				t.Errorf("course %q (pos %d) appears before prerequisite %q (pos %d)",
					c.Code, pos[c.Code], prereq, prereqPos)
			}
		}
	}
}

func TestCourses_ReturnsCopy(t *testing.T) {
	a := Default().Courses()
	a[0].Name = "MUTATED"
	b := Default().Courses()
	if b[0].Name == "MUTATED" {
		t.Error("Courses did not return a defensive copy")
	}
}

func TestNew_DeterministicOrder(t *testing.T) {
	courses := seedCourses()
	rules := seedRules()

	first, err := New(courses, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := New(courses, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, b := first.Courses(), second.Courses()
	for i := range a {
		if a[i].Code != b[i].Code {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i].Code, b[i].Code)
		}
	}
}
