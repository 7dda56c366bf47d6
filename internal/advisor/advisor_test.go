package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfajardo/transmalla/internal/catalog"
	"github.com/mfajardo/transmalla/internal/ranking"
	"github.com/mfajardo/transmalla/internal/reconcile"
)

// diamondAdvisor builds an advisor over the four-course diamond with a
// minimal equivalency table: old codes Vxxx map one-to-one.
func diamondAdvisor(t *testing.T) *Advisor {
	t.Helper()
	cat, err := catalog.New(
		[]catalog.Course{
			{Code: "INF101", Name: "Base", Credits: 3},
			{Code: "INF102", Name: "Rama A", Credits: 4, Prerequisites: []string{"INF101"}},
			{Code: "INF103", Name: "Rama B", Credits: 4, Prerequisites: []string{"INF101"}},
			{Code: "INF104", Name: "Cima", Credits: 6, Prerequisites: []string{"INF102", "INF103"}},
		},
		[]catalog.EquivalencyRule{
			{OldCode: "V101", OldName: "Base Vieja", NewCode: "INF101"},
			{OldCode: "V102", OldName: "Rama A Vieja", NewCode: "INF102"},
			{OldCode: "V103", OldName: "Rama B Vieja", NewCode: "INF103"},
		},
	)
	require.NoError(t, err)
	return New(cat, Options{})
}

func TestAdvise_MidTransition(t *testing.T) {
	adv := diamondAdvisor(t)

	rec := adv.Advise(Request{
		StudentName: "Ana Pérez",
		StudentID:   "20181234",
		Records:     []reconcile.CompletedRecord{{Code: "V101", Name: "Base Vieja", Credits: 3}},
	})

	require.Len(t, rec.Suggestions, 2)
	assert.Equal(t, "INF102", rec.Suggestions[0].Course.Code)
	assert.Equal(t, "INF103", rec.Suggestions[1].Course.Code)
	assert.Equal(t, ranking.PriorityMedium, rec.Suggestions[0].Priority)

	// Both fit under the default 14-credit ceiling.
	require.Len(t, rec.Bundle, 2)
	assert.Equal(t, 8, rec.BundleCredits)
	assert.Equal(t, 14, rec.CreditCeiling)
	assert.Equal(t, []string{"INF101"}, rec.SatisfiedCodes)
}

func TestAdvise_FreshStudent(t *testing.T) {
	adv := diamondAdvisor(t)

	rec := adv.Advise(Request{StudentName: "Luis", StudentID: "2"})

	require.Len(t, rec.Suggestions, 1)
	assert.Equal(t, "INF101", rec.Suggestions[0].Course.Code)
	assert.Equal(t, ranking.PriorityHigh, rec.Suggestions[0].Priority)
	require.Len(t, rec.Bundle, 1)
	assert.Equal(t, 3, rec.BundleCredits)
}

func TestAdvise_TightCeilingKeepsFullList(t *testing.T) {
	adv := diamondAdvisor(t)

	rec := adv.Advise(Request{
		StudentID:     "3",
		Records:       []reconcile.CompletedRecord{{Code: "V101"}},
		CreditCeiling: 2,
	})

	// Nothing fits in 2 credits, but the full list is untouched.
	assert.Empty(t, rec.Bundle)
	assert.Equal(t, 0, rec.BundleCredits)
	assert.Len(t, rec.Suggestions, 2)
	assert.Equal(t, 2, rec.CreditCeiling)
}

func TestAdvise_UnmatchedDiagnostic(t *testing.T) {
	adv := diamondAdvisor(t)

	rec := adv.Advise(Request{
		StudentID: "4",
		Records: []reconcile.CompletedRecord{
			{Code: "V101", Name: "Base Vieja"},
			{Code: "NOPE", Name: "Curso Fantasma"},
		},
	})

	require.Len(t, rec.Unmatched, 1)
	assert.Equal(t, "NOPE", rec.Unmatched[0].Code)
	assert.Len(t, rec.Suggestions, 2)
}

func TestAdvise_EverythingDone(t *testing.T) {
	adv := diamondAdvisor(t)

	rec := adv.Advise(Request{
		StudentID: "5",
		Records: []reconcile.CompletedRecord{
			{Code: "V101"}, {Code: "V102"}, {Code: "V103"},
			// INF104 has no equivalency; simulate it via the others done
			// and INF104 eligible.
		},
	})

	// Only INF104 remains eligible.
	require.Len(t, rec.Suggestions, 1)
	assert.Equal(t, "INF104", rec.Suggestions[0].Course.Code)
}

func TestAdvise_BundleIsSubsequenceOfSuggestions(t *testing.T) {
	adv := New(catalog.Default(), Options{})

	rec := adv.Advise(Request{
		StudentID: "6",
		Records: []reconcile.CompletedRecord{
			{Code: "3007845"}, // INF102
			{Code: "3006906"}, // MAT101
			{Code: "3006908"}, // MAT102
		},
	})

	assert.LessOrEqual(t, rec.BundleCredits, rec.CreditCeiling)

	i := 0
	for _, b := range rec.Bundle {
		found := false
		for ; i < len(rec.Suggestions); i++ {
			if rec.Suggestions[i].Course.Code == b.Course.Code {
				found = true
				i++
				break
			}
		}
		require.True(t, found, "bundle not a subsequence at %q", b.Course.Code)
	}
}

func TestNew_Defaults(t *testing.T) {
	adv := New(catalog.Default(), Options{})
	rec := adv.Advise(Request{StudentID: "7"})
	assert.Equal(t, 14, rec.CreditCeiling)
}

func TestNew_CustomOptions(t *testing.T) {
	adv := New(catalog.Default(), Options{
		RankingConfig: ranking.Config{HighUnlockThreshold: 99, MediumUnlockThreshold: 1, ElevateFoundational: false},
		CreditCeiling: 6,
	})
	rec := adv.Advise(Request{StudentID: "8"})
	assert.Equal(t, 6, rec.CreditCeiling)
	for _, s := range rec.Suggestions {
		assert.NotEqual(t, ranking.PriorityHigh, s.Priority, "threshold 99 should keep %s out of high", s.Course.Code)
	}
}
