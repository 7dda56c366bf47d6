package ranking

import (
	"encoding/json"
	"fmt"

	"github.com/mfajardo/transmalla/internal/catalog"
)

// Priority is the recommendation tier for a suggested course. The enum
// is closed so tie-break logic can switch over it exhaustively.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
)

// Label returns the display label used in student-facing reports.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "ALTA"
	case PriorityMedium:
		return "MEDIA"
	case PriorityLow:
		return "BAJA"
	default:
		return "?"
	}
}

// MarshalJSON encodes the priority as its display label.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Label())
}

// UnmarshalJSON decodes a display label back into a priority.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	switch label {
	case "ALTA":
		*p = PriorityHigh
	case "MEDIA":
		*p = PriorityMedium
	case "BAJA":
		*p = PriorityLow
	default:
		return fmt.Errorf("unknown priority label: %q", label)
	}
	return nil
}

// Suggestion is a recommendation for one course. Immutable once built;
// the ordered suggestion list is the ranker's primary output.
type Suggestion struct {
	Course        catalog.Course `json:"course"`
	Priority      Priority       `json:"priority"`
	Justification string         `json:"justification"`
}
