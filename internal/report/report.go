// Package report renders a recommendation as styled terminal text. It is
// the CLI-side implementation of the rendering collaborator; the core
// pipeline knows nothing about presentation.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mfajardo/transmalla/internal/advisor"
	"github.com/mfajardo/transmalla/internal/ranking"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))

	highStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F43F5E"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// Render produces the full advisory report for one student.
func Render(rec *advisor.Recommendation) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Plan de transición curricular"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s (%s)\n", rec.StudentName, rec.StudentID))
	b.WriteString(dimStyle.Render(fmt.Sprintf("Cursos reconocidos del plan nuevo: %d", len(rec.SatisfiedCodes))))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Cursos sugeridos"))
	b.WriteString("\n")
	if len(rec.Suggestions) == 0 {
		b.WriteString(dimStyle.Render("No hay cursos habilitados por cursar en este momento."))
		b.WriteString("\n")
	} else {
		writeSuggestions(&b, rec.Suggestions)
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Paquete de gratuidad (máx. %d créditos)", rec.CreditCeiling)))
	b.WriteString("\n")
	if len(rec.Bundle) == 0 {
		b.WriteString(dimStyle.Render("Ningún curso cabe dentro del tope de créditos."))
		b.WriteString("\n")
	} else {
		writeSuggestions(&b, rec.Bundle)
		b.WriteString(fmt.Sprintf("Total: %d créditos\n", rec.BundleCredits))
	}

	if len(rec.Unmatched) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d registro(s) del historial sin equivalencia:", len(rec.Unmatched))))
		b.WriteString("\n")
		for _, u := range rec.Unmatched {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  - %s %s", u.Code, u.Name)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeSuggestions(b *strings.Builder, suggestions []ranking.Suggestion) {
	b.WriteString(fmt.Sprintf("%-8s  %-42s  %4s  %-6s  %s\n", "Código", "Nombre", "Cr.", "Prior.", "Justificación"))
	b.WriteString(strings.Repeat("─", 110))
	b.WriteString("\n")
	for _, s := range suggestions {
		name := s.Course.Name
		if len(name) > 42 {
			name = name[:39] + "..."
		}
		b.WriteString(fmt.Sprintf("%-8s  %-42s  %4d  %-6s  %s\n",
			s.Course.Code, name, s.Course.Credits,
			priorityStyle(s.Priority).Render(s.Priority.Label()),
			s.Justification))
	}
}

func priorityStyle(p ranking.Priority) lipgloss.Style {
	switch p {
	case ranking.PriorityHigh:
		return highStyle
	case ranking.PriorityMedium:
		return mediumStyle
	default:
		return lowStyle
	}
}
