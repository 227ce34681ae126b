package render

import (
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/confidex/internal/concept"
	"github.com/abhisek/confidex/internal/explain"
)

// Concepts writes each extracted concept with its summary.
func Concepts(w io.Writer, concepts []concept.Concept) error {
	var b strings.Builder
	if len(concepts) == 0 {
		b.WriteString(Hint.Render("No concepts found."))
		b.WriteString("\n")
	}
	for i, c := range concepts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Title.Render(c.Title))
		b.WriteString("\n")
		b.WriteString(Body.Render(c.Summary))
		b.WriteString("\n")
	}
	_, err := lipgloss.Fprint(w, b.String())
	return err
}

// Explanation writes a concept explanation inside a card.
func Explanation(w io.Writer, e explain.Explanation) error {
	lines := []string{
		Title.Render(e.Concept),
		"",
		Body.Render(e.Explanation),
		"",
		Hint.Render(e.Example),
	}
	if e.Source == explain.SourceFallback {
		lines = append(lines, "", Hint.Render("(offline explanation)"))
	}
	_, err := lipgloss.Fprintln(w, Card.Render(strings.Join(lines, "\n")))
	return err
}
