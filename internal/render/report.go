// Package render draws reports, concepts and explanations for the terminal.
// Output written through these functions is downsampled to the color
// profile of the destination, so non-terminals get plain text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/list"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/confidex/internal/session"
)

const barWidth = 30

// Report writes the full confidence report.
func Report(w io.Writer, r session.Report) error {
	var b strings.Builder

	b.WriteString(header(r))
	b.WriteString("\n")
	b.WriteString(overview(r))
	b.WriteString("\n")

	if len(r.Summary.TopicScores) > 0 {
		b.WriteString(section("Topics"))
		b.WriteString(topicTable(r))
		b.WriteString("\n")
	}
	if len(r.Questions) > 0 {
		b.WriteString(section("Questions"))
		b.WriteString(questionTable(r))
		b.WriteString("\n")
	}
	if len(r.Insights) > 0 {
		b.WriteString(section("Insights"))
		b.WriteString(bullets(r.Insights))
		b.WriteString("\n")
	}

	b.WriteString(section("Confidence Profile"))
	b.WriteString(profile(r))

	if r.Review != nil {
		b.WriteString(section("Answer Review"))
		b.WriteString(review(r.Review))
	}

	_, err := lipgloss.Fprint(w, b.String())
	return err
}

func header(r session.Report) string {
	subject := r.Subject
	if subject == "" {
		subject = "Assessment"
	}
	lines := []string{
		Title.Render("Confidence Report: " + subject),
		Hint.Render("Session " + r.SessionID),
	}
	return Card.Render(strings.Join(lines, "\n"))
}

func overview(r session.Report) string {
	st := r.Stats
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d/%d correct (%.0f%%) in %s\n",
		Body.Render("Answered:"), st.TotalCorrect, st.TotalQuestions, st.Accuracy*100, st.Duration.Round(time.Second))
	fmt.Fprintf(&b, "%s %s\n", Body.Render("Overall:  "), Bar(r.Summary.OverallScore, barWidth))
	fmt.Fprintf(&b, "%s %.1fs average, %d%% consistent\n",
		Body.Render("Pace:     "), r.Summary.AverageTime, r.Summary.ConsistencyScore)
	if r.AdaptiveMessage != "" {
		b.WriteString(Hint.Render(r.AdaptiveMessage))
		b.WriteString("\n")
	}
	return b.String()
}

func topicTable(r session.Report) string {
	rows := make([][]string, 0, len(r.Summary.TopicScores))
	for _, ts := range r.Summary.TopicScores {
		rows = append(rows, []string{
			ts.Topic,
			Bar(ts.Score, 12),
			strconv.Itoa(ts.Count),
			string(ts.Category),
		})
	}
	return newTable([]string{"Topic", "Score", "Questions", "Category"}, rows, 3) + "\n"
}

func questionTable(r session.Report) string {
	rows := make([][]string, 0, len(r.Questions))
	for _, q := range r.Questions {
		rows = append(rows, []string{
			q.QuestionID,
			q.Topic,
			fmt.Sprintf("%.2f", q.Result.FinalConfidence),
			fmt.Sprintf("%+.0f", q.Result.ZScore),
			string(q.Result.Category),
		})
	}
	return newTable([]string{"Question", "Topic", "Confidence", "Z", "Category"}, rows, 4) + "\n"
}

func profile(r session.Report) string {
	p := r.Profile
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n",
		Body.Render("Profile score:"),
		Bar(float64(p.OverallScore)/100, barWidth),
		Hint.Render("trend: "+string(p.Trend)))

	rows := make([][]string, 0, len(p.Dimensions))
	for _, d := range p.Dimensions {
		rows = append(rows, []string{
			string(d.Name),
			strconv.Itoa(d.Score),
			string(d.Label),
			d.Explanation,
		})
	}
	b.WriteString(newTable([]string{"Dimension", "Score", "Label", "Why"}, rows, 2))
	b.WriteString("\n")

	if p.BehaviorSummary != "" {
		b.WriteString(Body.Render(p.BehaviorSummary))
		b.WriteString("\n")
	}
	if len(p.Recommendations) > 0 {
		b.WriteString(Heading.Render("Next steps"))
		b.WriteString("\n")
		b.WriteString(numbered(p.Recommendations))
	}
	return b.String()
}

func review(rv *session.Review) string {
	var b strings.Builder
	for _, a := range rv.Answers {
		s := a.Analysis
		fmt.Fprintf(&b, "%s %s  clarity %.0f, correctness %.0f, confidence %.0f, reasoning %.0f\n",
			Body.Bold(true).Render(a.QuestionID),
			Hint.Render("("+a.Topic+")"),
			s.Clarity, s.Correctness, s.Confidence, s.ReasoningQuality)
		fmt.Fprintf(&b, "  %s\n", s.Feedback)
	}

	if len(rv.Concepts) > 0 {
		rows := make([][]string, 0, len(rv.Concepts))
		for _, c := range rv.Concepts {
			rows = append(rows, []string{
				c.Concept,
				strconv.Itoa(c.Score),
				string(c.Status),
				strings.Join(c.WeakPoints, ", "),
				c.Recommendation,
			})
		}
		b.WriteString("\n")
		b.WriteString(newTable([]string{"Concept", "Score", "Status", "Weak points", "Recommendation"}, rows, 2))
		b.WriteString("\n")
	}
	return b.String()
}

func section(title string) string {
	return Heading.Render(title) + "\n"
}

// newTable renders rows with a rounded border. labelCol, when in range, is
// colored by its category text.
func newTable(headers []string, rows [][]string, labelCol int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeader
			}
			if col == labelCol && row >= 0 && row < len(rows) {
				return LabelStyle(rows[row][col]).Padding(0, 1)
			}
			return TableCell
		})
	return t.Render()
}

func bullets(items []string) string {
	return list.New(toAny(items)...).
		Enumerator(list.Bullet).
		ItemStyle(Body).
		String() + "\n"
}

func numbered(items []string) string {
	return list.New(toAny(items)...).
		Enumerator(list.Arabic).
		EnumeratorStyle(Hint).
		ItemStyle(Body).
		String() + "\n"
}

func toAny(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}
