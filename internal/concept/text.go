// Package concept splits study material into titled concepts and grades a
// concept from rubric analyses of the answers given about it.
package concept

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSummaryLength is the summary budget used by Extract, in runes.
const DefaultSummaryLength = 240

// IntroductionTitle names text that appears before the first heading.
const IntroductionTitle = "Introduction"

const (
	maxHeadingLength  = 80
	headingUpperRatio = 0.6
)

// Section is a heading and the text under it.
type Section struct {
	Title   string
	Content string
}

// Normalize trims every line and then the whole text.
func Normalize(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// IsHeading reports whether a line looks like a title: short, with more
// than 60% of its purely alphabetic words capitalised.
func IsHeading(line string) bool {
	if utf8.RuneCountInString(line) > maxHeadingLength {
		return false
	}
	var words, upper int
	for _, tok := range strings.Fields(line) {
		if !isAlpha(tok) {
			continue
		}
		words++
		if r, _ := utf8.DecodeRuneInString(tok); unicode.IsUpper(r) {
			upper++
		}
	}
	if words == 0 {
		return false
	}
	return float64(upper)/float64(words) > headingUpperRatio
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// SplitSections groups non-empty lines under the nearest preceding heading.
// Content lines are joined with single spaces. Headings with no content
// produce no section.
func SplitSections(text string) []Section {
	var (
		sections []Section
		title    = IntroductionTitle
		buf      []string
	)
	flush := func() {
		if len(buf) > 0 {
			sections = append(sections, Section{Title: title, Content: strings.Join(buf, " ")})
			buf = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if IsHeading(line) {
			flush()
			title = line
			continue
		}
		buf = append(buf, line)
	}
	flush()
	return sections
}

// Summarize keeps leading sentences while their combined length (without
// separators) stays within maxLen runes. When even the first sentence is
// too long it returns the first maxLen runes.
func Summarize(text string, maxLen int) string {
	text = strings.TrimSpace(text)

	var (
		out   []string
		total int
	)
	for _, s := range splitSentences(text) {
		n := utf8.RuneCountInString(s)
		if total+n > maxLen {
			break
		}
		out = append(out, s)
		total += n
	}
	if len(out) > 0 {
		return strings.Join(out, " ")
	}
	return truncateRunes(text, maxLen)
}

// splitSentences splits after '.', '!' or '?' when followed by whitespace.
func splitSentences(text string) []string {
	var (
		out   []string
		start int
	)
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if !strings.ContainsRune(".!?", runes[i]) || i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		out = append(out, string(runes[start:i+1]))
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
