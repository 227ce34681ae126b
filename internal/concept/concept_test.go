package concept

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/confidex/internal/analysis"
)

const notes = `
  Searching basics are covered first.

Binary Search
  Binary search finds an item in a sorted array.   
It halves the range on every step!
Is it fast? Yes, it runs in logarithmic time.

Hash Tables
A hash table maps keys to buckets.

Empty Heading Here
`

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b\nc\n\nd", Normalize("  \n  a b  \r\n c\n\n d \n\n"))
}

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Binary Search", true},
		{"Introduction to Graph Theory", true}, // 3 of 4 capitalised
		{"Sorting is fun", false},
		{"Merge Sort and the art", false},    // 2 of 5
		{"1. 2. 3.", false},                  // no alphabetic words
		{"Dynamic Programming (DP)", true},   // "(DP)" is not alphabetic
		{strings.Repeat("Word ", 17), false}, // longer than 80
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsHeading(tt.line), tt.line)
	}
}

func TestSplitSections(t *testing.T) {
	got := SplitSections(Normalize(notes))

	require.Len(t, got, 3)
	assert.Equal(t, Section{Title: IntroductionTitle, Content: "Searching basics are covered first."}, got[0])
	assert.Equal(t, "Binary Search", got[1].Title)
	assert.Equal(t, "Binary search finds an item in a sorted array. It halves the range on every step! Is it fast? Yes, it runs in logarithmic time.", got[1].Content)
	assert.Equal(t, Section{Title: "Hash Tables", Content: "A hash table maps keys to buckets."}, got[2])
}

func TestSplitSections_NoHeadings(t *testing.T) {
	got := SplitSections("plain text only\nmore text here")
	require.Len(t, got, 1)
	assert.Equal(t, IntroductionTitle, got[0].Title)
	assert.Equal(t, "plain text only more text here", got[0].Content)
}

func TestSplitSentences(t *testing.T) {
	assert.Equal(t, []string{"One.", "Two!", "Three?", "Four"}, splitSentences("One.  Two!\nThree? Four"))
	assert.Equal(t, []string{"v1.2 is out."}, splitSentences("v1.2 is out."))
}

func TestSummarize(t *testing.T) {
	text := "First sentence here. Second one follows. Third is last."

	assert.Equal(t, text, Summarize(text, DefaultSummaryLength))
	// 20 + 19 runes fit in 39; the separator is not counted.
	assert.Equal(t, "First sentence here. Second one follows.", Summarize(text, 39))
	assert.Equal(t, "First sentence here.", Summarize(text, 38))
	// Nothing fits: hard cut.
	assert.Equal(t, "First sent", Summarize(text, 10))
	assert.Equal(t, "", Summarize("", 10))
}

func TestExtract(t *testing.T) {
	concepts := Extract(notes)
	require.Len(t, concepts, 3)
	assert.Equal(t, []string{IntroductionTitle, "Binary Search", "Hash Tables"}, Topics(concepts))
	assert.Equal(t, concepts[1].Content, concepts[1].Summary)
}

func TestEvaluate(t *testing.T) {
	got := Evaluate("Binary Search", []analysis.Scores{
		{Clarity: 80, Correctness: 90, Confidence: 70, ReasoningQuality: 60},
		{Clarity: 70, Correctness: 80, Confidence: 60, ReasoningQuality: 50},
	})

	// 0.4*85 + 0.35*75 + 0.15*65 + 0.10*55 = 75.5, rounded half to even.
	assert.Equal(t, 76, got.Score)
	assert.Equal(t, StatusStrong, got.Status)
	assert.Equal(t, []string{"reasoning quality"}, got.WeakPoints)
	assert.Equal(t, "Advance to application and interview-style questions.", got.Recommendation)
}

func TestEvaluate_Weak(t *testing.T) {
	got := Evaluate("Graphs", []analysis.Scores{analysis.Fallback().Scores, {}})

	// Averages 27.5/27.5/25/27.5.
	assert.Equal(t, 27, got.Score)
	assert.Equal(t, StatusWeak, got.Status)
	assert.Equal(t, []string{"correctness", "clarity", "reasoning quality", "self-confidence alignment"}, got.WeakPoints)
}

func TestEvaluate_NoWeakPoints(t *testing.T) {
	got := Evaluate("Heaps", []analysis.Scores{{Clarity: 60, Correctness: 60, Confidence: 50, ReasoningQuality: 60}})
	// 58.5 rounds half to even.
	assert.Equal(t, 58, got.Score)
	assert.Equal(t, StatusMedium, got.Status)
	assert.Equal(t, []string{"review fundamentals"}, got.WeakPoints)
}

func TestEvaluate_Empty(t *testing.T) {
	got := Evaluate("Tries", nil)
	assert.Equal(t, Evaluation{
		Concept:        "Tries",
		Status:         StatusWeak,
		WeakPoints:     []string{"insufficient data"},
		Recommendation: InsufficientDataRecommendation,
	}, got)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusStrong, StatusFor(75))
	assert.Equal(t, StatusMedium, StatusFor(74))
	assert.Equal(t, StatusMedium, StatusFor(50))
	assert.Equal(t, StatusWeak, StatusFor(49))
}
