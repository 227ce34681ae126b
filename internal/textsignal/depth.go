// Package textsignal derives cheap keyword signals from free-text explanations.
package textsignal

import "strings"

// Depth classifies how thorough an explanation is.
type Depth string

const (
	DepthShallow Depth = "shallow"
	DepthMedium  Depth = "medium"
	DepthDeep    Depth = "deep"
)

// Valid reports whether d is one of the known depth levels.
func (d Depth) Valid() bool {
	switch d {
	case DepthShallow, DepthMedium, DepthDeep:
		return true
	}
	return false
}

// Signal vocabularies. Matching is by lower-case substring, so "case" also
// fires on "because" and "then" on "strengthen".
var (
	multiStepTerms    = []string{"step", "first", "second", "third", "then", "moreover", "furthermore"}
	exampleTerms      = []string{"example", "such as", "for instance", "case"}
	nuanceTerms       = []string{"however", "but", "edge case", "depends", "context", "tradeoff"}
	counterpointTerms = []string{"wrong", "incorrect", "common mistake", "avoid"}
)

// EstimateDepth classifies an explanation from four independent signals:
// multi-step language, examples, nuance and counterpoints. Three or more
// signals make it deep. Two signals, or an example on its own, make it medium.
func EstimateDepth(text string) Depth {
	lower := strings.ToLower(text)

	hasExample := containsAny(lower, exampleTerms)
	signals := 0
	for _, hit := range []bool{
		containsAny(lower, multiStepTerms),
		hasExample,
		containsAny(lower, nuanceTerms),
		containsAny(lower, counterpointTerms),
	} {
		if hit {
			signals++
		}
	}

	switch {
	case signals >= 3:
		return DepthDeep
	case signals >= 2 || hasExample:
		return DepthMedium
	default:
		return DepthShallow
	}
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
