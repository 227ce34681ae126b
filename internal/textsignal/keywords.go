package textsignal

import "strings"

// MaxKeywords caps how many keywords ExtractKeywords returns.
const MaxKeywords = 10

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "is": true, "was": true, "are": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "must": true, "can": true,
}

// ExtractKeywords returns up to MaxKeywords candidate keywords from text in
// their original order. Anything that is not an ASCII word character splits
// tokens. Tokens of three characters or fewer and stop words are dropped.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if isWordChar(r) {
			return r
		}
		return ' '
	}, lower)

	var out []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 3 || stopWords[w] {
			continue
		}
		out = append(out, w)
		if len(out) == MaxKeywords {
			break
		}
	}
	return out
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
