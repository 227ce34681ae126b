package concept

// Concept is one titled section of study material.
type Concept struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}

// Extract normalizes text, splits it into sections and summarizes each.
func Extract(text string) []Concept {
	sections := SplitSections(Normalize(text))
	concepts := make([]Concept, 0, len(sections))
	for _, s := range sections {
		concepts = append(concepts, Concept{
			Title:   s.Title,
			Content: s.Content,
			Summary: Summarize(s.Content, DefaultSummaryLength),
		})
	}
	return concepts
}

// Topics returns the concept titles in document order.
func Topics(concepts []Concept) []string {
	topics := make([]string, len(concepts))
	for i, c := range concepts {
		topics[i] = c.Title
	}
	return topics
}
