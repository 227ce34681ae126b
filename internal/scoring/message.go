package scoring

// AdaptiveMessage returns the closing message for an overall score in [0,1].
func AdaptiveMessage(overall float64) string {
	percentage := overall * 100
	switch {
	case percentage >= 80:
		return "Excellent work! Your confidence and accuracy show strong conceptual mastery."
	case percentage >= 60:
		return "Good progress. With targeted refinement in a few areas, your confidence will significantly improve."
	default:
		return "You're building understanding. Revisiting core concepts and practicing edge cases will boost clarity."
	}
}
