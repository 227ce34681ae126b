package features

import "testing"

func TestAlignment(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		correct    bool
		want       float64
	}{
		{"high and correct", 80, true, 100},
		{"low and incorrect", 20, false, 100},
		{"threshold counts as high", 50, true, 100},
		{"overconfident at threshold", 50, false, -50},
		{"overconfident", 90, false, -70},
		{"overconfident maximum", 100, false, -75},
		{"underconfident", 30, true, -20},
		{"underconfident zero", 0, true, -30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Alignment(tt.confidence, tt.correct); got != tt.want {
				t.Errorf("Alignment(%v, %v) = %v, want %v", tt.confidence, tt.correct, got, tt.want)
			}
		})
	}
}

func TestAlignment_Range(t *testing.T) {
	for c := 0.0; c <= 100; c += 0.5 {
		for _, correct := range []bool{true, false} {
			got := Alignment(c, correct)
			if got < -100 || got > 100 {
				t.Fatalf("Alignment(%v, %v) = %v out of range", c, correct, got)
			}
		}
	}
}
