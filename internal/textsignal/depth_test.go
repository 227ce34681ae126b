package textsignal

import "testing"

func TestEstimateDepth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Depth
	}{
		{"empty", "", DepthShallow},
		{"plain definition", "A heap is a tree.", DepthShallow},
		{"example alone", "For instance, a priority queue.", DepthMedium},
		{"two signals without example", "First sort it, however it costs memory.", DepthMedium},
		{"one non-example signal", "It depends on the input.", DepthShallow},
		{
			"all four signal classes",
			"First, split the array. However, for example with duplicates, this is a common mistake.",
			DepthDeep,
		},
		{"three signals", "Then WRONG inputs fail, but only sometimes.", DepthDeep},
		{"case-insensitive", "SUCH AS this", DepthMedium},
		{"substring match inside word", "because", DepthMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateDepth(tt.text); got != tt.want {
				t.Errorf("EstimateDepth(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDepthValid(t *testing.T) {
	for _, d := range []Depth{DepthShallow, DepthMedium, DepthDeep} {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	if Depth("profound").Valid() {
		t.Error("unknown depth reported valid")
	}
}
