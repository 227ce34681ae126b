package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	c, ok := LookupCost("gpt-4o-mini")
	if !ok {
		t.Fatal("gpt-4o-mini should be priced")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Cost = %v, want 0.75", got)
	}

	if _, ok := LookupCost("google/gemini-2.0-flash-001"); !ok {
		t.Error("vendor-prefixed ID should fall back to the bare model")
	}
	if _, ok := LookupCost("mock"); ok {
		t.Error("mock should not be priced")
	}
}
