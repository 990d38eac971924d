package selection

import (
	"testing"

	"github.com/arya-nigam06/reelcut/internal/types"
)

func scored(start, end float64) types.ScoredSegment {
	return types.ScoredSegment{Segment: types.Segment{Start: start, End: end, Text: "x"}}
}

func TestWithinBudget_GreedyOrderPreserving(t *testing.T) {
	// Three 40s segments against a 100s budget: the first two fit (80s),
	// the third would overflow (120s) and is skipped.
	cands := []types.ScoredSegment{
		scored(0, 40),
		scored(40, 80),
		scored(80, 120),
	}
	got := WithinBudget(cands, types.Budget{MaxTotalSeconds: 100})
	if len(got) != 2 {
		t.Fatalf("expected 2 selected, got %d", len(got))
	}
	if got[0].Start != 0 || got[1].Start != 40 {
		t.Fatalf("unexpected selection order: %+v", got)
	}
}

func TestWithinBudget_SkipsPermanentlyButKeepsScanning(t *testing.T) {
	// A later, smaller segment still fits after an earlier oversized one
	// was rejected.
	cands := []types.ScoredSegment{
		scored(0, 40),
		scored(40, 80),
		scored(80, 120),
		scored(120, 135),
	}
	got := WithinBudget(cands, types.Budget{MaxTotalSeconds: 100})
	if len(got) != 3 {
		t.Fatalf("expected 3 selected, got %d", len(got))
	}
	if got[2].Start != 120 {
		t.Fatalf("expected trailing 15s segment, got %+v", got[2])
	}
}

func TestWithinBudget_NeverExceedsBudget(t *testing.T) {
	cands := []types.ScoredSegment{
		scored(0, 33),
		scored(33, 70),
		scored(70, 99),
		scored(99, 131),
		scored(131, 140),
	}
	budget := types.Budget{MaxTotalSeconds: 90}
	var total float64
	for _, s := range WithinBudget(cands, budget) {
		total += s.Duration()
	}
	if total > budget.MaxTotalSeconds {
		t.Fatalf("selection total %.2f exceeds budget %.2f", total, budget.MaxTotalSeconds)
	}
}

func TestWithinBudget_EmptyCandidates(t *testing.T) {
	if got := WithinBudget(nil, types.Budget{MaxTotalSeconds: 100}); len(got) != 0 {
		t.Fatalf("expected empty selection, got %d", len(got))
	}
}
