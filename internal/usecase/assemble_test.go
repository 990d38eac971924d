package usecase

import (
	"testing"

	"github.com/arya-nigam06/reelcut/internal/types"
)

func TestDistribute_RoundRobinByChronologicalPosition(t *testing.T) {
	// Clips arrive in completion order, not time order.
	arrival := []float64{60, 0, 30, 10, 50, 20, 40}
	clips := make([]types.ExtractedClip, 0, len(arrival))
	for _, start := range arrival {
		clips = append(clips, types.ExtractedClip{Segment: types.Segment{Start: start, End: start + 5}})
	}

	groups := distribute(clips, 3)
	want := [][]float64{
		{0, 30, 60},
		{10, 40},
		{20, 50},
	}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for gi, starts := range want {
		if len(groups[gi]) != len(starts) {
			t.Fatalf("group %d: expected %d clips, got %d", gi, len(starts), len(groups[gi]))
		}
		for ci, s := range starts {
			if groups[gi][ci].Segment.Start != s {
				t.Fatalf("group %d clip %d: expected start %v, got %v", gi, ci, s, groups[gi][ci].Segment.Start)
			}
		}
	}
}

func TestDistribute_FewerClipsThanReels(t *testing.T) {
	clips := []types.ExtractedClip{
		{Segment: types.Segment{Start: 0, End: 5}},
		{Segment: types.Segment{Start: 10, End: 15}},
	}
	groups := distribute(clips, 3)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if len(groups[2]) != 0 {
		t.Fatalf("expected empty third group, got %d clips", len(groups[2]))
	}
}
