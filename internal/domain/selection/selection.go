package selection

import "github.com/arya-nigam06/reelcut/internal/types"

// WithinBudget greedily picks candidates in their given (chronological)
// order: a candidate is accepted while it still fits the remaining budget and
// skipped permanently otherwise. No backtracking, no reordering by score, so
// earlier-occurring important moments win over globally optimal packing.
// An empty candidate list yields an empty, valid selection.
func WithinBudget(candidates []types.ScoredSegment, budget types.Budget) []types.ScoredSegment {
	var (
		out         []types.ScoredSegment
		accumulated float64
	)
	for _, c := range candidates {
		d := c.Duration()
		if accumulated+d > budget.MaxTotalSeconds {
			continue
		}
		out = append(out, c)
		accumulated += d
	}
	return out
}
