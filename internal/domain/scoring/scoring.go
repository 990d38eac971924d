package scoring

import (
	"strings"

	"github.com/arya-nigam06/reelcut/internal/types"
)

// Policy is the qualification gate for transcript segments. A segment
// qualifies only when it shares at least one narrative keyword AND its affect
// clears the threshold; everything else is excluded outright, not scored low.
type Policy struct {
	// AffectThreshold is the minimum exclusive sentiment polarity.
	AffectThreshold float64
}

func DefaultPolicy() Policy {
	return Policy{AffectThreshold: 0.1}
}

// Qualify annotates the segments that pass the gate, preserving input order.
// affect estimates sentiment polarity in [-1, 1] for a segment's text.
func (p Policy) Qualify(segments []types.Segment, narrative string, affect func(string) float64) []types.ScoredSegment {
	keywords := narrativeKeywords(narrative)
	if len(keywords) == 0 {
		return nil
	}

	var out []types.ScoredSegment
	for _, seg := range segments {
		matched := matchKeywords(seg.Text, keywords)
		if len(matched) == 0 {
			continue
		}
		a := affect(seg.Text)
		if a <= p.AffectThreshold {
			continue
		}
		out = append(out, types.ScoredSegment{
			Segment:         seg,
			Importance:      float64(len(matched)) * (1 + a),
			MatchedKeywords: matched,
		})
	}
	return out
}

// narrativeKeywords tokenizes the importance narrative on whitespace,
// lowercased and deduplicated.
func narrativeKeywords(narrative string) []string {
	fields := strings.Fields(strings.ToLower(narrative))
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func matchKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
