package subtitles

import (
	"fmt"
	"math"
	"strings"

	"github.com/arya-nigam06/reelcut/internal/types"
)

// RenderSRT renders the full transcript as a SubRip track: sequential blocks
// of index, "start --> end" and text, separated by blank lines.
func RenderSRT(segments []types.Segment) string {
	var b strings.Builder
	for i, s := range segments {
		fmt.Fprintf(&b, "%d\n", i+1)
		b.WriteString(Timestamp(s.Start))
		b.WriteString(" --> ")
		b.WriteString(Timestamp(s.End))
		b.WriteString("\n")
		b.WriteString(s.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// FlatTranscript joins segment texts with single spaces, in original order.
func FlatTranscript(segments []types.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// Timestamp formats seconds as the SRT HH:MM:SS,mmm form with zero-padded
// fields and three millisecond digits.
func Timestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	total := int64(math.Round(sec * 1000))
	ms := total % 1000
	s := (total / 1000) % 60
	m := (total / 60000) % 60
	h := total / 3600000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
