package types

// Segment is one contiguous, time-bounded span of transcribed speech.
// Segments are ordered by Start and non-overlapping; ordering comes from the
// transcription engine and is validated at the adapter boundary.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 { return s.End - s.Start }

// ScoredSegment is a transcript segment that qualified for selection.
// Importance is policy-defined and unbounded; higher means more important.
type ScoredSegment struct {
	Segment

	Importance      float64
	MatchedKeywords []string
}

// Budget caps the total duration of all selected segments.
type Budget struct {
	MaxTotalSeconds float64
}

// ExtractedClip is one trimmed media file produced from a selected segment.
// Ordinal is the segment's position in the selection, not completion order.
type ExtractedClip struct {
	Segment Segment
	Path    string
	Ordinal int
}

// Reel is one assembled output video built from chronologically ordered clips.
type Reel struct {
	Index int
	Clips []ExtractedClip
	Path  string
}

// PipelineResult is the externally visible output contract. Dropped lists
// recoverable per-segment and per-reel failures so the caller always knows
// exactly which artifacts exist.
type PipelineResult struct {
	ReelPaths          []string `json:"reel_paths"`
	HighlightVideoPath string   `json:"highlight_video_path"`
	TranscriptPath     string   `json:"transcript_path"`
	SubtitlePath       string   `json:"subtitle_path"`
	Dropped            []string `json:"dropped,omitempty"`
}
