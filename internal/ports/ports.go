package ports

import (
	"context"

	"github.com/arya-nigam06/reelcut/internal/types"
)

// VideoTool is the trimming/muxing capability, addressed by file paths and
// time ranges in seconds.
type VideoTool interface {
	ExtractAudioMono16k(ctx context.Context, inVideo, outWav string) error
	// CutStreamCopy trims [start,end) from inVideo without re-encoding.
	CutStreamCopy(ctx context.Context, inVideo string, start, end float64, outPath string) error
	// ConcatCopy losslessly joins the clips listed in the concat manifest.
	ConcatCopy(ctx context.Context, listFile, outPath string) error
	// BurnSubtitles renders srtPath onto inVideo.
	BurnSubtitles(ctx context.Context, inVideo, srtPath, outPath string) error
	ProbeDuration(ctx context.Context, inVideo string) (float64, error)
}

// Transcriber converts an audio file into ordered, timestamped segments.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath, workDir string) ([]types.Segment, error)
}

// Analyst is the text-generation capability behind scoring: one call for the
// genre label, one for the whole-transcript importance narrative.
type Analyst interface {
	IdentifyGenre(ctx context.Context, sample string) (string, error)
	ImportanceNarrative(ctx context.Context, genre, transcript string) (string, error)
}

// Sentiment returns a polarity estimate in [-1, 1] for a piece of text.
type Sentiment interface {
	Polarity(text string) float64
}
