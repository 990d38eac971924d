package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arya-nigam06/reelcut/internal/domain/scoring"
	"github.com/arya-nigam06/reelcut/internal/domain/selection"
	"github.com/arya-nigam06/reelcut/internal/domain/subtitles"
	"github.com/arya-nigam06/reelcut/internal/logging"
	"github.com/arya-nigam06/reelcut/internal/ports"
	"github.com/arya-nigam06/reelcut/internal/types"
	"github.com/arya-nigam06/reelcut/internal/workspace"
)

type Deps struct {
	Video     ports.VideoTool
	ASR       ports.Transcriber
	Analyst   ports.Analyst
	Sentiment ports.Sentiment
	Log       logging.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase {
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	return Usecase{d: d}
}

type Input struct {
	InputVideo string
	OutDir     string
	Workspace  *workspace.Workspace

	ReelCount           int
	Budget              types.Budget
	Policy              scoring.Policy
	GenreSampleSegments int
	MaxConcurrent       int
}

type Result struct {
	types.PipelineResult

	Genre    string
	Selected int
}

// Run drives the pipeline: extract audio, transcribe, score against the
// importance narrative, select under the duration budget, cut clips in
// parallel, assemble reels, and emit subtitles plus the flat transcript over
// the full input. Each stage fully completes before the next consumes its
// output.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	ws := in.Workspace

	u.d.Log.Infof("extracting audio from %s", in.InputVideo)
	wav := ws.AudioPath()
	if err := u.d.Video.ExtractAudioMono16k(ctx, in.InputVideo, wav); err != nil {
		return Result{}, &MediaDecodeError{Stage: "extract audio", Path: in.InputVideo, Err: err}
	}

	u.d.Log.Infof("transcribing audio")
	segs, err := u.d.ASR.Transcribe(ctx, wav, ws.Dir())
	if err != nil {
		return Result{}, &MediaDecodeError{Stage: "transcribe", Path: wav, Err: err}
	}
	u.d.Log.Infof("transcription produced %d segments", len(segs))

	genre, narrative, err := u.classify(ctx, segs, in.GenreSampleSegments)
	if err != nil {
		return Result{}, &ScoringUnavailableError{Err: err}
	}
	u.d.Log.Infof("genre: %s", genre)

	candidates := in.Policy.Qualify(segs, narrative, u.d.Sentiment.Polarity)
	u.d.Log.Infof("%d of %d segments qualified", len(candidates), len(segs))

	selected := selection.WithinBudget(candidates, in.Budget)
	u.d.Log.Infof("selected %d segments within %.0fs budget", len(selected), in.Budget.MaxTotalSeconds)

	if err := os.MkdirAll(in.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create out dir: %w", err)
	}

	clips, droppedSegments := u.extractClips(ctx, in, selected)
	reels, droppedReels := u.assembleReels(ctx, in, clips)

	res := Result{Genre: genre, Selected: len(selected)}
	for _, r := range reels {
		res.ReelPaths = append(res.ReelPaths, r.Path)
	}
	res.Dropped = append(res.Dropped, droppedSegments...)
	res.Dropped = append(res.Dropped, droppedReels...)
	if len(res.ReelPaths) == 0 {
		u.d.Log.Warnf("no reels producible: zero qualifying segments or zero successful extractions")
	}

	if err := u.emitSubtitled(ctx, in, segs, &res.PipelineResult); err != nil {
		return Result{}, err
	}
	return res, nil
}

// classify derives the genre from a small transcript prefix, then asks for
// the whole-transcript importance narrative. Both are single calls; either
// failing makes scoring unavailable.
func (u Usecase) classify(ctx context.Context, segs []types.Segment, sampleN int) (genre, narrative string, err error) {
	if sampleN <= 0 {
		sampleN = 5
	}
	if sampleN > len(segs) {
		sampleN = len(segs)
	}
	parts := make([]string, 0, sampleN)
	for _, s := range segs[:sampleN] {
		parts = append(parts, s.Text)
	}

	genre, err = u.d.Analyst.IdentifyGenre(ctx, strings.Join(parts, " "))
	if err != nil {
		return "", "", err
	}
	narrative, err = u.d.Analyst.ImportanceNarrative(ctx, genre, subtitles.FlatTranscript(segs))
	if err != nil {
		return "", "", err
	}
	return genre, narrative, nil
}

// emitSubtitled covers every original transcript segment, independent of
// selection: the SRT track, the subtitled master video, and the flat
// transcript.
func (u Usecase) emitSubtitled(ctx context.Context, in Input, segs []types.Segment, res *types.PipelineResult) error {
	srt := subtitles.RenderSRT(segs)
	srtWork := in.Workspace.SubtitlePath()
	if err := os.WriteFile(srtWork, []byte(srt), 0o644); err != nil {
		return fmt.Errorf("write subtitles: %w", err)
	}

	u.d.Log.Infof("burning subtitles into full video")
	highlight := filepath.Join(in.OutDir, "highlight_video_with_subtitles.mp4")
	if err := u.d.Video.BurnSubtitles(ctx, in.InputVideo, srtWork, highlight); err != nil {
		return fmt.Errorf("burn subtitles: %w", err)
	}
	res.HighlightVideoPath = highlight

	srtOut := filepath.Join(in.OutDir, "subtitles.srt")
	if err := os.WriteFile(srtOut, []byte(srt), 0o644); err != nil {
		return fmt.Errorf("write subtitles: %w", err)
	}
	res.SubtitlePath = srtOut

	transcript := filepath.Join(in.OutDir, "transcription.txt")
	if err := os.WriteFile(transcript, []byte(subtitles.FlatTranscript(segs)), 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	res.TranscriptPath = transcript
	return nil
}
