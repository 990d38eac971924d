package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arya-nigam06/reelcut/internal/domain/scoring"
	"github.com/arya-nigam06/reelcut/internal/logging"
	"github.com/arya-nigam06/reelcut/internal/ports"
	"github.com/arya-nigam06/reelcut/internal/ports/adapters/ffmpeg"
	"github.com/arya-nigam06/reelcut/internal/ports/adapters/llm"
	"github.com/arya-nigam06/reelcut/internal/ports/adapters/vadersent"
	"github.com/arya-nigam06/reelcut/internal/ports/adapters/whispercpp"
	"github.com/arya-nigam06/reelcut/internal/types"
	"github.com/arya-nigam06/reelcut/internal/usecase"
	"github.com/arya-nigam06/reelcut/internal/workspace"
)

type Config struct {
	InputVideo string
	OutDir     string

	// WorkDir is the base directory for invocation-scoped intermediates.
	// If empty, defaults to ".cache".
	WorkDir       string
	KeepWorkspace bool

	ReelCount           int
	MaxTotalSeconds     float64
	AffectThreshold     float64
	GenreSampleSegments int
	MaxConcurrent       int

	FFmpegPath  string
	FFprobePath string

	WhisperBin      string
	WhisperModel    string
	WhisperLanguage string

	LLMAPIKey  string
	LLMModel   string
	LLMBaseURL string

	Log logging.Logger
}

func (c Config) Validate() error {
	if c.InputVideo == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.InputVideo); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.ReelCount <= 0 {
		return fmt.Errorf("reel count must be > 0")
	}
	if c.MaxTotalSeconds <= 0 {
		return fmt.Errorf("selection budget must be > 0")
	}
	if c.WhisperModel == "" {
		return fmt.Errorf("whisper model path is required")
	}
	if c.LLMAPIKey == "" {
		return fmt.Errorf("llm api key is required")
	}
	return nil
}

// Run wires adapters and the invocation workspace, then executes the
// pipeline to completion. The workspace is cleaned up on both terminal
// success and failure unless KeepWorkspace is set.
func Run(ctx context.Context, cfg Config) (types.PipelineResult, error) {
	log := cfg.Log
	if log == nil {
		log = logging.Default()
	}

	ws, err := workspace.New(cfg.WorkDir, cfg.KeepWorkspace)
	if err != nil {
		return types.PipelineResult{}, err
	}
	defer func() {
		if cerr := ws.Close(); cerr != nil {
			log.Warnf("workspace cleanup: %v", cerr)
		}
	}()
	log.Infof("run %s: workspace %s", ws.ID(), ws.Dir())

	policy := scoring.DefaultPolicy()
	if cfg.AffectThreshold != 0 {
		policy.AffectThreshold = cfg.AffectThreshold
	}

	uc := usecase.New(usecase.Deps{
		Video:     ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath),
		ASR:       whispercpp.New(cfg.WhisperBin, cfg.WhisperModel, cfg.WhisperLanguage),
		Analyst:   llm.New(cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMBaseURL),
		Sentiment: vadersent.New(),
		Log:       log,
	})

	res, err := uc.Run(ctx, usecase.Input{
		InputVideo:          cfg.InputVideo,
		OutDir:              cfg.OutDir,
		Workspace:           ws,
		ReelCount:           cfg.ReelCount,
		Budget:              types.Budget{MaxTotalSeconds: cfg.MaxTotalSeconds},
		Policy:              policy,
		GenreSampleSegments: cfg.GenreSampleSegments,
		MaxConcurrent:       cfg.MaxConcurrent,
	})
	if err != nil {
		return types.PipelineResult{}, err
	}

	if err := writeResult(cfg.OutDir, res.PipelineResult); err != nil {
		return types.PipelineResult{}, err
	}
	log.Infof("done: %d reels, transcript %s", len(res.ReelPaths), res.TranscriptPath)
	return res.PipelineResult, nil
}

func writeResult(outDir string, res types.PipelineResult) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(filepath.Join(outDir, "result.json"), b, 0o644)
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.Transcriber = (*whispercpp.Adapter)(nil)
var _ ports.Analyst = (*llm.Adapter)(nil)
var _ ports.Sentiment = vadersent.Analyzer{}
