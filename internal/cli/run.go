package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/arya-nigam06/reelcut/internal/config"
	"github.com/arya-nigam06/reelcut/internal/logging"
	"github.com/arya-nigam06/reelcut/internal/pipeline"
)

func run(cmd *cobra.Command, input string) error {
	configPath, _ := cmd.Flags().GetString("config")
	outDir, _ := cmd.Flags().GetString("out")
	reels, _ := cmd.Flags().GetInt("reels")
	budget, _ := cmd.Flags().GetFloat64("budget")
	keep, _ := cmd.Flags().GetBool("keep")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.Paths.OutDir = outDir
	}
	if reels > 0 {
		cfg.Reels.Count = reels
	}
	if budget > 0 {
		cfg.Reels.MaxTotalSeconds = budget
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if apiKey == "" {
		return errors.New("OPENAI_API_KEY or OPENROUTER_API_KEY is required (set it in .env)")
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Hour)
	defer cancel()

	pcfg := pipeline.Config{
		InputVideo: absIn,
		OutDir:     cfg.Paths.OutDir,
		WorkDir:    cfg.Paths.WorkDir,

		KeepWorkspace: keep,

		ReelCount:           cfg.Reels.Count,
		MaxTotalSeconds:     cfg.Reels.MaxTotalSeconds,
		AffectThreshold:     cfg.Scoring.AffectThreshold,
		GenreSampleSegments: cfg.Scoring.GenreSampleSegments,
		MaxConcurrent:       cfg.Performance.MaxConcurrent,

		FFmpegPath:  cfg.FFmpeg.FFmpegPath,
		FFprobePath: cfg.FFmpeg.FFprobePath,

		WhisperBin:      cfg.Whisper.BinaryPath,
		WhisperModel:    cfg.Whisper.ModelPath,
		WhisperLanguage: cfg.Whisper.Language,

		LLMAPIKey:  apiKey,
		LLMModel:   getenvDefault("LLM_MODEL", cfg.LLM.Model),
		LLMBaseURL: getenvDefault("LLM_BASE_URL", cfg.LLM.BaseURL),

		Log: logging.New(os.Stderr, cfg.Logging.Level),
	}

	if err := pcfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	res, err := pipeline.Run(ctx, pcfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderResult(res))
	return nil
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
