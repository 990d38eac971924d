package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Reels.Count != 3 {
		t.Errorf("reels.count = %d, want 3", cfg.Reels.Count)
	}
	if cfg.Reels.MaxTotalSeconds != 100 {
		t.Errorf("reels.max_total_seconds = %v, want 100", cfg.Reels.MaxTotalSeconds)
	}
	if cfg.Scoring.AffectThreshold != 0.1 {
		t.Errorf("scoring.affect_threshold = %v, want 0.1", cfg.Scoring.AffectThreshold)
	}
	if cfg.Scoring.GenreSampleSegments != 5 {
		t.Errorf("scoring.genre_sample_segments = %d, want 5", cfg.Scoring.GenreSampleSegments)
	}
	if cfg.Performance.MaxConcurrent != runtime.NumCPU() {
		t.Errorf("performance.max_concurrent = %d, want NumCPU", cfg.Performance.MaxConcurrent)
	}
	if cfg.FFmpeg.FFmpegPath != "ffmpeg" {
		t.Errorf("ffmpeg path = %q", cfg.FFmpeg.FFmpegPath)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
reels:
  count: 5
  max_total_seconds: 45
scoring:
  affect_threshold: 0.25
whisper:
  model_path: /models/ggml-small.bin
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Reels.Count != 5 || cfg.Reels.MaxTotalSeconds != 45 {
		t.Errorf("unexpected reels config: %+v", cfg.Reels)
	}
	if cfg.Scoring.AffectThreshold != 0.25 {
		t.Errorf("affect_threshold = %v, want 0.25", cfg.Scoring.AffectThreshold)
	}
	if cfg.Whisper.ModelPath != "/models/ggml-small.bin" {
		t.Errorf("model_path = %q", cfg.Whisper.ModelPath)
	}
	// Untouched fields still get defaults.
	if cfg.Paths.OutDir != "out" {
		t.Errorf("paths.out_dir = %q, want out", cfg.Paths.OutDir)
	}
}

func TestValidate_RejectsBadAffectThreshold(t *testing.T) {
	cfg := &Config{Scoring: ScoringConfig{AffectThreshold: 1.5}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for affect threshold outside [-1, 1)")
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
