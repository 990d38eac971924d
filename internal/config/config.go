package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	LLM         LLMConfig         `yaml:"llm"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Reels       ReelsConfig       `yaml:"reels"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
}

type FFmpegConfig struct {
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
}

type LLMConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type ScoringConfig struct {
	// AffectThreshold is the exclusive sentiment floor for qualification.
	AffectThreshold float64 `yaml:"affect_threshold"`
	// GenreSampleSegments is how many leading segments feed genre detection.
	GenreSampleSegments int `yaml:"genre_sample_segments"`
}

type ReelsConfig struct {
	Count           int     `yaml:"count"`
	MaxTotalSeconds float64 `yaml:"max_total_seconds"`
}

type PathsConfig struct {
	WorkDir string `yaml:"work_dir"`
	OutDir  string `yaml:"out_dir"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	// MaxConcurrent bounds parallel clip extractions; 0 means NumCPU.
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file and applies defaults. A missing path is not
// an error: flags and environment can carry a run on their own.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = ".cache/bin/whisper.cpp"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = ".cache/models/ggml-base.bin"
	}
	if c.FFmpeg.FFmpegPath == "" {
		c.FFmpeg.FFmpegPath = "ffmpeg"
	}
	if c.FFmpeg.FFprobePath == "" {
		c.FFmpeg.FFprobePath = "ffprobe"
	}
	if c.Scoring.AffectThreshold == 0 {
		c.Scoring.AffectThreshold = 0.1
	}
	if c.Scoring.AffectThreshold < -1 || c.Scoring.AffectThreshold >= 1 {
		return fmt.Errorf("scoring.affect_threshold must be in [-1, 1), got %v", c.Scoring.AffectThreshold)
	}
	if c.Scoring.GenreSampleSegments <= 0 {
		c.Scoring.GenreSampleSegments = 5
	}
	if c.Reels.Count <= 0 {
		c.Reels.Count = 3
	}
	if c.Reels.MaxTotalSeconds <= 0 {
		c.Reels.MaxTotalSeconds = 100
	}
	if c.Paths.WorkDir == "" {
		c.Paths.WorkDir = ".cache"
	}
	if c.Paths.OutDir == "" {
		c.Paths.OutDir = "out"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be >= 0, got %d", c.Performance.MaxConcurrent)
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = runtime.NumCPU()
	}
	return nil
}
