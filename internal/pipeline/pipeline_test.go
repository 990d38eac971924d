package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	in := filepath.Join(t.TempDir(), "in.mp4")
	if err := os.WriteFile(in, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return Config{
		InputVideo:      in,
		OutDir:          "out",
		ReelCount:       3,
		MaxTotalSeconds: 100,
		WhisperModel:    "model.bin",
		LLMAPIKey:       "k",
	}
}

func TestConfigValidate(t *testing.T) {
	if err := validConfig(t).Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input", func(c *Config) { c.InputVideo = "" }},
		{"missing input", func(c *Config) { c.InputVideo = filepath.Join(t.TempDir(), "nope.mp4") }},
		{"zero reels", func(c *Config) { c.ReelCount = 0 }},
		{"zero budget", func(c *Config) { c.MaxTotalSeconds = 0 }},
		{"no whisper model", func(c *Config) { c.WhisperModel = "" }},
		{"no api key", func(c *Config) { c.LLMAPIKey = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig(t)
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
