package whispercpp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arya-nigam06/reelcut/internal/types"
)

type Adapter struct {
	bin      string
	model    string
	language string
}

func New(binPath, modelPath, language string) *Adapter {
	return &Adapter{bin: binPath, model: modelPath, language: language}
}

func (a *Adapter) Transcribe(ctx context.Context, wavPath, workDir string) ([]types.Segment, error) {
	outPrefix := filepath.Join(workDir, "whisper")
	args := []string{
		"-m", a.model,
		"-f", wavPath,
		"-oj",
		"-of", outPrefix,
	}
	if a.language != "" {
		args = append(args, "-l", a.language)
	}
	cmd := exec.CommandContext(ctx, a.bin, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("whisper.cpp failed: %w\n%s", err, string(b))
	}

	jb, err := os.ReadFile(outPrefix + ".json")
	if err != nil {
		return nil, err
	}
	return ParseJSON(jb)
}

// ParseJSON decodes whisper.cpp -oj output into ordered segments. Segment
// ordering and positive durations are validated here so every later stage can
// assume them.
func ParseJSON(b []byte) ([]types.Segment, error) {
	var raw struct {
		Segments []types.Segment `json:"segments"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode whisper output: %w", err)
	}

	segs := raw.Segments
	for i := range segs {
		segs[i].Text = strings.TrimSpace(segs[i].Text)
	}
	for i, s := range segs {
		if s.End <= s.Start {
			return nil, fmt.Errorf("segment %d has non-positive duration (%.2f-%.2f)", i, s.Start, s.End)
		}
		if i > 0 && s.Start < segs[i-1].Start {
			return nil, fmt.Errorf("segment %d out of order (%.2f after %.2f)", i, s.Start, segs[i-1].Start)
		}
	}
	return segs, nil
}
