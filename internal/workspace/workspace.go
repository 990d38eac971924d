package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/arya-nigam06/reelcut/internal/types"
)

// Workspace is the invocation-scoped set of intermediate artifacts: the
// extracted audio, per-segment clips, reel manifests and the subtitle file.
// Every invocation gets its own directory under <root>/runs keyed by a fresh
// UUID, so concurrent runs sharing a work root never collide. A file lock
// guards the directory for the lifetime of the run.
type Workspace struct {
	dir  string
	id   string
	lock *flock.Flock
	keep bool
}

// New creates and locks a fresh run directory under workRoot. When keep is
// true the directory survives Close for debugging.
func New(workRoot string, keep bool) (*Workspace, error) {
	if workRoot == "" {
		workRoot = ".cache"
	}
	id := uuid.NewString()
	dir := filepath.Join(workRoot, "runs", id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}

	lock := flock.New(filepath.Join(dir, ".lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock run dir: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("run dir %s is already locked", dir)
	}

	return &Workspace{dir: dir, id: id, lock: lock, keep: keep}, nil
}

func (w *Workspace) ID() string  { return w.id }
func (w *Workspace) Dir() string { return w.dir }

func (w *Workspace) AudioPath() string {
	return filepath.Join(w.dir, "audio.wav")
}

// ClipPath names a trimmed clip deterministically from its segment bounds
// with two-decimal seconds.
func (w *Workspace) ClipPath(s types.Segment) string {
	return filepath.Join(w.dir, fmt.Sprintf("segment_%.2f_%.2f.mp4", s.Start, s.End))
}

// ManifestPath names the concat manifest for a reel. Reel numbering is
// one-based in file names.
func (w *Workspace) ManifestPath(reelIndex int) string {
	return filepath.Join(w.dir, fmt.Sprintf("reel_%d_list.txt", reelIndex+1))
}

func (w *Workspace) SubtitlePath() string {
	return filepath.Join(w.dir, "subtitles.srt")
}

// WriteManifest writes an ordered concat-demuxer manifest, one
// `file '<absolute path>'` line per clip.
func (w *Workspace) WriteManifest(reelIndex int, clips []types.ExtractedClip) (string, error) {
	var b []byte
	for _, c := range clips {
		abs, err := filepath.Abs(c.Path)
		if err != nil {
			return "", err
		}
		b = append(b, fmt.Sprintf("file '%s'\n", abs)...)
	}
	path := w.ManifestPath(reelIndex)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// Close releases the lock and, unless the workspace was created with keep,
// removes the run directory and everything in it.
func (w *Workspace) Close() error {
	if w.lock != nil {
		_ = w.lock.Unlock()
	}
	if w.keep {
		return nil
	}
	return os.RemoveAll(w.dir)
}
