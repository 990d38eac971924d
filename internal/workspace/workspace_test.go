package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arya-nigam06/reelcut/internal/types"
)

func TestNew_DistinctRunDirs(t *testing.T) {
	root := t.TempDir()

	a, err := New(root, false)
	if err != nil {
		t.Fatalf("new a: %v", err)
	}
	defer a.Close()
	b, err := New(root, false)
	if err != nil {
		t.Fatalf("new b: %v", err)
	}
	defer b.Close()

	if a.Dir() == b.Dir() {
		t.Fatalf("two invocations share a run dir: %s", a.Dir())
	}
	if filepath.Dir(a.Dir()) != filepath.Join(root, "runs") {
		t.Fatalf("unexpected run dir parent: %s", a.Dir())
	}
}

func TestClipPath_TwoDecimalSeconds(t *testing.T) {
	ws, err := New(t.TempDir(), false)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	got := ws.ClipPath(types.Segment{Start: 12.5, End: 15})
	if filepath.Base(got) != "segment_12.50_15.00.mp4" {
		t.Fatalf("unexpected clip name: %s", filepath.Base(got))
	}
}

func TestWriteManifest_AbsolutePathLines(t *testing.T) {
	ws, err := New(t.TempDir(), false)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	clips := []types.ExtractedClip{
		{Path: ws.ClipPath(types.Segment{Start: 0, End: 5})},
		{Path: ws.ClipPath(types.Segment{Start: 10, End: 15})},
	}
	path, err := ws.WriteManifest(0, clips)
	if err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if filepath.Base(path) != "reel_1_list.txt" {
		t.Fatalf("unexpected manifest name: %s", filepath.Base(path))
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 manifest lines, got %d", len(lines))
	}
	for _, ln := range lines {
		if !strings.HasPrefix(ln, "file '") || !strings.HasSuffix(ln, "'") {
			t.Fatalf("malformed manifest line: %q", ln)
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(ln, "file '"), "'")
		if !filepath.IsAbs(inner) {
			t.Fatalf("manifest path not absolute: %q", inner)
		}
	}
}

func TestClose_RemovesDirUnlessKept(t *testing.T) {
	root := t.TempDir()

	ws, err := New(root, false)
	if err != nil {
		t.Fatal(err)
	}
	dir := ws.Dir()
	if err := ws.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected run dir removed, stat err=%v", err)
	}

	kept, err := New(root, true)
	if err != nil {
		t.Fatal(err)
	}
	keptDir := kept.Dir()
	if err := kept.Close(); err != nil {
		t.Fatalf("close kept: %v", err)
	}
	if _, err := os.Stat(keptDir); err != nil {
		t.Fatalf("expected kept run dir to survive: %v", err)
	}
}
