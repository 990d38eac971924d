package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/arya-nigam06/reelcut/internal/types"
)

// assembleReels restores clips to ascending source time (extraction finishes
// in arbitrary order), distributes them round-robin across the target reel
// count, and losslessly concatenates each group through an ordered manifest.
// A reel that receives zero clips is not emitted; a reel whose concatenation
// fails is dropped without touching its siblings.
func (u Usecase) assembleReels(ctx context.Context, in Input, clips []types.ExtractedClip) ([]types.Reel, []string) {
	if len(clips) == 0 {
		return nil, nil
	}

	count := in.ReelCount
	if count <= 0 {
		count = 3
	}
	groups := distribute(clips, count)

	var (
		reels   []types.Reel
		dropped []string
	)
	for idx, group := range groups {
		if len(group) == 0 {
			continue
		}
		path, err := u.concatReel(ctx, in, idx, group)
		if err != nil {
			u.d.Log.Warnf("reel %d failed: %v", idx+1, err)
			dropped = append(dropped, fmt.Sprintf("reel %d: %v", idx+1, err))
			continue
		}
		reels = append(reels, types.Reel{Index: idx, Clips: group, Path: path})
	}
	return reels, dropped
}

// distribute orders clips by original segment start and assigns position i to
// reel i mod count, preserving chronological order within each reel.
func distribute(clips []types.ExtractedClip, count int) [][]types.ExtractedClip {
	ordered := make([]types.ExtractedClip, len(clips))
	copy(ordered, clips)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Segment.Start < ordered[j].Segment.Start
	})

	groups := make([][]types.ExtractedClip, count)
	for i, c := range ordered {
		groups[i%count] = append(groups[i%count], c)
	}
	return groups
}

func (u Usecase) concatReel(ctx context.Context, in Input, idx int, group []types.ExtractedClip) (string, error) {
	manifest, err := in.Workspace.WriteManifest(idx, group)
	if err != nil {
		return "", err
	}
	out := filepath.Join(in.OutDir, fmt.Sprintf("highlight_reel_%d.mp4", idx+1))
	if err := u.d.Video.ConcatCopy(ctx, manifest, out); err != nil {
		return "", err
	}
	return out, nil
}
