package usecase

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/arya-nigam06/reelcut/internal/types"
)

// extraction is the tagged per-task result: either a clip or a reason the
// segment was dropped. Results are keyed by the segment's position in the
// selection, never by completion order.
type extraction struct {
	clip types.ExtractedClip
	err  error
}

// extractClips fans out one stream-copy cut per selected segment through a
// bounded worker pool and fans in when the whole batch has reported. A
// single segment's failure is non-fatal: it is logged and omitted.
func (u Usecase) extractClips(ctx context.Context, in Input, selected []types.ScoredSegment) ([]types.ExtractedClip, []string) {
	if len(selected) == 0 {
		return nil, nil
	}

	maxConcurrent := in.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.NumCPU()
	}
	sem := newSemaphore(maxConcurrent)

	results := make([]extraction, len(selected))
	var wg sync.WaitGroup
	for i, s := range selected {
		wg.Add(1)
		go func(i int, seg types.Segment) {
			defer wg.Done()
			if err := sem.acquire(ctx); err != nil {
				results[i] = extraction{err: err}
				return
			}
			defer sem.release()

			out := in.Workspace.ClipPath(seg)
			if err := u.d.Video.CutStreamCopy(ctx, in.InputVideo, seg.Start, seg.End, out); err != nil {
				results[i] = extraction{err: err}
				return
			}
			results[i] = extraction{clip: types.ExtractedClip{Segment: seg, Path: out, Ordinal: i}}
		}(i, s.Segment)
	}
	wg.Wait()

	var (
		clips   []types.ExtractedClip
		dropped []string
	)
	for i, r := range results {
		if r.err != nil {
			seg := selected[i].Segment
			u.d.Log.Warnf("extraction of segment %.2f-%.2f failed: %v", seg.Start, seg.End, r.err)
			dropped = append(dropped, fmt.Sprintf("segment %.2f-%.2f: %v", seg.Start, seg.End, r.err))
			continue
		}
		clips = append(clips, r.clip)
	}
	return clips, dropped
}
