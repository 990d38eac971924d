package usecase

import "fmt"

// MediaDecodeError means the source could not be read or decoded. It is
// fatal: no partial transcript is usable for scoring.
type MediaDecodeError struct {
	Stage string
	Path  string
	Err   error
}

func (e *MediaDecodeError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *MediaDecodeError) Unwrap() error { return e.Err }

// ScoringUnavailableError means the importance classification could not be
// obtained. It is fatal and raised before selection; the pipeline never
// silently proceeds with zero candidates.
type ScoringUnavailableError struct {
	Err error
}

func (e *ScoringUnavailableError) Error() string {
	return fmt.Sprintf("scoring unavailable: %v", e.Err)
}

func (e *ScoringUnavailableError) Unwrap() error { return e.Err }
