package search

import (
	"errors"
	"fmt"
)

// Input and runtime errors returned by the engine.
var (
	// ErrEmptyQuery is returned when the query is empty or whitespace only.
	ErrEmptyQuery = errors.New("search text required")

	// ErrEmptyText is returned by SplitPages for an empty document blob.
	ErrEmptyText = errors.New("document text is empty")

	// ErrQueryTooLong is returned when the query exceeds the engine's rune ceiling.
	ErrQueryTooLong = errors.New("search text too long")

	// ErrPageTooLong is returned when a page exceeds the engine's rune ceiling.
	ErrPageTooLong = errors.New("page text too long")
)

// Stage names a step of a search run. It is attached to failures so callers
// can tell validation problems from faults that happened mid-scan.
type Stage string

const (
	StageValidating  Stage = "validating"
	StageSplitting   Stage = "splitting"
	StageScanning    Stage = "scanning"
	StageAggregating Stage = "aggregating"
	StageRanking     Stage = "ranking"
	StageDone        Stage = "done"
)

// StageError records the stage (and page, while scanning) a search failed in.
type StageError struct {
	Stage Stage
	Page  int
	Err   error
}

func (e *StageError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("%s page %d: %v", e.Stage, e.Page, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// StageOf reports the stage recorded on err, or "" when err carries none.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
