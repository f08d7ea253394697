// ABOUTME: Run domain model: per-run configuration, the stage machine and the result
// ABOUTME: Stages advance strictly forward; Done and Failed are terminal

package domain

import (
	"errors"
	"time"
)

// RunConfig is the fully-resolved configuration for one pipeline run.
// It is immutable for the duration of the run.
type RunConfig struct {
	// SaveDir is the directory where downloaded images are persisted
	SaveDir string

	// LogDir is the directory holding the run log file
	LogDir string

	// KeepHistory retains prior images instead of deleting them after a run
	KeepHistory bool
}

// Validate checks if the run configuration is usable
func (c RunConfig) Validate() error {
	if c.SaveDir == "" {
		return errors.New("save directory cannot be empty")
	}
	if c.LogDir == "" {
		return errors.New("log directory cannot be empty")
	}
	return nil
}

// RunStage identifies a pipeline state. A run moves Start → Fetching →
// Downloading → Resizing → Saving → Applying → Done; any non-terminal
// stage may move to Failed. When the image is already on disk the run
// skips from Fetching straight to Applying.
type RunStage int

const (
	StageStart RunStage = iota
	StageFetching
	StageDownloading
	StageResizing
	StageSaving
	StageApplying
	StageDone
	StageFailed
)

var stageNames = map[RunStage]string{
	StageStart:       "start",
	StageFetching:    "fetching",
	StageDownloading: "downloading",
	StageResizing:    "resizing",
	StageSaving:      "saving",
	StageApplying:    "applying",
	StageDone:        "done",
	StageFailed:      "failed",
}

// String returns the lowercase stage name
func (s RunStage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition is allowed
func (s RunStage) Terminal() bool {
	return s == StageDone || s == StageFailed
}

// CanTransition reports whether moving from s to next is legal.
// Transitions are forward-only; skipping intermediate stages is allowed.
func (s RunStage) CanTransition(next RunStage) bool {
	if s.Terminal() {
		return false
	}
	if next == StageFailed {
		return true
	}
	return next > s && next <= StageDone
}

// RunResult summarizes a completed or failed run.
type RunResult struct {
	// RunID uniquely identifies the run in console log output
	RunID string

	// Stage is the terminal stage the run reached
	Stage RunStage

	// Reference is the image located on the source page or feed
	Reference ImageReference

	// Stored is the persisted file, nil when the run failed before saving
	// or reused an already-saved image
	Stored *StoredImageFile

	// Skipped reports that the image was already on disk and the
	// download/resize/save stages did not run
	Skipped bool

	// Metadata is the best-effort page metadata, nil when unavailable
	Metadata *PageMetadata

	// Accent is the best-effort dominant image color, nil when unavailable
	Accent *RGBColor

	// Started and Finished bound the run wall-clock time
	Started  time.Time
	Finished time.Time
}
