// Package timer provides wall-clock timing for CLI activities.
//
// A Timer tracks both the total elapsed time since Start and the elapsed
// time of the current stage. Commands call NewStage when moving between
// activities so success notifications can show per-activity timing.
package timer

import "time"

// Timer measures total and per-stage elapsed time for a command run.
type Timer interface {
	// Start begins timing. Calling Start again resets the timer.
	Start()

	// NewStage marks the beginning of a new stage, resetting the stage clock.
	NewStage()

	// GetTiming returns the total elapsed time and the current stage's
	// elapsed time.
	GetTiming() (total time.Duration, stage time.Duration)
}

// New returns a Timer backed by the system clock.
func New() Timer {
	return &clockTimer{}
}

type clockTimer struct {
	start      time.Time
	stageStart time.Time
}

func (t *clockTimer) Start() {
	now := time.Now()
	t.start = now
	t.stageStart = now
}

func (t *clockTimer) NewStage() {
	t.stageStart = time.Now()
}

func (t *clockTimer) GetTiming() (time.Duration, time.Duration) {
	if t.start.IsZero() {
		return 0, 0
	}

	now := time.Now()

	return now.Sub(t.start), now.Sub(t.stageStart)
}
