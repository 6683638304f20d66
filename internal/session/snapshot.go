package session

import (
	"time"

	"github.com/verte-zerg/recite/internal/model"
)

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	State          State
	Sentences      []string
	CurrentIndex   int
	TypedInput     string
	StartedAt      time.Time
	ElapsedSeconds int
	Mistakes       int
	Completed      bool
	PracticeMode   bool
	TextOpacity    int
	LiveWPM        int
	FinalStats     *model.Result
}

// CurrentSentence returns the sentence being typed, or "" when there is none.
func (s Snapshot) CurrentSentence() string {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Sentences) {
		return ""
	}
	return s.Sentences[s.CurrentIndex]
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		State:          c.State(),
		Sentences:      append([]string(nil), c.sentences...),
		CurrentIndex:   c.currentIndex,
		TypedInput:     c.typedInput,
		StartedAt:      c.startedAt,
		ElapsedSeconds: c.elapsedSeconds,
		Mistakes:       c.mistakeCount,
		Completed:      c.completed,
		PracticeMode:   c.practiceMode,
		TextOpacity:    c.textOpacity,
		LiveWPM:        c.LiveWPM(),
	}
	if res, ok := c.FinalStats(); ok {
		snap.FinalStats = &res
	}
	return snap
}
