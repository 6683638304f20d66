// Package model defines shared data structures.
package model

import "time"

// DefaultOpacity is the initial opacity of untyped text, in percent.
const DefaultOpacity = 40

// Config defines practice settings.
type Config struct {
	Opacity int
	Shuffle bool
	Passage string
}

// Passage is a named source text kept in the library.
type Passage struct {
	ID            int64
	Name          string
	Body          string
	SentenceCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Result holds the final figures of a completed run.
type Result struct {
	WordsPerMinute int
	Accuracy       int
	ElapsedSeconds int
	Mistakes       int
	Sentences      int
}
