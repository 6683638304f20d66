package session

import (
	"errors"
	"strings"
	"time"

	"github.com/verte-zerg/recite/internal/model"
	"github.com/verte-zerg/recite/internal/stats"
	"github.com/verte-zerg/recite/internal/text"
)

// ErrNoSentences is returned when there is nothing to type.
var ErrNoSentences = errors.New("nothing to type: no sentence ends with '.', '!' or '?'")

// Result describes what a keystroke changed.
type Result struct {
	Started      bool
	SentenceDone bool
	Completed    bool
	Mistakes     int
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source used for the start timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithDefaultOpacity sets the opacity restored by Reset.
func WithDefaultOpacity(opacity int) Option {
	return func(c *Controller) {
		c.defaultOpacity = clampOpacity(opacity)
	}
}

// WithShuffler randomizes sentence order on submit.
func WithShuffler(s *text.Shuffler) Option {
	return func(c *Controller) {
		c.shuffler = s
	}
}

// Controller owns the single typing session and applies events to it. It is
// not safe for concurrent use; callers drive it from one event loop.
type Controller struct {
	sourceText string
	sentences  []string
	totalChars int

	currentIndex    int
	typedInput      string
	startedAt       time.Time
	elapsedSeconds  int
	mistakeCount    int
	totalWordsTyped int
	completed       bool
	practiceMode    bool
	textOpacity     int

	timer          timer
	now            func() time.Time
	defaultOpacity int
	shuffler       *text.Shuffler
}

// New returns an idle controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		now:            time.Now,
		defaultOpacity: model.DefaultOpacity,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.textOpacity = c.defaultOpacity
	return c
}

// State reports the current lifecycle phase.
func (c *Controller) State() State {
	switch {
	case len(c.sentences) == 0:
		return Idle
	case c.completed:
		return Completed
	case c.startedAt.IsZero():
		return AwaitingInput
	default:
		return Running
	}
}

// SetSourceText replaces the raw paste buffer.
func (c *Controller) SetSourceText(raw string) {
	c.sourceText = raw
}

// SourceText returns the raw paste buffer.
func (c *Controller) SourceText() string {
	return c.sourceText
}

// SubmitText splits raw into sentences and loads them. With no sentence the
// controller stays idle and keeps raw in the buffer.
func (c *Controller) SubmitText(raw string) (int, error) {
	sentences := text.Split(raw)
	if len(sentences) == 0 {
		c.sourceText = raw
		return 0, ErrNoSentences
	}
	if c.shuffler != nil {
		sentences = c.shuffler.Shuffle(sentences)
	}
	c.Reset()
	c.sentences = sentences
	c.totalChars = text.CharCount(sentences)
	c.sourceText = ""
	return len(sentences), nil
}

// Submit loads the current paste buffer.
func (c *Controller) Submit() (int, error) {
	return c.SubmitText(c.sourceText)
}

// Keystroke applies the full new value of the input line.
func (c *Controller) Keystroke(value string) Result {
	var res Result
	if len(c.sentences) == 0 || c.completed {
		return res
	}
	c.typedInput = value

	if c.startedAt.IsZero() && value != "" {
		c.startedAt = c.now()
		c.elapsedSeconds = 0
		c.timer.start()
		res.Started = true
	}

	c.totalWordsTyped = text.WordCount(value)

	typed := strings.TrimSpace(value)
	target := strings.TrimSpace(c.sentences[c.currentIndex])
	if typed != target {
		return res
	}

	res.SentenceDone = true
	res.Mistakes = text.CountMistakes(typed, target)
	c.mistakeCount += res.Mistakes
	c.typedInput = ""

	if c.practiceMode {
		return res
	}
	c.currentIndex++
	if c.currentIndex >= len(c.sentences) {
		c.timer.stop()
		c.completed = true
		res.Completed = true
	}
	return res
}

// Skip moves to the next sentence, wrapping at the end, and switches to
// practice mode for the rest of the session.
func (c *Controller) Skip() error {
	if len(c.sentences) == 0 {
		return ErrNoSentences
	}
	if c.completed {
		return nil
	}
	c.currentIndex = (c.currentIndex + 1) % len(c.sentences)
	c.typedInput = ""
	c.practiceMode = true
	return nil
}

// Reset restarts progress on the loaded sentences and stops the timer.
func (c *Controller) Reset() {
	c.timer.stop()
	c.currentIndex = 0
	c.typedInput = ""
	c.startedAt = time.Time{}
	c.elapsedSeconds = 0
	c.mistakeCount = 0
	c.totalWordsTyped = 0
	c.completed = false
	c.practiceMode = false
	c.textOpacity = c.defaultOpacity
}

// Unload resets the session and drops the loaded sentences.
func (c *Controller) Unload() {
	c.Reset()
	c.sentences = nil
	c.totalChars = 0
}

// SetOpacity sets the display opacity of untyped text, clamped to [0,100].
func (c *Controller) SetOpacity(value int) {
	c.textOpacity = clampOpacity(value)
}

// TimerGeneration identifies the tick chain currently running.
func (c *Controller) TimerGeneration() uint64 {
	return c.timer.gen
}

// TimerActive reports whether ticks are being counted.
func (c *Controller) TimerActive() bool {
	return c.timer.active
}

// Tick adds one second to a running session. It reports false and changes
// nothing when gen belongs to a stopped or replaced tick chain.
func (c *Controller) Tick(gen uint64) bool {
	if !c.timer.live(gen) || c.startedAt.IsZero() || c.completed {
		return false
	}
	c.elapsedSeconds++
	return true
}

// LiveWPM is the words-per-minute rate of the input currently being typed.
func (c *Controller) LiveWPM() int {
	return stats.WordsPerMinute(c.totalWordsTyped, c.elapsedSeconds)
}

// FinalStats returns the result of a completed run. The WPM figure uses the
// word count of the last in-flight input, not a session total.
func (c *Controller) FinalStats() (model.Result, bool) {
	if !c.completed {
		return model.Result{}, false
	}
	return model.Result{
		WordsPerMinute: stats.WordsPerMinute(c.totalWordsTyped, c.elapsedSeconds),
		Accuracy:       stats.Accuracy(c.totalChars, c.mistakeCount),
		ElapsedSeconds: c.elapsedSeconds,
		Mistakes:       c.mistakeCount,
		Sentences:      len(c.sentences),
	}, true
}

func clampOpacity(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
