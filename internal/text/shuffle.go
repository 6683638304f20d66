package text

import (
	"math/rand"
	"time"
)

// Shuffler randomizes sentence order.
type Shuffler struct {
	rnd *rand.Rand
}

// NewShuffler returns a Shuffler seeded with the current time.
func NewShuffler() *Shuffler {
	return NewShufflerWithSeed(time.Now().UnixNano())
}

// NewShufflerWithSeed returns a Shuffler with a fixed seed.
func NewShufflerWithSeed(seed int64) *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a shuffled copy of sentences.
func (s *Shuffler) Shuffle(sentences []string) []string {
	out := make([]string, len(sentences))
	copy(out, sentences)
	s.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
