package stats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/recite/internal/model"
)

func TestWordsPerMinuteZeroElapsed(t *testing.T) {
	assert.Equal(t, 0, WordsPerMinute(0, 0))
	assert.Equal(t, 0, WordsPerMinute(12, 0))
	assert.Equal(t, 0, WordsPerMinute(12, -3))
}

func TestWordsPerMinuteRounds(t *testing.T) {
	assert.Equal(t, 60, WordsPerMinute(2, 2))
	assert.Equal(t, 20, WordsPerMinute(1, 3))
	// 1/8*60 = 7.5 rounds up.
	assert.Equal(t, 8, WordsPerMinute(1, 8))
	// 1/7*60 = 8.57.
	assert.Equal(t, 9, WordsPerMinute(1, 7))
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 100, Accuracy(25, 0))
	assert.Equal(t, 96, Accuracy(25, 1))
	assert.Equal(t, 0, Accuracy(0, 0))
	assert.Equal(t, -100, Accuracy(10, 20))
}

func TestAccuracyRoundsHalfUpWhenNegative(t *testing.T) {
	// (8-9)/8*100 = -12.5 rounds toward positive infinity.
	assert.Equal(t, -12, Accuracy(8, 9))
}

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	err := RenderResult(&buf, model.Result{
		WordsPerMinute: 42,
		Accuracy:       97,
		ElapsedSeconds: 75,
		Mistakes:       3,
		Sentences:      4,
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Typing completed!")
	assert.Contains(t, out, "Words per minute")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "97%")
	assert.Contains(t, out, "1:15")
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0:00", FormatElapsed(0))
	assert.Equal(t, "0:09", FormatElapsed(9))
	assert.Equal(t, "2:05", FormatElapsed(125))
	assert.Equal(t, "0:00", FormatElapsed(-4))
}
