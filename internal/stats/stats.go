// Package stats contains scoring calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/verte-zerg/recite/internal/model"
)

// WordsPerMinute scales a word count typed over elapsedSeconds to a per-minute
// rate. It returns 0 when no time has elapsed.
func WordsPerMinute(words, elapsedSeconds int) int {
	if elapsedSeconds <= 0 {
		return 0
	}
	return roundHalfUp(float64(words) / float64(elapsedSeconds) * 60)
}

// Accuracy returns the percentage of totalChars not covered by mistakes. The
// result is negative when mistakes exceed totalChars, and 0 for empty text.
func Accuracy(totalChars, mistakes int) int {
	if totalChars <= 0 {
		return 0
	}
	return roundHalfUp(float64(totalChars-mistakes) / float64(totalChars) * 100)
}

// roundHalfUp rounds .5 toward positive infinity, also for negative values.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// RenderResult prints the summary of a completed run.
func RenderResult(w io.Writer, res model.Result) error {
	if _, err := fmt.Fprintln(w, "Typing completed!"); err != nil {
		return err
	}
	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"Words per minute", fmt.Sprintf("%d", res.WordsPerMinute)},
		{"Accuracy", fmt.Sprintf("%d%%", res.Accuracy)},
		{"Time", formatElapsed(res.ElapsedSeconds)},
		{"Sentences", fmt.Sprintf("%d", res.Sentences)},
		{"Mistakes", fmt.Sprintf("%d", res.Mistakes)},
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatElapsed renders seconds as m:ss.
func FormatElapsed(seconds int) string {
	return formatElapsed(seconds)
}

func formatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
