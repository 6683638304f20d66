package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/recite/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Name", "Sentences", "Chars"}
	rows := [][]string{
		{"psalm", "12", "840"},
		{"preamble", "3", "52"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	require.Len(t, lines, 3)
	assert.Equal(t, "Name     Sentences Chars", lines[0])
	assert.Equal(t, "psalm           12   840", lines[1])
	assert.Equal(t, "preamble         3    52", lines[2])
}

func TestRenderPassagesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPassages(&buf, nil))
	assert.Contains(t, buf.String(), "No passages saved")
}

func TestRenderPassages(t *testing.T) {
	var buf bytes.Buffer
	updated := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	err := RenderPassages(&buf, []model.Passage{
		{Name: "intro", Body: "Hi. Bye.", SentenceCount: 2, UpdatedAt: updated},
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Name"))
	assert.Contains(t, lines[1], "intro")
	assert.Contains(t, lines[1], "2024-03-01 09:30")
}

func TestFormatTableMeasuresWideRunes(t *testing.T) {
	lines := formatTable([]string{"Name", "N"}, [][]string{
		{"詩経", "1"},
		{"ode", "12"},
	}, map[int]bool{1: true})
	require.Len(t, lines, 3)
	assert.Equal(t, "Name  N", lines[0])
	assert.Equal(t, "詩経  1", lines[1])
	assert.Equal(t, "ode  12", lines[2])
}

func TestFormatTablePadsShortRows(t *testing.T) {
	lines := formatTable([]string{"A", "B"}, [][]string{{"x"}}, nil)
	require.Len(t, lines, 2)
	assert.Equal(t, "x  ", lines[1])
}
