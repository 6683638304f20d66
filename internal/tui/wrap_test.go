package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStyledRunesUntypedUseOpacity(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), nil, 40)
	require.Len(t, runes, 2)
	assert.Equal(t, pendingStyle(40).Underline(true).Render("a"), runes[0].s)
	assert.Equal(t, pendingStyle(40).Render("b"), runes[1].s)
}

func TestBuildStyledRunesMatchAndMismatch(t *testing.T) {
	runes := buildStyledRunes([]rune("abc"), []rune("ax"), 40)
	require.Len(t, runes, 3)
	assert.Equal(t, correctStyle.Render("a"), runes[0].s)
	assert.Equal(t, incorrectStyle.Render("b"), runes[1].s)
	assert.Equal(t, pendingStyle(40).Underline(true).Render("c"), runes[2].s)
}

func TestBuildStyledRunesNoCursorPastEnd(t *testing.T) {
	runes := buildStyledRunes([]rune("a"), []rune("ab"), 40)
	require.Len(t, runes, 1)
	assert.Equal(t, correctStyle.Render("a"), runes[0].s)
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	runes := buildStyledRunes([]rune("a b"), []rune("ax"), 40)
	require.Len(t, runes, 3)
	assert.Equal(t, incorrectStyle.Render("•"), runes[1].s)
	assert.True(t, runes[1].isSpace)
}

func TestPendingStyleClamps(t *testing.T) {
	assert.Equal(t, pendingStyle(0).Render("x"), pendingStyle(-10).Render("x"))
	assert.Equal(t, pendingStyle(100).Render("x"), pendingStyle(250).Render("x"))
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	runes := []styledRune{}
	for _, r := range "one two three" {
		runes = append(runes, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	out := wrapStyledRunes(runes, 8)
	assert.Equal(t, "one two\nthree", out)
}

func TestWrapStyledRunesBreaksLongWords(t *testing.T) {
	runes := []styledRune{}
	for _, r := range "abcdefgh" {
		runes = append(runes, styledRune{s: string(r), width: 1})
	}
	out := wrapStyledRunes(runes, 3)
	assert.Equal(t, "abc\ndef\ngh", out)
}

func TestOpacityBar(t *testing.T) {
	assert.Equal(t, "[====------]", opacityBar(40, 10))
	assert.Equal(t, "[----------]", opacityBar(0, 10))
	assert.Equal(t, "[==========]", opacityBar(100, 10))
	assert.Equal(t, "", opacityBar(50, 0))
	assert.Equal(t, 12, len(opacityBar(73, 10)))
	assert.False(t, strings.Contains(opacityBar(40, 10), " "))
}
