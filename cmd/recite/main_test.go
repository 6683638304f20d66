package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/recite/internal/config"
	"github.com/verte-zerg/recite/internal/model"
)

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	passagesDBPath = ""
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeText(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "passage.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSplitCmd(t *testing.T) {
	path := writeText(t, "Hello world.   Testing now! trailing")
	out, err := executeCmd(t, "split", path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world.\nTesting now!\n", out)
}

func TestSplitCmdNoSentences(t *testing.T) {
	path := writeText(t, "no terminator")
	_, err := executeCmd(t, "split", path)
	assert.Error(t, err)
}

func TestPassagesLifecycle(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeText(t, "One. Two! Three?")

	_, err := executeCmd(t, "passages", "add", "counting", path)
	require.NoError(t, err)

	out, err := executeCmd(t, "passages", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "counting")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "3")

	_, err = executeCmd(t, "passages", "rm", "counting")
	require.NoError(t, err)

	out, err = executeCmd(t, "passages", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No passages saved")

	_, err = executeCmd(t, "passages", "rm", "counting")
	assert.Error(t, err)
}

func TestPassagesAddRejectsTextWithoutSentences(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	path := writeText(t, "nothing to split")
	_, err := executeCmd(t, "passages", "add", "bad", path)
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(model.Config{Opacity: 0}))
	assert.NoError(t, validateConfig(model.Config{Opacity: 100}))
	assert.Error(t, validateConfig(model.Config{Opacity: -1}))
	assert.Error(t, validateConfig(model.Config{Opacity: 101}))
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recite", "config.toml")
	require.NoError(t, writeConfigTemplate(path))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Practice.Opacity)
	assert.Nil(t, cfg.Log.Level)
}

func TestNewLoggerRejectsUnknownFormat(t *testing.T) {
	format := "xml"
	_, err := newLogger(config.FileConfig{Log: config.LogConfig{Format: &format}}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestPracticeFlagsOverrideConfig(t *testing.T) {
	opacity := 20
	shuffle := true
	fileCfg := config.FileConfig{Practice: config.PracticeConfig{Opacity: &opacity, Shuffle: &shuffle}}

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--opacity", "70", "--shuffle=false"}))
	cfg, err := resolvePracticeConfig(root, fileCfg)
	require.NoError(t, err)
	assert.Equal(t, 70, cfg.Opacity)
	assert.False(t, cfg.Shuffle)
}

func TestPracticeConfigAppliesWithoutFlags(t *testing.T) {
	opacity := 20
	shuffle := true
	fileCfg := config.FileConfig{Practice: config.PracticeConfig{Opacity: &opacity, Shuffle: &shuffle}}

	root := newRootCmd()
	require.NoError(t, root.ParseFlags(nil))
	cfg, err := resolvePracticeConfig(root, fileCfg)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Opacity)
	assert.True(t, cfg.Shuffle)
}

func TestPracticeConfigDefaultsAndValidation(t *testing.T) {
	root := newRootCmd()
	require.NoError(t, root.ParseFlags(nil))
	cfg, err := resolvePracticeConfig(root, config.FileConfig{})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultOpacity, cfg.Opacity)
	assert.False(t, cfg.Shuffle)

	bad := 150
	root = newRootCmd()
	require.NoError(t, root.ParseFlags(nil))
	_, err = resolvePracticeConfig(root, config.FileConfig{Practice: config.PracticeConfig{Opacity: &bad}})
	assert.Error(t, err)
}
