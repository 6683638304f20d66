// Package main provides the CLI entrypoint for recite.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/recite/internal/config"
	"github.com/verte-zerg/recite/internal/logging"
	"github.com/verte-zerg/recite/internal/model"
	"github.com/verte-zerg/recite/internal/session"
	"github.com/verte-zerg/recite/internal/source"
	"github.com/verte-zerg/recite/internal/stats"
	"github.com/verte-zerg/recite/internal/store"
	"github.com/verte-zerg/recite/internal/text"
	"github.com/verte-zerg/recite/internal/tui"
)

var (
	practiceOpacity int
	practiceShuffle bool
	practicePassage string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "recite [file]",
		Short:         "Type a passage sentence by sentence to measure speed and memorize it",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceOpacity, "opacity", model.DefaultOpacity, "opacity of untyped text (0-100)")
	rootCmd.Flags().BoolVar(&practiceShuffle, "shuffle", false, "shuffle sentence order")
	rootCmd.Flags().StringVar(&practicePassage, "passage", "", "practice a saved passage")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSplitCmd())
	rootCmd.AddCommand(newPassagesCmd())

	return rootCmd
}

func loadFileConfig() (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return fileCfg, nil
}

// newLogger builds the logger described by the config file, writing to out.
func newLogger(fileCfg config.FileConfig, out io.Writer) (zerolog.Logger, error) {
	cfg := logging.DefaultConfig()
	if fileCfg.Log.Level != nil {
		level, err := logging.ParseLevel(*fileCfg.Log.Level)
		if err != nil {
			return zerolog.Logger{}, err
		}
		cfg.Level = level
	}
	if fileCfg.Log.Format != nil {
		switch *fileCfg.Log.Format {
		case "console", "json":
			cfg.Format = *fileCfg.Log.Format
		default:
			return zerolog.Logger{}, fmt.Errorf("unknown log format %q", *fileCfg.Log.Format)
		}
	}
	cfg = logging.ApplyEnv(cfg)
	return logging.New(cfg, out), nil
}

func stderrLogger() zerolog.Logger {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return logging.New(logging.DefaultConfig(), os.Stderr)
	}
	logger, err := newLogger(fileCfg, os.Stderr)
	if err != nil {
		return logging.New(logging.DefaultConfig(), os.Stderr)
	}
	return logger
}

func runPracticeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	cfg, err := resolvePracticeConfig(cmd, fileCfg)
	if err != nil {
		return err
	}

	logPath := config.DefaultLogPath()
	if fileCfg.Log.File != nil && *fileCfg.Log.File != "" {
		logPath = *fileCfg.Log.File
	}
	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}()
	logger, err := newLogger(fileCfg, logFile)
	if err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}

	raw, err := resolvePracticeText(cmd.Context(), logging.Component(logger, "store"), cfg, args)
	if err != nil {
		return err
	}

	opts := []session.Option{session.WithDefaultOpacity(cfg.Opacity)}
	if cfg.Shuffle {
		opts = append(opts, session.WithShuffler(text.NewShuffler()))
	}
	ctrl := session.New(opts...)
	if raw != "" {
		n, err := ctrl.SubmitText(source.FlattenLines(raw))
		if err != nil {
			return fmt.Errorf("failed to load text: %w", err)
		}
		logger.Info().Int("sentences", n).Msg("text loaded")
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if source.StdinIsPiped() {
		// Keystrokes come from the terminal when stdin carried the text.
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	m := tui.NewModel(ctrl, logging.Component(logger, "tui"))
	program := tea.NewProgram(m, programOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if res, ok := m.Result(); ok {
		if err := stats.RenderResult(cmd.OutOrStdout(), res); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

// resolvePracticeConfig merges config file values under the flags the user set.
func resolvePracticeConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.Config, error) {
	applyIntConfig(cmd, "opacity", &practiceOpacity, fileCfg.Practice.Opacity)
	applyBoolConfig(cmd, "shuffle", &practiceShuffle, fileCfg.Practice.Shuffle)

	cfg := model.Config{
		Opacity: practiceOpacity,
		Shuffle: practiceShuffle,
		Passage: practicePassage,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// resolvePracticeText picks the passage from --passage, a file argument, or
// piped stdin. An empty result opens the paste box.
func resolvePracticeText(ctx context.Context, logger zerolog.Logger, cfg model.Config, args []string) (string, error) {
	if cfg.Passage != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("--passage cannot be combined with a file argument")
		}
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return "", fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logger.Warn().Err(cerr).Msg("failed to close db")
			}
		}()
		p, err := st.GetPassage(ctx, cfg.Passage)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", fmt.Errorf("%w (run: recite passages list)", err)
			}
			return "", fmt.Errorf("failed to load passage: %w", err)
		}
		return p.Body, nil
	}
	if len(args) > 0 {
		raw, err := source.Load(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return raw, nil
	}
	if source.StdinIsPiped() {
		raw, err := source.Load("-")
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return raw, nil
	}
	return "", nil
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split [file]",
		Short: "Print the sentences of a text, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSplitCmd,
	}
}

func runSplitCmd(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	raw, err := source.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read text: %w", err)
	}
	sentences := text.Split(raw)
	if len(sentences) == 0 {
		return session.ErrNoSentences
	}
	for _, s := range sentences {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# recite configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# opacity = %d            # Opacity of untyped text (0-100), restored on reset
# shuffle = false         # Shuffle sentence order

[log]
# level = "info"          # trace, debug, info, warn, error
# format = "console"      # console or json
# file = %q
`,
		model.DefaultOpacity,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Opacity < 0 || cfg.Opacity > 100 {
		return fmt.Errorf("--opacity must be between 0 and 100")
	}
	return nil
}
