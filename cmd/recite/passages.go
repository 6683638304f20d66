package main

import (
	"errors"
	"fmt"

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
)

var passagesDBPath string

func newPassagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passages",
		Short: "Manage the saved passage library",
	}
	cmd.PersistentFlags().StringVar(&passagesDBPath, "db", "", "library database path (default: XDG data dir)")
	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> [file]",
		Short: "Save a passage from a file or stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runPassagesAddCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved passages",
		Args:  cobra.NoArgs,
		RunE:  runPassagesListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Delete a saved passage",
		Args:    cobra.ExactArgs(1),
		RunE:    runPassagesRmCmd,
	})
	return cmd
}

func openPassageStore(logger zerolog.Logger) (*store.Store, func(), error) {
	path := passagesDBPath
	if path == "" {
		path = config.DefaultDBPath()
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	closeFn := func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close db")
		}
	}
	return st, closeFn, nil
}

func runPassagesAddCmd(cmd *cobra.Command, args []string) error {
	name := args[0]
	path := "-"
	if len(args) > 1 {
		path = args[1]
	}
	raw, err := source.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read text: %w", err)
	}
	sentences := text.Split(raw)
	if len(sentences) == 0 {
		return session.ErrNoSentences
	}

	logger := logging.Component(stderrLogger(), "passages")
	st, closeFn, err := openPassageStore(logger)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := st.SavePassage(cmd.Context(), model.Passage{
		Name:          name,
		Body:          raw,
		SentenceCount: len(sentences),
	}); err != nil {
		return fmt.Errorf("failed to save passage: %w", err)
	}
	logger.Info().Str("name", name).Int("sentences", len(sentences)).Msg("passage saved")
	return nil
}

func runPassagesListCmd(cmd *cobra.Command, _ []string) error {
	st, closeFn, err := openPassageStore(logging.Component(stderrLogger(), "passages"))
	if err != nil {
		return err
	}
	defer closeFn()

	passages, err := st.ListPassages(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list passages: %w", err)
	}
	return stats.RenderPassages(cmd.OutOrStdout(), passages)
}

func runPassagesRmCmd(cmd *cobra.Command, args []string) error {
	logger := logging.Component(stderrLogger(), "passages")
	st, closeFn, err := openPassageStore(logger)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := st.DeletePassage(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete passage: %w", err)
	}
	logger.Info().Str("name", args[0]).Msg("passage deleted")
	return nil
}
