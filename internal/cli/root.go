package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic/internal/config"
	"github.com/katalvlaran/mosaic/internal/logger"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mosaic",
		Short: "Tile puzzle assembler",
		Long: `Mosaic reassembles a picture cut into shuffled, rotated and flipped
square tiles, then reports the product of the corner tile ids and how rough
the sea is once every sea monster has been found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config-dir", ".", "directory holding the .env file")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "log format: console or json")

	root.AddCommand(newSolveCmd(), newGenerateCmd())
	return root
}

// Execute runs the CLI and exits with status 1 on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// Report through the standard logger in console format; the debug
		// level gives ISO8601 timestamps.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: logger.FormatConsole})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// session is the per-run state shared by all commands.
type session struct {
	cfg   *config.Config
	log   *zap.Logger
	runID string
}

// newSession loads configuration with the command's flags bound to their
// keys, builds the logger and tags it with a fresh run id.
func newSession(cmd *cobra.Command, bindings map[string]string) (*session, error) {
	dir, err := cmd.Flags().GetString("config-dir")
	if err != nil {
		return nil, err
	}
	flags := map[string]*pflag.Flag{
		"log.level":  cmd.Flags().Lookup("log-level"),
		"log.format": cmd.Flags().Lookup("log-format"),
	}
	for key, name := range bindings {
		flags[key] = cmd.Flags().Lookup(name)
	}

	cfg, err := config.LoadConfig(dir, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	runID := uuid.NewString()

	return &session{cfg: cfg, log: logger.WithRunID(l, runID), runID: runID}, nil
}
