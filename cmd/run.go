package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/fuzzwater/internal/app"
	"github.com/abhisek/fuzzwater/internal/console"
)

// runApp builds dependencies and launches the TUI, or the line-based loop
// when stdin is not a terminal or --plain is set.
func runApp(cmd *cobra.Command) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	logger = logger.With(zap.String("session_id", uuid.NewString()))

	registry, err := loadRegistry(cmd, logger)
	if err != nil {
		return err
	}

	plain, _ := cmd.Flags().GetBool("plain")
	interactive := isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout())
	logger.Info("session started",
		zap.Bool("tui", interactive && !plain),
		zap.Int("domains", registry.Len()))

	if interactive && !plain {
		if err := app.Run(app.Options{Registry: registry, Logger: logger}); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	}

	session := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), registry, logger)
	return session.Run(cmd.Context())
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

