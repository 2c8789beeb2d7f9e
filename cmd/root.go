package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/fuzzwater/internal/domain"
	"github.com/abhisek/fuzzwater/internal/logging"
)

const (
	envDomains  = "FUZZWATER_DOMAINS"
	envLogFile  = "FUZZWATER_LOG_FILE"
	envLogLevel = "FUZZWATER_LOG_LEVEL"
)

var rootCmd = &cobra.Command{
	Use:   "fuzzwater",
	Short: "Fuzzy water quality assessment",
	Long: "fuzzwater grades water pollution and temperature readings against triangular fuzzy sets\n" +
		"and reports the membership degree in every category plus the most likely one.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("domains", "", "Path to a YAML domain file (overrides "+envDomains+" env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides "+envLogFile+" env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides "+envLogLevel+" env var)")
	rootCmd.Flags().Bool("plain", false, "Use the line-based menu even on a terminal")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveFlag returns the flag value when set, then the env var.
func resolveFlag(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}

// resolveDomainsPath returns the domain file path using --domains flag
// (highest priority), then FUZZWATER_DOMAINS env var. Empty means built-in
// domains only.
func resolveDomainsPath(cmd *cobra.Command) string {
	return resolveFlag(cmd, "domains", envDomains)
}

// loadRegistry returns the built-in domains merged with the domain file, if
// one is configured.
func loadRegistry(cmd *cobra.Command, logger *zap.Logger) (*domain.Registry, error) {
	registry := domain.NewRegistry(domain.Builtin()...)

	path := resolveDomainsPath(cmd)
	if path == "" {
		return registry, nil
	}

	loaded, err := domain.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load domains: %w", err)
	}
	registry.Merge(loaded...)
	logger.Info("loaded domain file",
		zap.String("path", path),
		zap.Int("domains", len(loaded)),
		zap.Strings("ids", registry.IDs()))
	return registry, nil
}

// newLogger builds the logger from --log-file and --log-level.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	logger, err := logging.New(logging.Config{
		File:  resolveFlag(cmd, "log-file", envLogFile),
		Level: resolveFlag(cmd, "log-level", envLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return logger, nil
}
