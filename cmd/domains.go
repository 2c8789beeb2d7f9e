package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/fuzzwater/internal/domain"
	"github.com/abhisek/fuzzwater/internal/report"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List domains and their fuzzy sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		registry, err := loadRegistry(cmd, logger)
		if err != nil {
			return err
		}
		return listDomains(cmd.OutOrStdout(), registry)
	},
}

func listDomains(w io.Writer, registry *domain.Registry) error {
	for i, d := range registry.All() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := report.WriteSets(w, d); err != nil {
			return err
		}
	}
	return nil
}
