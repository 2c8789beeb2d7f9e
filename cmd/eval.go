package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/fuzzwater/internal/chart"
	"github.com/abhisek/fuzzwater/internal/domain"
	"github.com/abhisek/fuzzwater/internal/report"
)

var evalCmd = &cobra.Command{
	Use:   "eval <domain> <value>",
	Short: "Grade a single measurement",
	Long: "Grade a single measurement against a domain's fuzzy sets.\n\n" +
		"Negative values look like flags; put them after -- so they are read as the value.",
	Example: "  fuzzwater eval cleanliness 25\n" +
		"  fuzzwater eval temperature 27.5 --chart\n" +
		"  fuzzwater eval cleanliness 40 --json\n" +
		"  fuzzwater eval --json -- depth -5",
	Args: cobra.ExactArgs(2),
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

		asJSON, _ := cmd.Flags().GetBool("json")
		withChart, _ := cmd.Flags().GetBool("chart")
		return evaluate(cmd.OutOrStdout(), registry, logger, args[0], args[1], evalOptions{
			JSON:  asJSON,
			Chart: withChart,
		})
	},
}

func init() {
	evalCmd.Flags().Bool("json", false, "Print the result as one JSON object")
	evalCmd.Flags().Bool("chart", false, "Print the membership chart with the value marked")
}

type evalOptions struct {
	JSON  bool
	Chart bool
}

// evaluate grades raw for domain id and writes the report to w.
func evaluate(w io.Writer, registry *domain.Registry, logger *zap.Logger, id, raw string, opts evalOptions) error {
	d, err := registry.Lookup(id)
	if err != nil {
		return err
	}

	x, err := domain.ParseValue(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", d.Quantity, err)
	}

	res, err := d.Evaluate(x)
	if err != nil {
		return err
	}
	logger.Debug("evaluated", zap.String("domain", d.ID), zap.Float64("value", x))

	if opts.JSON {
		return report.WriteJSON(w, d, res)
	}
	if err := report.WriteText(w, d, res); err != nil {
		return err
	}
	if opts.Chart {
		if _, err := lipgloss.Fprintln(w, "\n"+chart.Render(d, chart.Options{}.MarkAt(x))); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
	}
	return nil
}
