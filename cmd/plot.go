package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/fuzzwater/internal/chart"
	"github.com/abhisek/fuzzwater/internal/domain"
)

var plotCmd = &cobra.Command{
	Use:   "plot [domain]",
	Short: "Draw membership curves",
	Long:  "Draw the membership curves of one domain, or of every domain when none is given.",
	Args:  cobra.MaximumNArgs(1),
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

		var opts plotOptions
		opts.Width, _ = cmd.Flags().GetInt("width")
		opts.Height, _ = cmd.Flags().GetInt("height")
		if cmd.Flags().Changed("mark") {
			mark, _ := cmd.Flags().GetString("mark")
			x, err := domain.ParseValue(mark)
			if err != nil {
				return fmt.Errorf("--mark: %w", err)
			}
			opts.Mark = &x
		}

		var id string
		if len(args) == 1 {
			id = args[0]
		}
		return plot(cmd.OutOrStdout(), registry, id, opts)
	},
}

func init() {
	plotCmd.Flags().String("mark", "", "Mark a value on the chart (requires a domain)")
	plotCmd.Flags().Int("width", chart.DefaultWidth, "Plot area width in columns")
	plotCmd.Flags().Int("height", chart.DefaultHeight, "Plot area height in rows")
}

type plotOptions struct {
	Width, Height int
	Mark          *float64
}

// plot draws the chart of domain id, or of every domain when id is empty.
func plot(w io.Writer, registry *domain.Registry, id string, opts plotOptions) error {
	copts := chart.Options{Width: opts.Width, Height: opts.Height}

	if id == "" {
		if opts.Mark != nil {
			return fmt.Errorf("--mark needs a domain")
		}
		for i, d := range registry.All() {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if _, err := lipgloss.Fprintln(w, chart.Render(d, copts)); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
		}
		return nil
	}

	d, err := registry.Lookup(id)
	if err != nil {
		return err
	}
	if opts.Mark != nil {
		if err := d.Check(*opts.Mark); err != nil {
			return err
		}
		copts = copts.MarkAt(*opts.Mark)
	}
	if _, err := lipgloss.Fprintln(w, chart.Render(d, copts)); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
