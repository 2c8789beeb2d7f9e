// Package console implements the line-based interactive loop used when
// stdin is not a terminal or the plain shell is requested.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/fuzzwater/internal/chart"
	"github.com/abhisek/fuzzwater/internal/domain"
	"github.com/abhisek/fuzzwater/internal/report"
)

const rule = 50

// Session is one run of the line-based menu loop.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	registry *domain.Registry
	logger   *zap.Logger

	// Chart controls the size of charts printed after an evaluation.
	Chart chart.Options
}

// New creates a Session reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, registry *domain.Registry, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		registry: registry,
		logger:   logger,
	}
}

// errInputClosed ends the loop when the input runs out.
var errInputClosed = errors.New("input closed")

// Run shows the menu until the user exits, the input ends or ctx is
// cancelled. Running out of input is not an error.
func (s *Session) Run(ctx context.Context) error {
	domains := s.registry.All()
	showAll := len(domains) + 1
	exit := len(domains) + 2

	s.printf("Fuzzy water quality assessment\n")
	s.printf("%s\n", strings.Repeat("=", rule))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu(domains)
		choice, err := s.prompt(fmt.Sprintf("Choose an option (1-%d): ", exit))
		if err != nil {
			return s.finish(err)
		}

		n, convErr := strconv.Atoi(choice)
		switch {
		case convErr != nil || n < 1 || n > exit:
			s.logger.Warn("invalid menu choice", zap.String("input", choice))
			s.printf("Invalid choice. Try again.\n")
		case n == exit:
			s.printf("Exiting...\n")
			return nil
		case n == showAll:
			if err := s.showAll(domains); err != nil {
				return err
			}
		default:
			if err := s.evaluate(ctx, domains[n-1]); err != nil {
				return s.finish(err)
			}
		}
	}
}

func (s *Session) printMenu(domains []domain.Domain) {
	s.printf("\nMenu:\n")
	for i, d := range domains {
		s.printf("%d. Evaluate %s\n", i+1, strings.ToLower(d.Title))
	}
	s.printf("%d. Show all fuzzy sets\n", len(domains)+1)
	s.printf("%d. Exit\n", len(domains)+2)
}

// evaluate reads one value for d and prints its report and, on request, the
// chart.
func (s *Session) evaluate(ctx context.Context, d domain.Domain) error {
	logger := s.logger.With(zap.String("domain", d.ID))

	input, err := s.prompt(fmt.Sprintf("Enter %s (%s): ", strings.ToLower(d.Quantity), d.RangeLabel()))
	if err != nil {
		return err
	}

	x, err := domain.ParseValue(input)
	if err != nil {
		logger.Warn("rejected input", zap.String("input", input), zap.Error(err))
		s.printf("Error: enter a numeric value\n")
		return nil
	}

	res, err := d.Evaluate(x)
	if err != nil {
		var rangeErr *domain.RangeError
		if !errors.As(err, &rangeErr) {
			return err
		}
		logger.Warn("rejected input", zap.String("input", input), zap.Error(err))
		s.printf("Error: %s\n", rangeErr)
		return nil
	}

	s.printf("\n")
	if err := report.WriteText(s.out, d, res); err != nil {
		return err
	}
	if best, err := res.Best(); err == nil {
		logger.Debug("evaluated",
			zap.Float64("value", x),
			zap.String("best", best.Name),
			zap.Float64("degree", best.Degree))
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	answer, err := s.prompt("Show chart? (y/n): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") {
		s.println(chart.Render(d, s.Chart.MarkAt(x)))
	}
	return nil
}

func (s *Session) showAll(domains []domain.Domain) error {
	s.printf("\nFuzzy sets of every domain\n\n")
	for _, d := range domains {
		if err := report.WriteSets(s.out, d); err != nil {
			return err
		}
		s.println(chart.Render(d, s.Chart))
		s.printf("\n")
	}
	return nil
}

// prompt writes text and returns the next trimmed input line.
func (s *Session) prompt(text string) (string, error) {
	s.printf("%s", text)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		s.printf("\n(input closed)\n")
		return nil
	}
	return err
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// println writes styled output, dropping colors the writer cannot show.
func (s *Session) println(styled string) {
	lipgloss.Fprintln(s.out, styled)
}
