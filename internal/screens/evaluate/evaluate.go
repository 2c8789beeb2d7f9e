package evaluate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/fuzzwater/internal/chart"
	"github.com/abhisek/fuzzwater/internal/domain"
	"github.com/abhisek/fuzzwater/internal/fuzzy"
	"github.com/abhisek/fuzzwater/internal/router"
	"github.com/abhisek/fuzzwater/internal/screen"
	"github.com/abhisek/fuzzwater/internal/ui/components"
	"github.com/abhisek/fuzzwater/internal/ui/layout"
	"github.com/abhisek/fuzzwater/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseResult
)

const barWidth = 56

// EvaluateScreen reads a measurement for one domain and shows its membership
// degrees, the most likely category and optionally the chart.
type EvaluateScreen struct {
	domain    domain.Domain
	base      *zap.Logger
	logger    *zap.Logger
	input     components.TextInput
	phase     phase
	result    fuzzy.Result
	best      fuzzy.Grade
	showChart bool
	errMsg    string
}

var _ screen.Screen = (*EvaluateScreen)(nil)
var _ screen.KeyHintProvider = (*EvaluateScreen)(nil)

// New creates an EvaluateScreen for d.
func New(d domain.Domain, logger *zap.Logger) *EvaluateScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluateScreen{
		domain: d,
		base:   logger,
		logger: logger.With(zap.String("domain", d.ID)),
		input:  newInput(d),
	}
}

func newInput(d domain.Domain) components.TextInput {
	return components.NewTextInput(fmt.Sprintf("%s (%s)", d.Quantity, d.RangeLabel()), true, 16)
}

func (s *EvaluateScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *EvaluateScreen) Title() string {
	return s.domain.Title
}

func (s *EvaluateScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseResult {
		return []layout.KeyHint{
			{Key: "C", Description: "Toggle chart"},
			{Key: "Enter", Description: "New value"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Evaluate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *EvaluateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}
	if s.phase == phaseInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *EvaluateScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.phase == phaseResult {
		switch key {
		case "c", "C":
			s.showChart = !s.showChart
		case "enter", "n", "N":
			next := New(s.domain, s.base)
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
		return s, nil
	}

	if key == "enter" {
		s.submit()
		return s, nil
	}

	s.errMsg = ""
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit parses and evaluates the current input.
func (s *EvaluateScreen) submit() {
	x, err := domain.ParseValue(s.input.Value())
	if err != nil {
		s.reject(s.input.Value(), "Enter a numeric value.", err)
		return
	}

	res, err := s.domain.Evaluate(x)
	if err != nil {
		var rangeErr *domain.RangeError
		if errors.As(err, &rangeErr) {
			s.reject(s.input.Value(), capitalize(rangeErr.Error())+".", err)
			return
		}
		s.logger.Error("evaluation failed", zap.Float64("value", x), zap.Error(err))
		s.reject(s.input.Value(), err.Error(), err)
		return
	}

	best, err := res.Best()
	if err != nil {
		s.reject(s.input.Value(), err.Error(), err)
		return
	}

	s.logger.Debug("evaluated",
		zap.Float64("value", x),
		zap.String("best", best.Name),
		zap.Float64("degree", best.Degree))

	s.input.Submit(true)
	s.result = res
	s.best = best
	s.errMsg = ""
	s.phase = phaseResult
}

func (s *EvaluateScreen) reject(input, msg string, err error) {
	s.logger.Warn("rejected input", zap.String("input", input), zap.Error(err))
	s.input.Submit(false)
	s.errMsg = msg
}

func (s *EvaluateScreen) View(width, height int) string {
	var sections []string

	prompt := theme.Body.Render(fmt.Sprintf("%s, %s:", s.domain.Quantity, s.domain.RangeLabel()))
	sections = append(sections, prompt, s.input.View())

	if s.errMsg != "" {
		sections = append(sections, theme.Invalid.Render(s.errMsg))
	}

	if s.phase == phaseResult {
		sections = append(sections, "", s.renderGrades())
		if s.showChart {
			opts := chart.Options{Width: layout.ChartWidth(width, 1), Height: max(height-len(s.result.Grades)-16, 5)}
			sections = append(sections, "", chart.Render(s.domain, opts.MarkAt(s.result.Value)))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(content)
}

func (s *EvaluateScreen) renderGrades() string {
	labelWidth := 0
	for _, g := range s.result.Grades {
		labelWidth = max(labelWidth, lipgloss.Width(g.Name))
	}

	var lines []string
	for i, g := range s.result.Grades {
		bar := components.NewDegreeBar(g.Name, g.Degree, barWidth, theme.SeriesColor(i))
		bar.LabelWidth = labelWidth
		bar.Highlight = g.Name == s.best.Name
		lines = append(lines, bar.View())
	}

	verdict := theme.Body.Render("Most likely category: ") +
		theme.Winner.Render(s.best.Name) +
		theme.Hint.Render(fmt.Sprintf(" (membership degree: %.3f)", s.best.Degree))
	lines = append(lines, "", verdict)

	return strings.Join(lines, "\n")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
