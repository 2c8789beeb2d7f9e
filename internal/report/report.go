package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/fuzzwater/internal/domain"
	"github.com/abhisek/fuzzwater/internal/fuzzy"
)

const (
	heavyRule = 50
	lightRule = 50
)

// Report is the JSON form of one evaluation.
type Report struct {
	Domain string        `json:"domain"`
	Value  float64       `json:"value"`
	Unit   string        `json:"unit"`
	Grades []fuzzy.Grade `json:"grades"`
	Best   fuzzy.Grade   `json:"best"`
}

// New builds a Report for an evaluated result.
func New(d domain.Domain, res fuzzy.Result) (Report, error) {
	best, err := res.Best()
	if err != nil {
		return Report{}, err
	}
	return Report{
		Domain: d.ID,
		Value:  res.Value,
		Unit:   d.Unit,
		Grades: res.Grades,
		Best:   best,
	}, nil
}

// WriteText writes the console report: a header, one block per fuzzy set
// with its parameters and degree, and the most likely category.
func WriteText(w io.Writer, d domain.Domain, res fuzzy.Result) error {
	best, err := res.Best()
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s ASSESSMENT\n", strings.ToUpper(d.Title))
	fmt.Fprintf(&b, "%s: %s\n", d.Quantity, formatValue(res.Value, d.Unit))
	b.WriteString(strings.Repeat("=", heavyRule) + "\n")

	for _, s := range d.Classifier.Sets() {
		deg, _ := res.Degree(s.Name)
		writeSet(&b, s)
		fmt.Fprintf(&b, "Membership degree of %g: %.3f\n", res.Value, deg)
		b.WriteString(strings.Repeat("-", lightRule) + "\n")
	}

	fmt.Fprintf(&b, "Most likely category: %s (membership degree: %.3f)\n", best.Name, best.Degree)

	_, err = io.WriteString(w, b.String())
	return err
}

// WriteSets writes the parameters of every set in a domain.
func WriteSets(w io.Writer, d domain.Domain) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, range %s)\n", d.Title, d.ID, d.RangeLabel())
	b.WriteString(strings.Repeat("=", heavyRule) + "\n")
	for _, s := range d.Classifier.Sets() {
		writeSet(&b, s)
		b.WriteString(strings.Repeat("-", lightRule) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes the report as a single JSON line.
func WriteJSON(w io.Writer, d domain.Domain, res fuzzy.Result) error {
	r, err := New(d, res)
	if err != nil {
		return err
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeSet(b *strings.Builder, s fuzzy.Triangle) {
	fmt.Fprintf(b, "Fuzzy set: %s\n", s.Name)
	fmt.Fprintf(b, "Triangle parameters: a=%g, b=%g, c=%g\n", s.A, s.B, s.C)
}

func formatValue(v float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%g %s", v, unit)
}
