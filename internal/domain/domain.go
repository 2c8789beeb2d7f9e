package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/fuzzwater/internal/fuzzy"
)

var (
	// ErrUnknownDomain indicates a domain ID that is not registered.
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrNotANumber indicates user input that does not parse as a finite number.
	ErrNotANumber = errors.New("not a number")
)

// RangeError reports a measurement outside a domain's accepted range.
type RangeError struct {
	Domain   string
	Quantity string
	Unit     string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be in the range %g-%g %s, got %g",
		strings.ToLower(e.Quantity), e.Min, e.Max, e.Unit, e.Value)
}

// Domain is one measured variable: its classifier plus display metadata and
// the range of values the shell accepts.
type Domain struct {
	ID         string
	Title      string
	Quantity   string
	Unit       string
	Min, Max   float64
	Classifier *fuzzy.Classifier
}

// Check returns a *RangeError when x lies outside [Min, Max].
func (d Domain) Check(x float64) error {
	if x < d.Min || x > d.Max {
		return &RangeError{
			Domain:   d.ID,
			Quantity: d.Quantity,
			Unit:     d.Unit,
			Value:    x,
			Min:      d.Min,
			Max:      d.Max,
		}
	}
	return nil
}

// Evaluate validates x against the domain range and grades it.
func (d Domain) Evaluate(x float64) (fuzzy.Result, error) {
	if err := d.Check(x); err != nil {
		return fuzzy.Result{}, err
	}
	return d.Classifier.Evaluate(x)
}

// RangeLabel renders the accepted range, e.g. "0-100 mg/L".
func (d Domain) RangeLabel() string {
	if d.Unit == "" {
		return fmt.Sprintf("%g-%g", d.Min, d.Max)
	}
	return fmt.Sprintf("%g-%g %s", d.Min, d.Max, d.Unit)
}

// ParseValue parses a user-entered measurement. Surrounding space is
// ignored and a decimal comma is accepted.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrNotANumber)
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}
