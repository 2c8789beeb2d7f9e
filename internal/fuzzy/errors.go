package fuzzy

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyClassifier indicates a classifier with no configured fuzzy sets.
	ErrEmptyClassifier = errors.New("classifier has no fuzzy sets")

	// ErrMalformedTriangle indicates breakpoints that violate a <= b <= c
	// or are not finite.
	ErrMalformedTriangle = errors.New("malformed triangle")

	// ErrDuplicateSet indicates two sets with the same name in one classifier.
	ErrDuplicateSet = errors.New("duplicate fuzzy set name")
)

// ConfigError reports a configuration problem in a classifier or one of its
// sets. It is never caused by a measured value.
type ConfigError struct {
	Classifier string // empty when raised while building a single set
	Set        string // empty when the problem is not tied to one set
	Err        error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Classifier != "" && e.Set != "":
		return fmt.Sprintf("classifier %q: set %q: %v", e.Classifier, e.Set, e.Err)
	case e.Classifier != "":
		return fmt.Sprintf("classifier %q: %v", e.Classifier, e.Err)
	case e.Set != "":
		return fmt.Sprintf("set %q: %v", e.Set, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }
