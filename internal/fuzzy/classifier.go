package fuzzy

// Classifier grades a value against an ordered collection of fuzzy sets
// describing one measured variable. It is immutable after construction and
// safe for concurrent use.
type Classifier struct {
	name string
	sets []Triangle
}

// NewClassifier builds a classifier from sets in report order. Set names must
// be distinct. An empty classifier is allowed but cannot be evaluated.
func NewClassifier(name string, sets ...Triangle) (*Classifier, error) {
	seen := make(map[string]bool, len(sets))
	for _, s := range sets {
		if seen[s.Name] {
			return nil, &ConfigError{Classifier: name, Set: s.Name, Err: ErrDuplicateSet}
		}
		seen[s.Name] = true
		if err := s.validate(); err != nil {
			return nil, &ConfigError{Classifier: name, Set: s.Name, Err: err}
		}
	}

	owned := make([]Triangle, len(sets))
	copy(owned, sets)
	return &Classifier{name: name, sets: owned}, nil
}

// Name returns the classifier's variable name, e.g. "temperature".
func (c *Classifier) Name() string {
	return c.name
}

// Len returns the number of configured sets.
func (c *Classifier) Len() int {
	return len(c.sets)
}

// Sets returns a copy of the configured sets in report order.
func (c *Classifier) Sets() []Triangle {
	out := make([]Triangle, len(c.sets))
	copy(out, c.sets)
	return out
}

// Set looks up a set by name.
func (c *Classifier) Set(name string) (Triangle, bool) {
	for _, s := range c.sets {
		if s.Name == name {
			return s, true
		}
	}
	return Triangle{}, false
}

// Grades computes the membership of x in every set, in report order.
// It returns nil for an empty classifier.
func (c *Classifier) Grades(x float64) []Grade {
	if len(c.sets) == 0 {
		return nil
	}
	grades := make([]Grade, len(c.sets))
	for i, s := range c.sets {
		grades[i] = Grade{Name: s.Name, Degree: s.Degree(x)}
	}
	return grades
}

// Evaluate grades x against every set. It fails with a *ConfigError wrapping
// ErrEmptyClassifier when no sets are configured.
func (c *Classifier) Evaluate(x float64) (Result, error) {
	if len(c.sets) == 0 {
		return Result{}, &ConfigError{Classifier: c.name, Err: ErrEmptyClassifier}
	}
	return Result{Value: x, Grades: c.Grades(x)}, nil
}
