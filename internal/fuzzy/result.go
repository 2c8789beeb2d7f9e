package fuzzy

// Grade is the membership degree of a value in one named set.
type Grade struct {
	Name   string  `json:"name"`
	Degree float64 `json:"degree"`
}

// Result holds the grades of one evaluated value in classifier order.
type Result struct {
	Value  float64 `json:"value"`
	Grades []Grade `json:"grades"`
}

// Best returns the grade with the highest degree.
func (r Result) Best() (Grade, error) {
	return Best(r.Grades)
}

// Degree returns the degree recorded for the named set.
func (r Result) Degree(name string) (float64, bool) {
	for _, g := range r.Grades {
		if g.Name == name {
			return g.Degree, true
		}
	}
	return 0, false
}

// Best reduces grades to the one with the highest degree. On ties the
// earliest grade wins. It returns ErrEmptyClassifier for an empty slice.
func Best(grades []Grade) (Grade, error) {
	if len(grades) == 0 {
		return Grade{}, ErrEmptyClassifier
	}
	best := grades[0]
	for _, g := range grades[1:] {
		if g.Degree > best.Degree {
			best = g
		}
	}
	return best, nil
}
