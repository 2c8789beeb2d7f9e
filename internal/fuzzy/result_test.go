package fuzzy

import (
	"errors"
	"testing"
)

func TestBest(t *testing.T) {
	tests := []struct {
		name   string
		grades []Grade
		want   Grade
	}{
		{
			name:   "single",
			grades: []Grade{{"a", 0.3}},
			want:   Grade{"a", 0.3},
		},
		{
			name:   "max in middle",
			grades: []Grade{{"a", 0.1}, {"b", 0.8}, {"c", 0.4}},
			want:   Grade{"b", 0.8},
		},
		{
			name:   "tie keeps first",
			grades: []Grade{{"a", 0.25}, {"b", 0.5}, {"c", 0.5}},
			want:   Grade{"b", 0.5},
		},
		{
			name:   "all zero keeps first",
			grades: []Grade{{"a", 0}, {"b", 0}, {"c", 0}},
			want:   Grade{"a", 0},
		},
	}

	for _, tt := range tests {
		got, err := Best(tt.grades)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: Best() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestBest_Empty(t *testing.T) {
	_, err := Best(nil)
	if !errors.Is(err, ErrEmptyClassifier) {
		t.Errorf("Best(nil) error = %v, want ErrEmptyClassifier", err)
	}
}

func TestResult_Degree(t *testing.T) {
	r := Result{Value: 1, Grades: []Grade{{"a", 0.2}, {"b", 0.7}}}
	if d, ok := r.Degree("b"); !ok || d != 0.7 {
		t.Errorf("Degree(b) = %g, %v", d, ok)
	}
	if _, ok := r.Degree("z"); ok {
		t.Error("Degree(z) should not be found")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		err  *ConfigError
		want string
	}{
		{&ConfigError{Classifier: "c", Set: "s", Err: ErrDuplicateSet}, `classifier "c": set "s": duplicate fuzzy set name`},
		{&ConfigError{Classifier: "c", Err: ErrEmptyClassifier}, `classifier "c": classifier has no fuzzy sets`},
		{&ConfigError{Set: "s", Err: ErrMalformedTriangle}, `set "s": malformed triangle`},
		{&ConfigError{Err: ErrEmptyClassifier}, `classifier has no fuzzy sets`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
