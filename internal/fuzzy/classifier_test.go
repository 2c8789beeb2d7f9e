package fuzzy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanliness(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier("cleanliness",
		MustTriangle("Clean", 0, 0, 25),
		MustTriangle("Slightly polluted", 15, 35, 55),
		MustTriangle("Polluted", 45, 65, 85),
		MustTriangle("Heavily polluted", 75, 100, 100),
	)
	require.NoError(t, err)
	return c
}

func temperature(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier("temperature",
		MustTriangle("Cold", 0, 0, 15),
		MustTriangle("Cool", 10, 17, 24),
		MustTriangle("Warm", 20, 27, 34),
		MustTriangle("Hot", 30, 40, 40),
	)
	require.NoError(t, err)
	return c
}

func names(grades []Grade) []string {
	out := make([]string, len(grades))
	for i, g := range grades {
		out[i] = g.Name
	}
	return out
}

func TestEvaluate_Cleanliness(t *testing.T) {
	c := cleanliness(t)

	tests := []struct {
		name     string
		x        float64
		degrees  []float64
		wantBest string
		bestDeg  float64
	}{
		{"zero", 0, []float64{1, 0, 0, 0}, "Clean", 1},
		{"boundary 25", 25, []float64{0, 0.5, 0, 0}, "Slightly polluted", 0.5},
		{"peak 65", 65, []float64{0, 0, 1, 0}, "Polluted", 1},
		{"overlap 50", 50, []float64{0, 0.25, 0.25, 0}, "Slightly polluted", 0.25},
		{"hundred", 100, []float64{0, 0, 0, 1}, "Heavily polluted", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Evaluate(tt.x)
			require.NoError(t, err)
			assert.Equal(t, tt.x, res.Value)
			assert.Equal(t, []string{"Clean", "Slightly polluted", "Polluted", "Heavily polluted"}, names(res.Grades))
			for i, want := range tt.degrees {
				assert.InDelta(t, want, res.Grades[i].Degree, 1e-12, "set %s", res.Grades[i].Name)
			}

			best, err := res.Best()
			require.NoError(t, err)
			assert.Equal(t, tt.wantBest, best.Name)
			assert.InDelta(t, tt.bestDeg, best.Degree, 1e-12)
		})
	}
}

func TestEvaluate_TemperatureWarmPeak(t *testing.T) {
	res, err := temperature(t).Evaluate(27)
	require.NoError(t, err)

	warm, ok := res.Degree("Warm")
	require.True(t, ok)
	assert.Equal(t, 1.0, warm)

	best, err := res.Best()
	require.NoError(t, err)
	assert.Equal(t, "Warm", best.Name)
}

func TestEvaluate_BestMatchesTrueMax(t *testing.T) {
	c := temperature(t)
	for x := -2.0; x <= 42; x += 0.5 {
		res, err := c.Evaluate(x)
		require.NoError(t, err)

		maxDeg := math.Inf(-1)
		first := -1
		for i, g := range res.Grades {
			if g.Degree > maxDeg {
				maxDeg = g.Degree
				first = i
			}
		}

		best, err := res.Best()
		require.NoError(t, err)
		assert.Equal(t, res.Grades[first], best, "x=%g", x)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	c := cleanliness(t)
	a, err := c.Evaluate(47.5)
	require.NoError(t, err)
	b, err := c.Evaluate(47.5)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEvaluate_Empty(t *testing.T) {
	c, err := NewClassifier("empty")
	require.NoError(t, err)

	_, err = c.Evaluate(10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyClassifier))

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "empty", cfgErr.Classifier)
	assert.Nil(t, c.Grades(10))
}

func TestNewClassifier_DuplicateName(t *testing.T) {
	_, err := NewClassifier("dup",
		MustTriangle("Warm", 20, 27, 34),
		MustTriangle("Warm", 25, 30, 35),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateSet))
	assert.Contains(t, err.Error(), `"Warm"`)
}

func TestNewClassifier_RejectsMalformedLiteral(t *testing.T) {
	tests := []struct {
		name string
		set  Triangle
	}{
		{"inverted", Triangle{Name: "inverted", A: 10, B: 5, C: 20}},
		{"nan peak", Triangle{Name: "nan", A: 0, B: math.NaN(), C: 10}},
		{"inf right foot", Triangle{Name: "inf", A: 0, B: 5, C: math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClassifier("bad", tt.set, MustTriangle("ok", 0, 5, 10))
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrMalformedTriangle))

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.set.Name, cfgErr.Set)
		})
	}
}

func TestClassifier_SetsIsCopy(t *testing.T) {
	sets := []Triangle{MustTriangle("Cold", 0, 0, 15)}
	c, err := NewClassifier("t", sets...)
	require.NoError(t, err)

	sets[0].Name = "mutated"
	got := c.Sets()
	assert.Equal(t, "Cold", got[0].Name)

	got[0].Name = "mutated again"
	s, ok := c.Set("Cold")
	assert.True(t, ok)
	assert.Equal(t, 15.0, s.C)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "t", c.Name())

	_, ok = c.Set("missing")
	assert.False(t, ok)
}
