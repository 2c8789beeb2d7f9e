package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_Parameters(t *testing.T) {
	type params struct {
		name    string
		a, b, c float64
	}

	tests := []struct {
		domain   Domain
		min, max float64
		unit     string
		sets     []params
	}{
		{
			domain: Cleanliness(),
			min:    0, max: 100, unit: "mg/L",
			sets: []params{
				{"Clean", 0, 0, 25},
				{"Slightly polluted", 15, 35, 55},
				{"Polluted", 45, 65, 85},
				{"Heavily polluted", 75, 100, 100},
			},
		},
		{
			domain: Temperature(),
			min:    0, max: 40, unit: "°C",
			sets: []params{
				{"Cold", 0, 0, 15},
				{"Cool", 10, 17, 24},
				{"Warm", 20, 27, 34},
				{"Hot", 30, 40, 40},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.domain.ID, func(t *testing.T) {
			assert.Equal(t, tt.min, tt.domain.Min)
			assert.Equal(t, tt.max, tt.domain.Max)
			assert.Equal(t, tt.unit, tt.domain.Unit)

			sets := tt.domain.Classifier.Sets()
			require.Len(t, sets, len(tt.sets))
			for i, want := range tt.sets {
				got := sets[i]
				assert.Equal(t, want.name, got.Name)
				assert.Equal(t, []float64{want.a, want.b, want.c}, []float64{got.A, got.B, got.C}, "set %s", want.name)
			}
		})
	}
}

func TestDomain_Check(t *testing.T) {
	d := Temperature()

	for _, x := range []float64{0, 0.5, 27, 40} {
		assert.NoError(t, d.Check(x), "x=%g", x)
	}

	for _, x := range []float64{-0.1, 40.01, 100} {
		err := d.Check(x)
		require.Error(t, err, "x=%g", x)
		var re *RangeError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, TemperatureID, re.Domain)
		assert.Equal(t, x, re.Value)
	}
}

func TestDomain_Evaluate(t *testing.T) {
	res, err := Cleanliness().Evaluate(25)
	require.NoError(t, err)
	best, err := res.Best()
	require.NoError(t, err)
	assert.Equal(t, "Slightly polluted", best.Name)
	assert.InDelta(t, 0.5, best.Degree, 1e-12)

	_, err = Cleanliness().Evaluate(101)
	var re *RangeError
	assert.True(t, errors.As(err, &re))
}

func TestRangeError_Message(t *testing.T) {
	err := Cleanliness().Check(150)
	require.Error(t, err)
	assert.Equal(t, "pollution level must be in the range 0-100 mg/L, got 150", err.Error())
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "0-40 °C", Temperature().RangeLabel())
	assert.Equal(t, "1-2", Domain{Min: 1, Max: 2}.RangeLabel())
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"25", 25, false},
		{" 25.5 ", 25.5, false},
		{"25,5", 25.5, false},
		{"-3", -3, false},
		{"1e1", 10, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1,000.5", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-inf", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseValue(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrNotANumber) {
				t.Errorf("ParseValue(%q) error = %v, want ErrNotANumber", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseValue(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseValue(%q) = %g, want %g", tt.in, got, tt.want)
		}
	}
}
