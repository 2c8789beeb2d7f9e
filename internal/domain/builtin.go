package domain

import "github.com/abhisek/fuzzwater/internal/fuzzy"

const (
	CleanlinessID = "cleanliness"
	TemperatureID = "temperature"
)

// Cleanliness returns the water cleanliness domain, graded by pollution
// level in mg/L.
func Cleanliness() Domain {
	return Domain{
		ID:       CleanlinessID,
		Title:    "Water cleanliness",
		Quantity: "Pollution level",
		Unit:     "mg/L",
		Min:      0,
		Max:      100,
		Classifier: mustClassifier(CleanlinessID,
			fuzzy.MustTriangle("Clean", 0, 0, 25),
			fuzzy.MustTriangle("Slightly polluted", 15, 35, 55),
			fuzzy.MustTriangle("Polluted", 45, 65, 85),
			fuzzy.MustTriangle("Heavily polluted", 75, 100, 100),
		),
	}
}

// Temperature returns the water temperature domain in °C.
func Temperature() Domain {
	return Domain{
		ID:       TemperatureID,
		Title:    "Water temperature",
		Quantity: "Temperature",
		Unit:     "°C",
		Min:      0,
		Max:      40,
		Classifier: mustClassifier(TemperatureID,
			fuzzy.MustTriangle("Cold", 0, 0, 15),
			fuzzy.MustTriangle("Cool", 10, 17, 24),
			fuzzy.MustTriangle("Warm", 20, 27, 34),
			fuzzy.MustTriangle("Hot", 30, 40, 40),
		),
	}
}

// Builtin returns the built-in domains in menu order.
func Builtin() []Domain {
	return []Domain{Cleanliness(), Temperature()}
}

func mustClassifier(name string, sets ...fuzzy.Triangle) *fuzzy.Classifier {
	c, err := fuzzy.NewClassifier(name, sets...)
	if err != nil {
		panic(err)
	}
	return c
}
