package domain

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/fuzzwater/internal/fuzzy"
)

// MaxFileSize caps the size of a domain file.
const MaxFileSize = 1 << 20

//go:embed domains.schema.json
var schemaJSON []byte

const schemaURL = "schema://fuzzwater/domains.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// ErrDuplicateDomain indicates two domains with the same ID in one file.
var ErrDuplicateDomain = errors.New("duplicate domain ID")

// ValidationError collects every semantic problem found in a domain file.
// errors.Is and errors.As see each collected error.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("domain validation failed:")
	for _, err := range multierr.Errors(e.Err) {
		b.WriteString("\n  ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// FileYAML is the root of a domain file.
type FileYAML struct {
	Domains []DomainYAML `yaml:"domains"`
}

// DomainYAML describes one domain in a domain file.
type DomainYAML struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title,omitempty"`
	Quantity string    `yaml:"quantity,omitempty"`
	Unit     string    `yaml:"unit"`
	Min      float64   `yaml:"min"`
	Max      float64   `yaml:"max"`
	Sets     []SetYAML `yaml:"sets"`
}

// SetYAML describes one triangular set.
type SetYAML struct {
	Name string  `yaml:"name"`
	A    float64 `yaml:"a"`
	B    float64 `yaml:"b"`
	C    float64 `yaml:"c"`
}

// LoadFile reads and parses a YAML domain file.
func LoadFile(path string) ([]Domain, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat domain file: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("domain file %s is %d bytes, limit is %d", path, info.Size(), MaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read domain file: %w", err)
	}
	domains, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return domains, nil
}

// Parse decodes YAML domain definitions, validates them against the domain
// file schema and builds their classifiers.
func Parse(data []byte) ([]Domain, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var file FileYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode domains: %w", err)
	}

	var errs error
	seen := make(map[string]bool, len(file.Domains))
	domains := make([]Domain, 0, len(file.Domains))

	for _, dy := range file.Domains {
		if seen[dy.ID] {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrDuplicateDomain, dy.ID))
			continue
		}
		seen[dy.ID] = true

		d, err := dy.build()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		domains = append(domains, d)
	}

	if errs != nil {
		return nil, &ValidationError{Err: errs}
	}
	return domains, nil
}

func (dy DomainYAML) build() (Domain, error) {
	if dy.Min >= dy.Max {
		return Domain{}, fmt.Errorf("domain %q: min must be below max, got min=%g max=%g", dy.ID, dy.Min, dy.Max)
	}

	sets := make([]fuzzy.Triangle, 0, len(dy.Sets))
	for _, sy := range dy.Sets {
		t, err := fuzzy.NewTriangle(sy.Name, sy.A, sy.B, sy.C)
		if err != nil {
			return Domain{}, fmt.Errorf("domain %q: %w", dy.ID, err)
		}
		sets = append(sets, t)
	}

	c, err := fuzzy.NewClassifier(dy.ID, sets...)
	if err != nil {
		return Domain{}, fmt.Errorf("domain %q: %w", dy.ID, err)
	}

	d := Domain{
		ID:         dy.ID,
		Title:      dy.Title,
		Quantity:   dy.Quantity,
		Unit:       dy.Unit,
		Min:        dy.Min,
		Max:        dy.Max,
		Classifier: c,
	}
	if d.Title == "" {
		d.Title = dy.ID
	}
	if d.Quantity == "" {
		d.Quantity = "Value"
	}
	return d, nil
}

// validateSchema checks a decoded YAML document against the domain file
// schema.
func validateSchema(raw any) error {
	sch, err := domainSchema()
	if err != nil {
		return fmt.Errorf("compile domain schema: %w", err)
	}

	// Round-trip through JSON so the validator sees plain JSON values
	// rather than YAML integer types.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert YAML to JSON: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("convert YAML to JSON: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func domainSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
