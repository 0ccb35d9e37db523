package tuplegen

import (
	_ "embed"
	"errors"
	"fmt"
	"go/token"
	"os"

	amperrors "github.com/amp-labs/amp-tuple/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a generator configuration cannot produce a valid package.
var ErrInvalidConfig = errors.New("invalid generator config")

//go:embed families.yaml
var defaultConfig []byte

// Config describes the package to generate.
type Config struct {
	// Package is the name of the generated package.
	Package string `yaml:"package"`

	// MaxDegree is the largest degree with a dedicated tuple type.
	MaxDegree int `yaml:"maxDegree"`

	// Families lists one entry per degree, starting at degree 1. Entries past
	// MaxDegree are ignored.
	Families []Family `yaml:"families"`
}

// Family names the degree interface of one degree and the getter for its last position.
type Family struct {
	Name    string `yaml:"name"`
	Ordinal string `yaml:"ordinal"`
}

// Getter returns the exported getter name for the family's ordinal, e.g. "Third".
func (f Family) Getter() string {
	return cases.Title(language.English).String(f.Ordinal)
}

// DefaultConfig returns the embedded configuration: package tuple, degrees 1 to 20.
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultConfig)
	if err != nil {
		panic(err)
	}

	return cfg
}

// LoadConfig reads and validates the YAML configuration at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading generator config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes and validates a YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	errs := amperrors.NewCollection(ErrInvalidConfig)

	if !token.IsIdentifier(c.Package) {
		errs.Addf("package name %q is not an identifier", c.Package)
	}

	if c.MaxDegree < 1 {
		errs.Addf("max degree must be at least 1, got %d", c.MaxDegree)
	}

	if len(c.Families) < c.MaxDegree {
		errs.Addf("%d families configured for max degree %d", len(c.Families), c.MaxDegree)
	}

	names := make(map[string]int)
	getters := make(map[string]int)

	for i, family := range c.families() {
		degree := i + 1

		checkName(errs, "family name", degree, family.Name, names)
		checkName(errs, "ordinal", degree, family.Getter(), getters)
	}

	return errs.GetError()
}

// families returns the families in use, at most MaxDegree of them.
func (c Config) families() []Family {
	return c.Families[:min(max(c.MaxDegree, 0), len(c.Families))]
}

func checkName(errs *amperrors.Collection, what string, degree int, name string, seen map[string]int) {
	switch prev, duplicate := seen[name]; {
	case name == "":
		errs.Addf("degree %d has an empty %s", degree, what)
	case !token.IsExported(name) || !token.IsIdentifier(name):
		errs.Addf("%s %q of degree %d is not an exported identifier", what, name, degree)
	case duplicate:
		errs.Addf("%s %q used by degrees %d and %d", what, name, prev, degree)
	default:
		seen[name] = degree
	}
}
