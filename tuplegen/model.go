package tuplegen

import (
	"fmt"
	"strings"
)

// param is one position of a degree.
type param struct {
	Index     int
	Getter    string
	Type      string
	Var       string
	Extractor string
}

// degree holds everything the templates need to emit one arity.
type degree struct {
	N      int
	Family string
	Params []param
	Prev   *degree
	Next   *degree
}

// templateData is the root value every template is executed with.
type templateData struct {
	Package   string
	MaxDegree int
	Degrees   []*degree

	// Positions are the params of the largest degree; position i is shared by all
	// degrees above i.
	Positions []param
}

func newTemplateData(cfg Config) templateData {
	families := cfg.families()
	positions := make([]param, len(families))
	degrees := make([]*degree, len(families))

	for i, family := range families {
		positions[i] = param{
			Index:     i,
			Getter:    family.Getter(),
			Type:      fmt.Sprintf("T%d", i),
			Var:       fmt.Sprintf("v%d", i),
			Extractor: fmt.Sprintf("m%d", i),
		}

		degrees[i] = &degree{
			N:      i + 1,
			Family: family.Name,
			Params: positions[:i+1],
		}

		if i > 0 {
			degrees[i].Prev = degrees[i-1]
			degrees[i-1].Next = degrees[i]
		}
	}

	return templateData{
		Package:   cfg.Package,
		MaxDegree: cfg.MaxDegree,
		Degrees:   degrees,
		Positions: positions,
	}
}

// Last returns the param that this degree adds to the previous one.
func (d *degree) Last() param {
	return d.Params[len(d.Params)-1]
}

// TypeParams renders "T0, T1, T2".
func (d *degree) TypeParams() string {
	return d.join(func(p param) string { return p.Type })
}

// ValueParams renders "v0 T0, v1 T1, v2 T2".
func (d *degree) ValueParams() string {
	return d.join(func(p param) string { return p.Var + " " + p.Type })
}

// ValueArgs renders "v0, v1, v2".
func (d *degree) ValueArgs() string {
	return d.join(func(p param) string { return p.Var })
}

// ElementArgs renders "elements[0], elements[1], elements[2]".
func (d *degree) ElementArgs() string {
	return d.join(func(p param) string { return fmt.Sprintf("elements[%d]", p.Index) })
}

// ExtractorParams renders "m0 func(S) T0, m1 func(S) T1".
func (d *degree) ExtractorParams() string {
	return d.join(func(p param) string { return p.Extractor + " func(S) " + p.Type })
}

// ExtractorArgs renders "m0, m1".
func (d *degree) ExtractorArgs() string {
	return d.join(func(p param) string { return p.Extractor })
}

// ExtractorFields renders "m0: m0, m1: m1".
func (d *degree) ExtractorFields() string {
	return d.join(func(p param) string { return p.Extractor + ": " + p.Extractor })
}

// NilChecks renders "m0 == nil, m1 == nil".
func (d *degree) NilChecks() string {
	return d.join(func(p param) string { return p.Extractor + " == nil" })
}

// AppliedArgs renders "m.m0(source), m.m1(source)".
func (d *degree) AppliedArgs() string {
	return d.join(func(p param) string { return "m." + p.Extractor + "(source)" })
}

// GetterRange renders "the getter First", "the getters First and Second" or
// "the getters First through Third".
func (d *degree) GetterRange() string {
	first, last := d.Params[0].Getter, d.Last().Getter

	switch d.N {
	case 1:
		return "the getter " + first
	case 2: //nolint:mnd
		return "the getters " + first + " and " + last
	default:
		return "the getters " + first + " through " + last
	}
}

func (d *degree) join(f func(p param) string) string {
	parts := make([]string, len(d.Params))

	for i, p := range d.Params {
		parts[i] = f(p)
	}

	return strings.Join(parts, ", ")
}
