package scan

import (
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/nconv/internal/physics"
)

// Result holds one evaluated sweep. Inputs and Outputs correspond
// elementwise and share a length.
type Result struct {
	Conversion string
	Species    string
	InputName  string
	InputUnit  string
	OutputName string
	OutputUnit string
	Inputs     []float64
	Outputs    []float64
}

// Grid returns points values spaced evenly over [min, max] inclusive.
func Grid(min, max float64, points int) []float64 {
	return floats.Span(make([]float64, points), min, max)
}

// Run evaluates the named conversion over grid for the given species
// (empty selects the neutron). The species name is canonicalized in the
// result so saved runs read the same regardless of the alias used.
func Run(conversion, species string, grid []float64) (*Result, error) {
	c, err := Lookup(conversion)
	if err != nil {
		return nil, err
	}
	canonical := "neutron"
	if species != "" {
		sp, err := physics.ParseSpecies(species)
		if err != nil {
			return nil, err
		}
		canonical = sp.String()
	}
	// The canonical name re-parses cleanly, so an ambiguous "he" only
	// triggers its advisory once.
	outputs, err := c.fn(grid, canonical)
	if err != nil {
		return nil, err
	}
	return &Result{
		Conversion: c.Name,
		Species:    canonical,
		InputName:  c.InputName,
		InputUnit:  c.InputUnit,
		OutputName: c.OutputName,
		OutputUnit: c.OutputUnit,
		Inputs:     grid,
		Outputs:    outputs,
	}, nil
}
