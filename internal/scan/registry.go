// Package scan evaluates a named conversion over a grid of input values.
package scan

import (
	"fmt"
	"sort"

	"github.com/san-kum/nconv/internal/physics"
)

// Conversion is a registry entry: a series conversion plus the axis
// metadata needed for plots and export headers.
type Conversion struct {
	Name       string
	InputName  string
	InputUnit  string
	OutputName string
	OutputUnit string

	fn func([]float64, string) ([]float64, error)
}

var registry = map[string]Conversion{
	"wavelength-energy": {
		Name:      "wavelength-energy",
		InputName: "wavelength", InputUnit: "m",
		OutputName: "energy", OutputUnit: "meV",
		fn: physics.WavelengthToEnergySeries,
	},
	"energy-wavelength": {
		Name:      "energy-wavelength",
		InputName: "energy", InputUnit: "meV",
		OutputName: "wavelength", OutputUnit: "m",
		fn: physics.EnergyToWavelengthSeries,
	},
	"wavelength-momentum": {
		Name:      "wavelength-momentum",
		InputName: "wavelength", InputUnit: "m",
		OutputName: "momentum", OutputUnit: "kg m/s",
		fn: physics.WavelengthToMomentumSeries,
	},
	"momentum-wavelength": {
		Name:      "momentum-wavelength",
		InputName: "momentum", InputUnit: "kg m/s",
		OutputName: "wavelength", OutputUnit: "m",
		fn: physics.MomentumToWavelengthSeries,
	},
	"energy-momentum": {
		Name:      "energy-momentum",
		InputName: "energy", InputUnit: "meV",
		OutputName: "momentum", OutputUnit: "kg m/s",
		fn: physics.EnergyToMomentumSeries,
	},
	"momentum-energy": {
		Name:      "momentum-energy",
		InputName: "momentum", InputUnit: "kg m/s",
		OutputName: "energy", OutputUnit: "meV",
		fn: physics.MomentumToEnergySeries,
	},
	"velocity-energy": {
		Name:      "velocity-energy",
		InputName: "velocity", InputUnit: "m/s",
		OutputName: "energy", OutputUnit: "meV",
		fn: physics.VelocityToEnergySeries,
	},
	"energy-velocity": {
		Name:      "energy-velocity",
		InputName: "energy", InputUnit: "meV",
		OutputName: "velocity", OutputUnit: "m/s",
		fn: physics.EnergyToVelocitySeries,
	},
}

// Lookup finds a conversion by name.
func Lookup(name string) (Conversion, error) {
	c, ok := registry[name]
	if !ok {
		return Conversion{}, fmt.Errorf("unknown conversion %q (known: %v)", name, Names())
	}
	return c, nil
}

// Names returns the registered conversion names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
