package physics

import "math"

// WavelengthToEnergy converts a de Broglie wavelength [m] to kinetic
// energy [meV]: E = h² / (2mλ²).
func (sp Species) WavelengthToEnergy(lambda float64) float64 {
	return H * H / (2 * sp.Mass() * lambda * lambda) / MeVToJoule
}

// EnergyToWavelength converts a kinetic energy [meV] to a de Broglie
// wavelength [m]: λ = h / √(2mE).
func (sp Species) EnergyToWavelength(e float64) float64 {
	return H / math.Sqrt(2*sp.Mass()*e*MeVToJoule)
}

// WavelengthToMomentum converts a wavelength [m] to momentum [kg m/s]:
// p = h / λ. Mass-independent; the species only matters for symmetry with
// the other pairs.
func (sp Species) WavelengthToMomentum(lambda float64) float64 {
	return H / lambda
}

// MomentumToWavelength converts a momentum [kg m/s] to a wavelength [m]:
// λ = h / p.
func (sp Species) MomentumToWavelength(p float64) float64 {
	return H / p
}

// EnergyToMomentum converts a kinetic energy [meV] to momentum [kg m/s]:
// p = √(2mE).
func (sp Species) EnergyToMomentum(e float64) float64 {
	return math.Sqrt(2 * sp.Mass() * e * MeVToJoule)
}

// MomentumToEnergy converts a momentum [kg m/s] to kinetic energy [meV]:
// E = p² / 2m.
func (sp Species) MomentumToEnergy(p float64) float64 {
	return p * p / (2 * sp.Mass()) / MeVToJoule
}

// VelocityToEnergy converts a velocity [m/s] to kinetic energy [meV]:
// E = ½mv².
func (sp Species) VelocityToEnergy(v float64) float64 {
	return 0.5 * sp.Mass() * v * v / MeVToJoule
}

// EnergyToVelocity converts a kinetic energy [meV] to velocity [m/s]:
// v = √(2E/m).
func (sp Species) EnergyToVelocity(e float64) float64 {
	return math.Sqrt(2 * e * MeVToJoule / sp.Mass())
}

// resolve maps a species name to a Species, defaulting the empty string
// to the neutron. Parse failures propagate unchanged.
func resolve(species string) (Species, error) {
	if species == "" {
		species = "n"
	}
	return ParseSpecies(species)
}

// WavelengthToEnergy converts a wavelength [m] to energy [meV] for the
// named species ("" selects the neutron).
func WavelengthToEnergy(lambda float64, species string) (float64, error) {
	sp, err := resolve(species)
	if err != nil {
		return 0, err
	}
	return sp.WavelengthToEnergy(lambda), nil
}

// EnergyToWavelength converts an energy [meV] to a wavelength [m] for the
// named species ("" selects the neutron).
func EnergyToWavelength(e float64, species string) (float64, error) {
	sp, err := resolve(species)
	if err != nil {
		return 0, err
	}
	return sp.EnergyToWavelength(e), nil
}

// WavelengthToMomentum converts a wavelength [m] to momentum [kg m/s] for
// the named species ("" selects the neutron).
func WavelengthToMomentum(lambda float64, species string) (float64, error) {
	sp, err := resolve(species)
	if err != nil {
		return 0, err
	}
	return sp.WavelengthToMomentum(lambda), nil
}

// MomentumToWavelength converts a momentum [kg m/s] to a wavelength [m]
// for the named species ("" selects the neutron).
func MomentumToWavelength(p float64, species string) (float64, error) {
	sp, err := resolve(species)
	if err != nil {
		return 0, err
	}
	return sp.MomentumToWavelength(p), nil
}

// EnergyToMomentum converts an energy [meV] to momentum [kg m/s] for the
// named species ("" selects the neutron).
func EnergyToMomentum(e float64, species string) (float64, error) {
	sp, err := resolve(species)
	if err != nil {
		return 0, err
	}
	return sp.EnergyToMomentum(e), nil
}

// MomentumToEnergy converts a momentum [kg m/s] to energy [meV] for the
// named species ("" selects the neutron).
func MomentumToEnergy(p float64, species string) (float64, error) {
	sp, err := resolve(species)
	if err != nil {
		return 0, err
	}
	return sp.MomentumToEnergy(p), nil
}

// VelocityToEnergy converts a velocity [m/s] to energy [meV] for the
// named species ("" selects the neutron).
func VelocityToEnergy(v float64, species string) (float64, error) {
	sp, err := resolve(species)
	if err != nil {
		return 0, err
	}
	return sp.VelocityToEnergy(v), nil
}

// EnergyToVelocity converts an energy [meV] to velocity [m/s] for the
// named species ("" selects the neutron).
func EnergyToVelocity(e float64, species string) (float64, error) {
	sp, err := resolve(species)
	if err != nil {
		return 0, err
	}
	return sp.EnergyToVelocity(e), nil
}
