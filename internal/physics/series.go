package physics

// apply maps f over vs, returning a slice of the same length.
func apply(vs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = f(v)
	}
	return out
}

// series resolves the species once and maps the selected method over vs.
func series(vs []float64, species string, pick func(Species) func(float64) float64) ([]float64, error) {
	sp, err := resolve(species)
	if err != nil {
		return nil, err
	}
	return apply(vs, pick(sp)), nil
}

// WavelengthToEnergySeries converts wavelengths [m] to energies [meV]
// elementwise.
func WavelengthToEnergySeries(lambdas []float64, species string) ([]float64, error) {
	return series(lambdas, species, func(sp Species) func(float64) float64 { return sp.WavelengthToEnergy })
}

// EnergyToWavelengthSeries converts energies [meV] to wavelengths [m]
// elementwise.
func EnergyToWavelengthSeries(es []float64, species string) ([]float64, error) {
	return series(es, species, func(sp Species) func(float64) float64 { return sp.EnergyToWavelength })
}

// WavelengthToMomentumSeries converts wavelengths [m] to momenta [kg m/s]
// elementwise.
func WavelengthToMomentumSeries(lambdas []float64, species string) ([]float64, error) {
	return series(lambdas, species, func(sp Species) func(float64) float64 { return sp.WavelengthToMomentum })
}

// MomentumToWavelengthSeries converts momenta [kg m/s] to wavelengths [m]
// elementwise.
func MomentumToWavelengthSeries(ps []float64, species string) ([]float64, error) {
	return series(ps, species, func(sp Species) func(float64) float64 { return sp.MomentumToWavelength })
}

// EnergyToMomentumSeries converts energies [meV] to momenta [kg m/s]
// elementwise.
func EnergyToMomentumSeries(es []float64, species string) ([]float64, error) {
	return series(es, species, func(sp Species) func(float64) float64 { return sp.EnergyToMomentum })
}

// MomentumToEnergySeries converts momenta [kg m/s] to energies [meV]
// elementwise.
func MomentumToEnergySeries(ps []float64, species string) ([]float64, error) {
	return series(ps, species, func(sp Species) func(float64) float64 { return sp.MomentumToEnergy })
}

// VelocityToEnergySeries converts velocities [m/s] to energies [meV]
// elementwise.
func VelocityToEnergySeries(vs []float64, species string) ([]float64, error) {
	return series(vs, species, func(sp Species) func(float64) float64 { return sp.VelocityToEnergy })
}

// EnergyToVelocitySeries converts energies [meV] to velocities [m/s]
// elementwise.
func EnergyToVelocitySeries(es []float64, species string) ([]float64, error) {
	return series(es, species, func(sp Species) func(float64) float64 { return sp.EnergyToVelocity })
}
