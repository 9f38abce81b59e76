package physics

// Neutron-fixed wrappers for call sites that never select a species.

// NeutronWavelengthToEnergy converts a wavelength [m] to energy [meV].
func NeutronWavelengthToEnergy(lambda float64) float64 {
	return Neutron.WavelengthToEnergy(lambda)
}

// NeutronEnergyToWavelength converts an energy [meV] to a wavelength [m].
func NeutronEnergyToWavelength(e float64) float64 {
	return Neutron.EnergyToWavelength(e)
}

// NeutronWavelengthToMomentum converts a wavelength [m] to momentum [kg m/s].
func NeutronWavelengthToMomentum(lambda float64) float64 {
	return Neutron.WavelengthToMomentum(lambda)
}

// NeutronMomentumToWavelength converts a momentum [kg m/s] to a wavelength [m].
func NeutronMomentumToWavelength(p float64) float64 {
	return Neutron.MomentumToWavelength(p)
}

// NeutronEnergyToMomentum converts an energy [meV] to momentum [kg m/s].
func NeutronEnergyToMomentum(e float64) float64 {
	return Neutron.EnergyToMomentum(e)
}

// NeutronMomentumToEnergy converts a momentum [kg m/s] to energy [meV].
func NeutronMomentumToEnergy(p float64) float64 {
	return Neutron.MomentumToEnergy(p)
}

// NeutronVelocityToEnergy converts a velocity [m/s] to energy [meV].
func NeutronVelocityToEnergy(v float64) float64 {
	return Neutron.VelocityToEnergy(v)
}

// NeutronEnergyToVelocity converts an energy [meV] to velocity [m/s].
func NeutronEnergyToVelocity(e float64) float64 {
	return Neutron.EnergyToVelocity(e)
}
