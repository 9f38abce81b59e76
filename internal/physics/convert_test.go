package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThermalNeutronReferencePoint(t *testing.T) {
	// 1.8 Å thermal neutrons sit at about 25.27 meV.
	e := NeutronWavelengthToEnergy(1.8e-10)
	assert.InEpsilon(t, 25.27, e, 0.005)
}

func TestWavelengthEnergyRoundTrip(t *testing.T) {
	for _, sp := range []Species{Neutron, He3, He4} {
		for _, e := range []float64{0.1, 1.0, 25.27, 500.0} {
			lambda := sp.EnergyToWavelength(e)
			back := sp.WavelengthToEnergy(lambda)
			assert.InEpsilonf(t, e, back, 1e-9, "species %v energy %v", sp, e)
		}
	}
}

func TestWavelengthMomentumRoundTripExact(t *testing.T) {
	// p = h/λ and λ = h/p are mutual reciprocals through the same
	// constant, so the round trip is exact in floating point.
	for _, lambda := range []float64{1e-10, 1.8e-10, 5e-10} {
		p := Neutron.WavelengthToMomentum(lambda)
		assert.Equal(t, lambda, Neutron.MomentumToWavelength(p))
	}
}

func TestEnergyMomentumRoundTrip(t *testing.T) {
	for _, sp := range []Species{Neutron, He3, He4} {
		for _, e := range []float64{0.5, 25.27, 100.0} {
			p := sp.EnergyToMomentum(e)
			assert.InEpsilon(t, e, sp.MomentumToEnergy(p), 1e-9)
		}
	}
}

func TestVelocityEnergyRoundTrip(t *testing.T) {
	for _, v := range []float64{100.0, 2200.0, 1e4} {
		e := Neutron.VelocityToEnergy(v)
		assert.InEpsilon(t, v, Neutron.EnergyToVelocity(e), 1e-9)
	}
	// 2200 m/s is the conventional thermal reference velocity, ~25 meV.
	assert.InEpsilon(t, 25.3, Neutron.VelocityToEnergy(2200), 0.01)
}

func TestSpeciesMassOrdering(t *testing.T) {
	// Heavier particle, shorter wavelength at equal energy.
	lamN := Neutron.EnergyToWavelength(25.0)
	lam3 := He3.EnergyToWavelength(25.0)
	lam4 := He4.EnergyToWavelength(25.0)
	assert.Greater(t, lamN, lam3)
	assert.Greater(t, lam3, lam4)
}

func TestStringSpeciesFunctions(t *testing.T) {
	got, err := WavelengthToEnergy(1.8e-10, "he3")
	require.NoError(t, err)
	assert.Equal(t, He3.WavelengthToEnergy(1.8e-10), got)

	// Empty species defaults to the neutron.
	got, err = WavelengthToEnergy(1.8e-10, "")
	require.NoError(t, err)
	assert.Equal(t, Neutron.WavelengthToEnergy(1.8e-10), got)
}

func TestStringSpeciesErrorPropagates(t *testing.T) {
	type conv func(float64, string) (float64, error)
	for name, fn := range map[string]conv{
		"WavelengthToEnergy":   WavelengthToEnergy,
		"EnergyToWavelength":   EnergyToWavelength,
		"WavelengthToMomentum": WavelengthToMomentum,
		"MomentumToWavelength": MomentumToWavelength,
		"EnergyToMomentum":     EnergyToMomentum,
		"MomentumToEnergy":     MomentumToEnergy,
		"VelocityToEnergy":     VelocityToEnergy,
		"EnergyToVelocity":     EnergyToVelocity,
	} {
		_, err := fn(1.0, "muon")
		assert.ErrorIsf(t, err, ErrUnknownSpecies, "%s should reject unknown species", name)
	}
}

func TestNeutronWrappersMatchGeneric(t *testing.T) {
	type pair struct {
		fixed   func(float64) float64
		generic func(float64, string) (float64, error)
		in      float64
	}
	pairs := map[string]pair{
		"WavelengthToEnergy":   {NeutronWavelengthToEnergy, WavelengthToEnergy, 1.8e-10},
		"EnergyToWavelength":   {NeutronEnergyToWavelength, EnergyToWavelength, 25.27},
		"WavelengthToMomentum": {NeutronWavelengthToMomentum, WavelengthToMomentum, 1.8e-10},
		"MomentumToWavelength": {NeutronMomentumToWavelength, MomentumToWavelength, 3.6e-24},
		"EnergyToMomentum":     {NeutronEnergyToMomentum, EnergyToMomentum, 25.27},
		"MomentumToEnergy":     {NeutronMomentumToEnergy, MomentumToEnergy, 3.6e-24},
		"VelocityToEnergy":     {NeutronVelocityToEnergy, VelocityToEnergy, 2200.0},
		"EnergyToVelocity":     {NeutronEnergyToVelocity, EnergyToVelocity, 25.27},
	}
	for name, p := range pairs {
		want, err := p.generic(p.in, "n")
		require.NoErrorf(t, err, "%s generic call", name)
		assert.Equalf(t, want, p.fixed(p.in), "%s wrapper", name)
	}
}

func TestZeroAndNegativeInputsFollowIEEE(t *testing.T) {
	// Zero wavelength and momentum divide by zero; negative energy takes
	// a negative square root. Neither raises: callers get Inf or NaN.
	assert.True(t, math.IsInf(Neutron.WavelengthToEnergy(0), 1))
	assert.True(t, math.IsInf(Neutron.WavelengthToMomentum(0), 1))
	assert.True(t, math.IsInf(Neutron.MomentumToWavelength(0), 1))
	assert.True(t, math.IsNaN(Neutron.EnergyToWavelength(-1)))
	assert.True(t, math.IsNaN(Neutron.EnergyToMomentum(-1)))
	assert.True(t, math.IsNaN(Neutron.EnergyToVelocity(-1)))
	assert.Equal(t, 0.0, Neutron.VelocityToEnergy(0))
	assert.Equal(t, 0.0, Neutron.MomentumToEnergy(0))
}

func TestSeriesShapeAndValues(t *testing.T) {
	lambdas := []float64{1e-10, 1.8e-10, 2.5e-10, 4e-10, 9e-10}
	out, err := WavelengthToEnergySeries(lambdas, "n")
	require.NoError(t, err)
	require.Len(t, out, len(lambdas))
	for i, lambda := range lambdas {
		assert.Equalf(t, Neutron.WavelengthToEnergy(lambda), out[i], "element %d", i)
	}

	empty, err := EnergyToVelocitySeries(nil, "he4")
	require.NoError(t, err)
	assert.Len(t, empty, 0)
}

func TestSeriesErrorPropagates(t *testing.T) {
	_, err := MomentumToEnergySeries([]float64{1e-24}, "xenon")
	assert.ErrorIs(t, err, ErrUnknownSpecies)
}

func TestConstants(t *testing.T) {
	assert.Equal(t, 6.62607015e-34, H)
	assert.InEpsilon(t, H/(2*math.Pi), Hbar, 1e-15)
	assert.Equal(t, 4.002602*Mu, MassHe4)
	assert.Equal(t, 3.0160293*Mu, MassHe3)
	// The legacy table's Avogadro entry keeps its (wrong) exponent.
	assert.Equal(t, 6.02214076e-23, NA)
}
