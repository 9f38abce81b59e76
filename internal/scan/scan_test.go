package scan

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/nconv/internal/physics"
)

func TestGrid(t *testing.T) {
	g := NewWithT(t)

	grid := Grid(1e-10, 10e-10, 10)
	g.Expect(grid).To(HaveLen(10))
	g.Expect(grid[0]).To(Equal(1e-10))
	g.Expect(grid[9]).To(Equal(10e-10))
	g.Expect(grid[1]).To(BeNumerically("~", 2e-10, 1e-20))
}

func TestLookupUnknown(t *testing.T) {
	g := NewWithT(t)

	_, err := Lookup("energy-frequency")
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("energy-frequency"))
	g.Expect(err.Error()).To(ContainSubstring("wavelength-energy"))
}

func TestNamesCoverAllPairs(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Names()).To(ConsistOf(
		"wavelength-energy", "energy-wavelength",
		"wavelength-momentum", "momentum-wavelength",
		"energy-momentum", "momentum-energy",
		"velocity-energy", "energy-velocity",
	))
}

func TestRunMatchesScalarConversions(t *testing.T) {
	g := NewWithT(t)

	grid := Grid(1e-10, 5e-10, 16)
	res, err := Run("wavelength-energy", "he3", grid)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(res.Species).To(Equal("He-3"))
	g.Expect(res.InputUnit).To(Equal("m"))
	g.Expect(res.OutputUnit).To(Equal("meV"))
	g.Expect(res.Outputs).To(HaveLen(len(grid)))
	for i, lambda := range grid {
		g.Expect(res.Outputs[i]).To(Equal(physics.He3.WavelengthToEnergy(lambda)))
	}
}

func TestRunDefaultsToNeutron(t *testing.T) {
	g := NewWithT(t)

	res, err := Run("energy-velocity", "", Grid(1, 100, 8))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(res.Species).To(Equal("neutron"))
	g.Expect(res.Outputs[0]).To(Equal(physics.NeutronEnergyToVelocity(1)))
}

func TestRunUnknownSpecies(t *testing.T) {
	g := NewWithT(t)

	_, err := Run("energy-momentum", "xenon", Grid(1, 10, 4))
	g.Expect(err).To(MatchError(physics.ErrUnknownSpecies))
}
