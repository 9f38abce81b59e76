package viz

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/nconv/internal/physics"
)

// ConversionTable renders the four kinematic quantities implied by one
// known value.
func ConversionTable(sp physics.Species, from physics.Quantity, v float64) string {
	q := sp.Derive(from, v)

	var b strings.Builder
	b.WriteString(title.Render(fmt.Sprintf("%s, %s = %g %s", sp, from, v, from.Unit())))
	b.WriteString("\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	rows := []struct {
		q   physics.Quantity
		val float64
	}{
		{physics.QuantityWavelength, q.Wavelength},
		{physics.QuantityEnergy, q.Energy},
		{physics.QuantityMomentum, q.Momentum},
		{physics.QuantityVelocity, q.Velocity},
	}
	for _, r := range rows {
		marker := " "
		if r.q == from {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\n",
			marker,
			label.Render(r.q.String()),
			value.Render(fmt.Sprintf("%.6g", r.val)),
			unit.Render(r.q.Unit()),
		)
	}
	w.Flush()
	return b.String()
}

// SpeciesTable lists the supported species, their aliases and masses.
func SpeciesTable() string {
	var b strings.Builder
	b.WriteString(title.Render("species") + "\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", label.Render("NAME"), label.Render("MASS [kg]"), label.Render("ALIASES"))
	rows := []struct {
		sp      physics.Species
		aliases string
	}{
		{physics.Neutron, "n, neutron"},
		{physics.He3, "he3, helium3, 3he, 3helium"},
		{physics.He4, "he4, helium4, 4he, 4helium"},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			value.Render(r.sp.String()),
			value.Render(fmt.Sprintf("%.7e", r.sp.Mass())),
			unit.Render(r.aliases),
		)
	}
	w.Flush()
	b.WriteString(warn.Render(`bare "he"/"helium" resolves to He-4 with a warning`) + "\n")
	return b.String()
}

// ConstantsTable lists the physical constants the conversions draw on.
func ConstantsTable() string {
	var b strings.Builder
	b.WriteString(title.Render("constants") + "\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	rows := []struct {
		name string
		val  float64
		unit string
	}{
		{"h (Planck)", physics.H, "J s"},
		{"hbar", physics.Hbar, "J s"},
		{"c (speed of light)", physics.C, "m/s"},
		{"kB (Boltzmann)", physics.KB, "J/K"},
		{"NA (legacy table value)", physics.NA, "1/mol"},
		{"mu (atomic mass unit)", physics.Mu, "kg"},
		{"d002 (graphite)", physics.D002, "m"},
		{"m_n (neutron)", physics.MassNeutron, "kg"},
		{"m_He3", physics.MassHe3, "kg"},
		{"m_He4", physics.MassHe4, "kg"},
		{"meV to J", physics.MeVToJoule, "J/meV"},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			label.Render(r.name),
			value.Render(fmt.Sprintf("%.9e", r.val)),
			unit.Render(r.unit),
		)
	}
	w.Flush()
	return b.String()
}
