package physics

import "fmt"

// Quantity names one of the four convertible kinematic quantities.
type Quantity int

const (
	QuantityWavelength Quantity = iota
	QuantityEnergy
	QuantityMomentum
	QuantityVelocity
)

func (q Quantity) String() string {
	switch q {
	case QuantityWavelength:
		return "wavelength"
	case QuantityEnergy:
		return "energy"
	case QuantityMomentum:
		return "momentum"
	case QuantityVelocity:
		return "velocity"
	default:
		return fmt.Sprintf("Quantity(%d)", int(q))
	}
}

// Unit returns the unit the quantity is expressed in.
func (q Quantity) Unit() string {
	switch q {
	case QuantityWavelength:
		return "m"
	case QuantityEnergy:
		return "meV"
	case QuantityMomentum:
		return "kg m/s"
	case QuantityVelocity:
		return "m/s"
	default:
		return ""
	}
}

// Quantities is a consistent kinematic state of one particle: the same
// motion expressed as wavelength, energy, momentum and velocity.
type Quantities struct {
	Wavelength float64
	Energy     float64
	Momentum   float64
	Velocity   float64
}

// Derive fills in all four quantities from a single known one, routing
// through energy for the pairs that have no direct formula.
func (sp Species) Derive(from Quantity, v float64) Quantities {
	var e float64
	switch from {
	case QuantityWavelength:
		e = sp.WavelengthToEnergy(v)
	case QuantityEnergy:
		e = v
	case QuantityMomentum:
		e = sp.MomentumToEnergy(v)
	case QuantityVelocity:
		e = sp.VelocityToEnergy(v)
	}
	q := Quantities{
		Wavelength: sp.EnergyToWavelength(e),
		Energy:     e,
		Momentum:   sp.EnergyToMomentum(e),
		Velocity:   sp.EnergyToVelocity(e),
	}
	// Keep the known quantity bit-exact rather than round-tripped.
	switch from {
	case QuantityWavelength:
		q.Wavelength = v
	case QuantityMomentum:
		q.Momentum = v
	case QuantityVelocity:
		q.Velocity = v
	}
	return q
}
