// Package physics provides the physical constants and closed-form unit
// conversions used throughout the toolkit.
//
// The conversions relate the wavelength, kinetic energy, momentum and
// velocity of a free particle:
//
//   - wavelength ↔ energy (E = h²/2mλ²)
//   - wavelength ↔ momentum (p = h/λ)
//   - energy ↔ momentum (p = √(2mE))
//   - velocity ↔ energy (E = ½mv²)
//
// Lengths are in meters, momenta in kg·m/s, velocities in m/s and energies
// in meV. Values carry no unit metadata at runtime; callers are responsible
// for feeding each function the unit it expects.
//
// Three API layers exist: [Species] methods (pure, no error path),
// string-species functions such as [WavelengthToEnergy] that resolve the
// species name and default to the neutron, and Series variants operating
// elementwise over slices. The Neutron* wrappers fix the species for call
// sites that never select one.
//
// Every function is a pure computation over its inputs. Division by zero
// and square roots of negative values follow IEEE-754 semantics (Inf, NaN)
// rather than returning errors.
package physics
