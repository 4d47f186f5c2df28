// Package unit provides the length units and physical conversion
// constants shared by the curve-fitting and spectroscopic analysis
// packages.
//
// All fitting and analysis is carried out in Hartree atomic units
// (energies in Hartree, separations in Bohr); results are reported in
// conventional spectroscopic units via the constants below.
package unit

// Conversion constants between atomic units and conventional
// spectroscopic units.
const (
	// BohrPerAngstrom converts a separation in Angstrom to Bohr.
	BohrPerAngstrom = 1.8897259886

	// AngstromPerBohr is the exact reciprocal of BohrPerAngstrom, so
	// Angstrom -> Bohr -> Angstrom round-trips are stable.
	AngstromPerBohr = 1.0 / BohrPerAngstrom

	// InvCmPerHartree converts an energy in Hartree to wavenumbers (cm⁻¹).
	InvCmPerHartree = 219474.63067

	// EVPerHartree converts an energy in Hartree to electron volts.
	EVPerHartree = 27.2113839

	// ElectronMassPerAMU converts a mass in unified atomic mass units to
	// electron masses (the mass unit of Hartree atomic units).
	ElectronMassPerAMU = 1822.88853

	// BoltzmannInvCm is the Boltzmann constant expressed in cm⁻¹ per
	// kelvin (k_B / hc), used for thermal line populations.
	BoltzmannInvCm = 0.6950348
)

// Length identifies the unit of a separation axis.
type Length int

const (
	// Bohr is the atomic unit of length. All fits are evaluated in Bohr.
	Bohr Length = iota

	// Angstrom marks input separations that need conversion to Bohr.
	Angstrom
)

// String returns the conventional name of the unit.
func (l Length) String() string {
	switch l {
	case Bohr:
		return "Bohr"
	case Angstrom:
		return "Angstrom"
	default:
		return "Length(?)"
	}
}

// InBohr converts a single separation value from l to Bohr.
func (l Length) InBohr(v float64) float64 {
	if l == Angstrom {
		return v * BohrPerAngstrom
	}

	return v
}

// ToBohr converts a separation axis from the given unit to Bohr.
// It always returns a new slice; the input is never modified.
func ToBohr(values []float64, from Length) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = from.InBohr(v)
	}

	return out
}
