// Package mass provides isotope masses and reduced-mass arithmetic for
// diatomic systems.
package mass

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownIsotope is returned for isotope labels not in the table.
var ErrUnknownIsotope = errors.New("mass: unknown isotope")

// isotopes maps mass-number-prefixed element symbols to atomic masses
// in unified atomic mass units.
var isotopes = map[string]float64{
	"1H":   1.00782503,
	"2H":   2.01410178,
	"3He":  3.01602932,
	"4He":  4.00260325,
	"6Li":  6.01512289,
	"7Li":  7.01600344,
	"9Be":  9.01218307,
	"10B":  10.01293695,
	"11B":  11.00930536,
	"12C":  12.0,
	"13C":  13.00335484,
	"14N":  14.00307400,
	"15N":  15.00010890,
	"16O":  15.99491462,
	"18O":  17.99915961,
	"19F":  18.99840316,
	"23Na": 22.98976928,
	"24Mg": 23.98504170,
	"27Al": 26.98153853,
	"28Si": 27.97692653,
	"31P":  30.97376200,
	"32S":  31.97207117,
	"35Cl": 34.96885268,
	"37Cl": 36.96590260,
	"39K":  38.96370649,
	"40Ca": 39.96259086,
	"79Br": 78.91833760,
	"81Br": 80.91628970,
	"127I": 126.90447190,
}

// Of returns the atomic mass of an isotope label such as "1H" or
// "35Cl", in unified atomic mass units.
func Of(label string) (float64, error) {
	m, ok := isotopes[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownIsotope, label)
	}

	return m, nil
}

// Reduced returns the reduced mass m1*m2/(m1+m2).
func Reduced(m1, m2 float64) float64 {
	return m1 * m2 / (m1 + m2)
}

// ReducedOf returns the reduced mass of a diatomic built from two
// isotope labels, in unified atomic mass units.
func ReducedOf(a, b string) (float64, error) {
	ma, err := Of(a)
	if err != nil {
		return 0, err
	}

	mb, err := Of(b)
	if err != nil {
		return 0, err
	}

	return Reduced(ma, mb), nil
}

// Isotopes returns the known isotope labels in sorted order.
func Isotopes() []string {
	out := make([]string, 0, len(isotopes))
	for label := range isotopes {
		out = append(out, label)
	}

	sort.Strings(out)

	return out
}
