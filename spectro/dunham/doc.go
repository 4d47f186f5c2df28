// Package dunham derives spectroscopic constants of diatomic molecules
// from fitted potential-energy curves by Dunham's method.
//
// The analysis expands the fitted potential V(r) in a Taylor series
// about its minimum r_e,
//
//	V(r_e + x) = Σ_i  pt_i · xⁱ,   pt_i = V⁽ⁱ⁾(r_e)/i!,
//
// and maps the leading coefficients onto the constants of the standard
// vibrating-rotor term expression
//
//	E(v, J) = ωe(v+½) − ωexe(v+½)² + ωeye(v+½)³
//	        + [Be − αe(v+½)] J(J+1) − De [J(J+1)]²
//
// using the first-order Dunham relations. With the reduced mass μ in
// electron masses and r_e in Bohr:
//
//	Be = 1/(2 μ r_e²)                ωe = √(2 pt₂ / μ)
//	a_i = (pt_{i+2}/pt₂) · r_eⁱ
//	αe  = −6 Be² (1 + a₁)/ωe
//	ωexe = −(3/2)(a₂ − (5/4) a₁²) Be
//	ωeye = ½ (10 a₄ − 35 a₁a₃ − 8.5 a₂² + 56.125 a₂a₁² − 22.03125 a₁⁴) Be²/ωe
//	De  = 4 Be³/ωe²
//
// all evaluated in Hartree atomic units and converted to cm⁻¹ on
// output. De here is the centrifugal distortion constant, not a
// dissociation energy; dissociation energies are reported separately
// (in eV) when a dissociation limit is supplied.
//
// The sign conventions follow the term expression above: for a typical
// bound state ωexe comes out positive because a₂ and a₁² enter with the
// anharmonicity of the well.
//
// # Order requirements
//
// Each constant needs a minimum fit order to be meaningful: αe uses the
// cubic Taylor term and needs order ≥ 3; ωexe and ωeye use the quartic
// term and the standard second-order contact transformation, and need
// order ≥ 6. Below these orders the constants are omitted rather than
// reported as zero, and the omission is recorded on the Result.
//
// # Usage
//
//	res, err := fit.Column(tbl, 0, 6)
//	out, err := dunham.Analyze(res, dunham.Config{Mu: 0.97959})
//	fmt.Println(out.We, out.WeXe, out.Be)
//
// Batch analysis over all columns of a table, with per-column error
// reporting, goes through AnalyzeTable.
package dunham
