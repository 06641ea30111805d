// Package bkm evaluates deeply virtual Compton scattering cross sections in
// the BKM10 formalism (Belitsky, Kirchner, Müller 2010).
//
// # Reading Guide
//
// Start with these files to understand the evaluation pipeline:
//   - inputs.go, kinematics.go: kinematic validation and derived quantities (ε, y, ξ, t_min, K)
//   - formalism.go: Fourier coefficients for one spin state
//   - cross_section.go: the four spin-state formalisms and the observables built from them
//
// # Architecture
//
// Each squared amplitude lives in its own file:
//   - bh.go: Bethe–Heitler
//   - dvcs.go: DVCS, including the C^DVCS bilinear CFF combinations
//   - interference.go: BH/DVCS interference, including C^I and its vector and axial parts
//
// Coefficients are computed once per (λ, Λ) at construction. Only the lepton
// propagators P₁P₂ depend on the azimuthal angle, so evaluating a φ grid costs
// a few multiplications per point.
//
// Sub-packages build on DifferentialCrossSection:
//   - bkm/trace/: named coefficient records
//   - bkm/batch/: concurrent evaluation over many kinematic points
//   - bkm/fit/: local CFF fits to measured cross sections
//   - bkm/plot/: observable plots
//
// # Conventions
//
// Library angles are radians. With Config.TrentoConvention (the default) a
// user angle φ maps to the BMK angle π - φ before evaluation. Lepton helicity
// is one of -1, 0, +1 and target polarization one of -½, 0, +½; zero means
// averaged over that spin.
package bkm
