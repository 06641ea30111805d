package bkm

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/bkm10/bkm10/bkm/trace"
)

// spinSums holds the modal sums for the four pure spin states at one angle.
type spinSums struct {
	plusPlus, minusPlus, plusMinus, minusMinus float64 // (λ, Λ) = (+,+), (-,+), (+,-), (-,-)
}

// DifferentialCrossSection evaluates the four-fold differential cross
// section d⁴σ/(dQ² dx_B dt dφ) and the spin asymmetries built from it.
// It is immutable after construction and safe for concurrent use.
type DifferentialCrossSection struct {
	cfg Config
	kin Kinematics

	plusPlus   *Formalism
	minusPlus  *Formalism
	plusMinus  *Formalism
	minusMinus *Formalism
}

// NewDifferentialCrossSection validates cfg and builds the formalisms for
// the four pure spin states (λ = ±1, Λ = ±½). Mixed or unpolarized
// observables are averages over these.
func NewDifferentialCrossSection(cfg Config) (*DifferentialCrossSection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cross section: %w", err)
	}
	kin, err := NewKinematics(cfg.Kinematics)
	if err != nil {
		return nil, fmt.Errorf("cross section: %w", err)
	}

	build := func(lambda, bigLambda float64) (*Formalism, error) {
		return NewFormalism(kin, cfg.CFFs, cfg.UsingWW, cfg.Contributions, lambda, bigLambda)
	}
	d := &DifferentialCrossSection{cfg: cfg, kin: kin}
	for _, s := range []struct {
		dst               **Formalism
		lambda, bigLambda float64
	}{
		{&d.plusPlus, 1, 0.5},
		{&d.minusPlus, -1, 0.5},
		{&d.plusMinus, 1, -0.5},
		{&d.minusMinus, -1, -0.5},
	} {
		f, err := build(s.lambda, s.bigLambda)
		if err != nil {
			return nil, fmt.Errorf("cross section: %w", err)
		}
		*s.dst = f
	}

	logrus.Debugf("bkm10: built formalisms for Q²=%v x_B=%v t=%v k=%v (ε=%.6g y=%.6g ξ=%.6g t_min=%.6g, WW=%v, contributions=%+v)",
		kin.QSquared, kin.XBjorken, kin.T, kin.BeamEnergy, kin.Epsilon, kin.Y, kin.Xi, kin.TMin, cfg.UsingWW, cfg.Contributions)
	return d, nil
}

// Config returns the configuration the cross section was built from.
func (d *DifferentialCrossSection) Config() Config { return d.cfg }

// Kinematics returns the derived kinematics.
func (d *DifferentialCrossSection) Kinematics() Kinematics { return d.kin }

// FormFactors returns the elastic form factors at the configured t.
func (d *DifferentialCrossSection) FormFactors() FormFactors { return d.plusPlus.FormFactors() }

// Prefactor returns the kinematic prefactor shared by every spin state.
func (d *DifferentialCrossSection) Prefactor() float64 { return d.kin.Prefactor() }

// bmkAngle maps a user angle to the BMK convention.
func (d *DifferentialCrossSection) bmkAngle(phi float64) float64 {
	if d.cfg.TrentoConvention {
		return math.Pi - phi
	}
	return phi
}

func (d *DifferentialCrossSection) sums(phi float64) spinSums {
	p := d.bmkAngle(phi)
	return spinSums{
		plusPlus:   d.plusPlus.ModalSum(p),
		minusPlus:  d.minusPlus.ModalSum(p),
		plusMinus:  d.plusMinus.ModalSum(p),
		minusMinus: d.minusMinus.ModalSum(p),
	}
}

// combine averages the pure-state values over the spin states left open
// by lambda = 0 or bigLambda = 0. Arguments are assumed valid.
func (s spinSums) combine(lambda, bigLambda float64) float64 {
	var total, n float64
	for _, st := range []struct {
		lambda, bigLambda, val float64
	}{
		{1, 0.5, s.plusPlus},
		{-1, 0.5, s.minusPlus},
		{1, -0.5, s.plusMinus},
		{-1, -0.5, s.minusMinus},
	} {
		if (lambda == 0 || lambda == st.lambda) && (bigLambda == 0 || bigLambda == st.bigLambda) {
			total += st.val
			n++
		}
	}
	return total / n
}

func validateSpins(lambda, bigLambda float64) error {
	if err := ValidateHelicity(lambda); err != nil {
		return err
	}
	return ValidatePolarization(bigLambda)
}

// CrossSection evaluates d⁴σ in nb/GeV⁴ at each angle in phis (radians)
// for lepton helicity lambda and target polarization bigLambda. A zero
// helicity or polarization averages over the corresponding spin states.
func (d *DifferentialCrossSection) CrossSection(phis []float64, lambda, bigLambda float64) ([]float64, error) {
	if err := validateSpins(lambda, bigLambda); err != nil {
		return nil, fmt.Errorf("cross section: %w", err)
	}
	logrus.Debugf("bkm10: evaluating cross section at %d phi points (λ=%v, Λ=%v)", len(phis), lambda, bigLambda)

	norm := GeVToNanobarn * d.kin.Prefactor()
	out := make([]float64, len(phis))
	for i, phi := range phis {
		out[i] = norm * d.sums(phi).combine(lambda, bigLambda)
	}
	return out, nil
}

// BSA evaluates the beam-spin asymmetry (σ₊ - σ₋)/(σ₊ + σ₋) at fixed
// target polarization bigLambda.
func (d *DifferentialCrossSection) BSA(phis []float64, bigLambda float64) ([]float64, error) {
	if err := ValidatePolarization(bigLambda); err != nil {
		return nil, fmt.Errorf("beam-spin asymmetry: %w", err)
	}
	logrus.Debugf("bkm10: evaluating BSA at %d phi points (Λ=%v)", len(phis), bigLambda)

	out := make([]float64, len(phis))
	for i, phi := range phis {
		s := d.sums(phi)
		plus, minus := s.combine(1, bigLambda), s.combine(-1, bigLambda)
		out[i] = (plus - minus) / (plus + minus)
	}
	return out, nil
}

// TSA evaluates the longitudinal target-spin asymmetry at fixed lepton
// helicity lambda.
func (d *DifferentialCrossSection) TSA(phis []float64, lambda float64) ([]float64, error) {
	if err := ValidateHelicity(lambda); err != nil {
		return nil, fmt.Errorf("target-spin asymmetry: %w", err)
	}
	logrus.Debugf("bkm10: evaluating TSA at %d phi points (λ=%v)", len(phis), lambda)

	out := make([]float64, len(phis))
	for i, phi := range phis {
		s := d.sums(phi)
		plus, minus := s.combine(lambda, 0.5), s.combine(lambda, -0.5)
		out[i] = (plus - minus) / (plus + minus)
	}
	return out, nil
}

// DSA evaluates the double-spin asymmetry
// [(σ₊₊ - σ₊₋) - (σ₋₊ - σ₋₋)] / (σ₊₊ + σ₊₋ + σ₋₊ + σ₋₋).
func (d *DifferentialCrossSection) DSA(phis []float64) ([]float64, error) {
	logrus.Debugf("bkm10: evaluating DSA at %d phi points", len(phis))

	out := make([]float64, len(phis))
	for i, phi := range phis {
		s := d.sums(phi)
		num := (s.plusPlus - s.plusMinus) - (s.minusPlus - s.minusMinus)
		den := s.plusPlus + s.plusMinus + s.minusPlus + s.minusMinus
		out[i] = num / den
	}
	return out, nil
}

// Coefficients records every normalised Fourier coefficient at angle phi
// (user convention, radians) for the given spin state. Open spin states
// are averaged the same way CrossSection averages them.
func (d *DifferentialCrossSection) Coefficients(phi, lambda, bigLambda float64) (*trace.CoefficientTrace, error) {
	if err := validateSpins(lambda, bigLambda); err != nil {
		return nil, fmt.Errorf("coefficients: %w", err)
	}
	p := d.bmkAngle(phi)

	var bh, dvcs, intf Harmonics
	var n float64
	for _, f := range []*Formalism{d.plusPlus, d.minusPlus, d.plusMinus, d.minusMinus} {
		if (lambda != 0 && lambda != f.lambda) || (bigLambda != 0 && bigLambda != f.bigLambda) {
			continue
		}
		b, dv, in := f.Parts(p)
		bh, dvcs, intf = bh.add(b), dvcs.add(dv), intf.add(in)
		n++
	}
	bh, dvcs, intf = bh.Scale(1/n), dvcs.Scale(1/n), intf.Scale(1/n)
	total := bh.add(dvcs).add(intf)

	ct := trace.NewCoefficientTrace()
	record := func(family trace.Family, h Harmonics) {
		for i := 0; i < 4; i++ {
			ct.Record(trace.CoefficientRecord{
				Family: family, Name: fmt.Sprintf("c%d", i),
				Helicity: lambda, Polarization: bigLambda, Phi: phi, PhiBMK: p, Value: h.Cos[i],
			})
		}
		for i := 1; i < 4; i++ {
			ct.Record(trace.CoefficientRecord{
				Family: family, Name: fmt.Sprintf("s%d", i),
				Helicity: lambda, Polarization: bigLambda, Phi: phi, PhiBMK: p, Value: h.Sin[i],
			})
		}
	}
	record(trace.FamilyBH, bh)
	record(trace.FamilyDVCS, dvcs)
	record(trace.FamilyInterference, intf)
	record(trace.FamilyTotal, total)

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		for _, r := range ct.Records {
			logrus.Tracef("bkm10: %s = %.12g (λ=%v, Λ=%v, φ_BMK=%.6g)", r.Key(), r.Value, lambda, bigLambda, p)
		}
	}
	return ct, nil
}
