package bkm

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Sentinel errors for spin-state arguments.
var (
	ErrInvalidHelicity     = errors.New("lepton helicity must be -1, 0, or +1")
	ErrInvalidPolarization = errors.New("target polarization must be -0.5, 0, or +0.5")
)

// KinematicInputs are the four independent kinematic variables of the
// leptoproduction process. Energies are in GeV.
type KinematicInputs struct {
	QSquared   float64 `yaml:"q_squared"` // photon virtuality Q² (GeV², > 0)
	XBjorken   float64 `yaml:"x_bjorken"` // Bjorken x, in (0, 1)
	T          float64 `yaml:"t"`         // hadronic momentum transfer t (GeV², < 0)
	BeamEnergy float64 `yaml:"k"`         // lab-frame lepton beam energy k (GeV, > 0)
}

// Validate checks that every field is finite and inside its physical domain.
// Constraints that depend on derived quantities are checked by NewKinematics.
func (in KinematicInputs) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"q_squared", in.QSquared},
		{"x_bjorken", in.XBjorken},
		{"t", in.T},
		{"k", in.BeamEnergy},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("kinematics: %s must be a finite number, got %v", f.name, f.val)
		}
	}
	if in.QSquared <= 0 {
		return fmt.Errorf("kinematics: q_squared must be positive, got %v", in.QSquared)
	}
	if in.XBjorken <= 0 || in.XBjorken >= 1 {
		return fmt.Errorf("kinematics: x_bjorken must be in (0, 1), got %v", in.XBjorken)
	}
	if in.T >= 0 {
		return fmt.Errorf("kinematics: t must be negative, got %v", in.T)
	}
	if in.BeamEnergy <= 0 {
		return fmt.Errorf("kinematics: k must be positive, got %v", in.BeamEnergy)
	}
	return nil
}

// CFFInputs holds the four twist-two Compton form factors.
type CFFInputs struct {
	H      complex128
	HTilde complex128
	E      complex128
	ETilde complex128
}

// Scale multiplies every CFF by f.
func (c CFFInputs) Scale(f float64) CFFInputs {
	s := complex(f, 0)
	return CFFInputs{H: s * c.H, HTilde: s * c.HTilde, E: s * c.E, ETilde: s * c.ETilde}
}

// Effective returns the effective twist-three CFFs. With the
// Wandzura–Wilczek relations the twist-three parts are expressed through
// the twist-two CFFs as 2F/(1+ξ); without them only the kinematic
// -2ξF/(1+ξ) piece survives.
func (c CFFInputs) Effective(xi float64, usingWW bool) CFFInputs {
	if usingWW {
		return c.Scale(2 / (1 + xi))
	}
	return c.Scale(-2 * xi / (1 + xi))
}

// Validate rejects CFFs with NaN or infinite components.
func (c CFFInputs) Validate() error {
	named := []struct {
		name string
		val  complex128
	}{
		{"h", c.H},
		{"h_tilde", c.HTilde},
		{"e", c.E},
		{"e_tilde", c.ETilde},
	}
	for _, n := range named {
		if cmplx.IsNaN(n.val) || cmplx.IsInf(n.val) {
			return fmt.Errorf("cffs: %s must be finite, got %v", n.name, n.val)
		}
	}
	return nil
}

// ValidateHelicity reports whether lambda is a supported lepton helicity.
func ValidateHelicity(lambda float64) error {
	switch lambda {
	case -1, 0, 1:
		return nil
	}
	return fmt.Errorf("%w, got %v", ErrInvalidHelicity, lambda)
}

// ValidatePolarization reports whether bigLambda is a supported target polarization.
func ValidatePolarization(bigLambda float64) error {
	switch bigLambda {
	case -0.5, 0, 0.5:
		return nil
	}
	return fmt.Errorf("%w, got %v", ErrInvalidPolarization, bigLambda)
}
