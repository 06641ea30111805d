package bkm

import (
	"fmt"
	"math"
)

// Kinematics is a validated kinematic point together with every derived
// quantity the coefficient functions need. Construct it with NewKinematics.
type Kinematics struct {
	KinematicInputs

	Epsilon float64 // ε = 2 x_B M / Q
	Y       float64 // lepton energy fraction y
	Xi      float64 // skewness ξ
	TMin    float64 // kinematic boundary t_min
	TPrime  float64 // t' = t - t_min
	KTilde  float64 // K̃
	K       float64 // kinematic factor K

	epsSq   float64 // ε²
	root    float64 // √(1+ε²)
	tQ      float64 // t/Q²
	yFactor float64 // 1 - y - ε²y²/4
}

// NewKinematics validates in and computes the derived quantities.
// It fails when the point lies outside the physical region: y must be in
// (0, 1) and t must not exceed t_min.
func NewKinematics(in KinematicInputs) (Kinematics, error) {
	if err := in.Validate(); err != nil {
		return Kinematics{}, err
	}

	q2, x, t := in.QSquared, in.XBjorken, in.T
	k := Kinematics{KinematicInputs: in}

	k.Epsilon = 2 * x * ProtonMass / math.Sqrt(q2)
	k.epsSq = k.Epsilon * k.Epsilon
	k.root = math.Sqrt(1 + k.epsSq)
	k.tQ = t / q2

	k.Y = math.Sqrt(q2) / (k.Epsilon * in.BeamEnergy)
	if k.Y <= 0 || k.Y >= 1 {
		return Kinematics{}, fmt.Errorf("kinematics: lepton energy fraction y=%v outside (0, 1); beam energy k=%v is too low", k.Y, in.BeamEnergy)
	}
	k.yFactor = 1 - k.Y - k.epsSq*k.Y*k.Y/4
	if k.yFactor <= 0 {
		return Kinematics{}, fmt.Errorf("kinematics: 1 - y - ε²y²/4 = %v must be positive", k.yFactor)
	}

	k.Xi = x * (1 + t/(2*q2)) / (2 - x + x*t/q2)

	k.TMin = -q2 * (2*(1-x)*(1-k.root) + k.epsSq) / (4*x*(1-x) + k.epsSq)
	if t > k.TMin {
		return Kinematics{}, fmt.Errorf("kinematics: t=%v is above the kinematic limit t_min=%v", t, k.TMin)
	}
	k.TPrime = t - k.TMin

	dt := k.TMin - t
	k.KTilde = math.Sqrt(dt * ((1-x)*k.root + dt*(k.epsSq+4*x*(1-x))/(4*q2)))
	// K carries +ε²y²/4 under the root, unlike yFactor.
	k.K = math.Sqrt((1-k.Y+k.epsSq*k.Y*k.Y/4)/q2) * k.KTilde

	return k, nil
}

// KDotDelta returns the lepton-momentum/momentum-transfer product k·Δ at
// azimuthal angle phi (BMK convention, radians).
func (k Kinematics) KDotDelta(phi float64) float64 {
	q2, x, y := k.QSquared, k.XBjorken, k.Y
	return -q2 / (2 * y * (1 + k.epsSq)) *
		(1 + 2*k.K*math.Cos(phi) - k.tQ*(1-x*(2-y)+y*k.epsSq/2) + y*k.epsSq/2)
}

// LeptonPropagators returns the Bethe–Heitler propagators P₁ and P₂ at phi.
func (k Kinematics) LeptonPropagators(phi float64) (p1, p2 float64) {
	kd := k.KDotDelta(phi)
	p1 = 1 + 2*kd/k.QSquared
	p2 = -2*kd/k.QSquared + k.tQ
	return p1, p2
}

// Prefactor is the overall kinematic factor α³ x_B y² / (8π Q⁴ √(1+ε²))
// multiplying every squared amplitude.
func (k Kinematics) Prefactor() float64 {
	q2 := k.QSquared
	return math.Pow(FineStructure, 3) * k.XBjorken * k.Y * k.Y /
		(8 * math.Pi * q2 * q2 * k.root)
}
