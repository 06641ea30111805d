package batch

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bkm10/bkm10/bkm"
)

// Sample is one kinematic point, its CFFs and the angle to evaluate at.
type Sample struct {
	Kinematics bkm.KinematicInputs
	CFFs       bkm.CFFInputs
	Phi        float64 // radians
}

// Interval is a closed range [Min, Max] for uniform sampling.
type Interval struct {
	Min, Max float64
}

func (iv Interval) draw(rng *rand.Rand) float64 {
	return iv.Min + rng.Float64()*(iv.Max-iv.Min)
}

// Ranges bound the synthetic samples produced by Generate.
type Ranges struct {
	QSquared   Interval
	XBjorken   Interval
	T          Interval
	BeamEnergy Interval
	PhiDegrees Interval
	CFF        Interval // every real and imaginary CFF component
}

// DefaultRanges covers typical fixed-target DVCS kinematics. Not every
// point inside them is physical; Evaluate skips those that are not.
func DefaultRanges() Ranges {
	return Ranges{
		QSquared:   Interval{1, 4},
		XBjorken:   Interval{0.1, 0.5},
		T:          Interval{-1, -0.1},
		BeamEnergy: Interval{4, 6},
		PhiDegrees: Interval{0, 360},
		CFF:        Interval{-3, 3},
	}
}

// Validate checks that every interval is finite and ordered.
func (r Ranges) Validate() error {
	for _, f := range []struct {
		name string
		iv   Interval
	}{
		{"q_squared", r.QSquared},
		{"x_bjorken", r.XBjorken},
		{"t", r.T},
		{"k", r.BeamEnergy},
		{"phi", r.PhiDegrees},
		{"cff", r.CFF},
	} {
		if math.IsNaN(f.iv.Min) || math.IsNaN(f.iv.Max) || math.IsInf(f.iv.Min, 0) || math.IsInf(f.iv.Max, 0) {
			return fmt.Errorf("ranges: %s bounds must be finite, got [%v, %v]", f.name, f.iv.Min, f.iv.Max)
		}
		if f.iv.Min > f.iv.Max {
			return fmt.Errorf("ranges: %s min %v exceeds max %v", f.name, f.iv.Min, f.iv.Max)
		}
	}
	return nil
}

// Generate draws n reproducible samples uniformly from r. The same seed
// and ranges always give the same samples.
func Generate(seed int64, n int, r Ranges) ([]Sample, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate: sample count must be non-negative, got %d", n)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	rng := NewPartitionedRNG(seed)
	kinRNG := rng.ForSubsystem(SubsystemKinematics)
	cffRNG := rng.ForSubsystem(SubsystemCFFs)
	phiRNG := rng.ForSubsystem(SubsystemPhi)

	cff := func() complex128 {
		re := r.CFF.draw(cffRNG)
		return complex(re, r.CFF.draw(cffRNG))
	}

	samples := make([]Sample, n)
	for i := range samples {
		s := &samples[i]
		s.Kinematics = bkm.KinematicInputs{
			QSquared:   r.QSquared.draw(kinRNG),
			XBjorken:   r.XBjorken.draw(kinRNG),
			T:          r.T.draw(kinRNG),
			BeamEnergy: r.BeamEnergy.draw(kinRNG),
		}
		s.CFFs = bkm.CFFInputs{H: cff(), HTilde: cff(), E: cff(), ETilde: cff()}
		s.Phi = r.PhiDegrees.draw(phiRNG) * math.Pi / 180
	}
	return samples, nil
}
