// Package fit extracts Compton form factors from measured cross sections
// at a single kinematic point by minimising χ² with Nelder–Mead.
package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/optimize"

	"github.com/bkm10/bkm10/bkm"
)

// Measurement is one measured cross section point.
type Measurement struct {
	Phi   float64 // radians, in the config's angle convention
	Sigma float64 // nb/GeV⁴
	Err   float64 // absolute uncertainty on Sigma, > 0
}

// Problem is a local fit: the kinematics, contributions and spin state come
// from Config, the CFFs in Config are the starting point, and only the
// Free components vary.
type Problem struct {
	Config       bkm.Config
	Measurements []Measurement
	Free         []Parameter

	// MaxEvaluations bounds χ² evaluations; <= 0 uses a default.
	MaxEvaluations int
}

// Result is the outcome of a fit.
type Result struct {
	CFFs        bkm.CFFInputs
	ChiSquared  float64
	DoF         int // len(Measurements) - len(Free)
	Status      string
	Evaluations int
}

// ReducedChiSquared returns χ²/DoF, or NaN when DoF is zero.
func (r *Result) ReducedChiSquared() float64 {
	if r.DoF == 0 {
		return math.NaN()
	}
	return r.ChiSquared / float64(r.DoF)
}

const defaultMaxEvaluations = 20000

func (p Problem) validate() error {
	if len(p.Free) == 0 {
		return errors.New("fit: no free parameters")
	}
	if len(p.Measurements) < len(p.Free) {
		return fmt.Errorf("fit: %d measurements cannot constrain %d free parameters", len(p.Measurements), len(p.Free))
	}
	for i, m := range p.Measurements {
		for _, v := range []float64{m.Phi, m.Sigma, m.Err} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("fit: measurement %d has a non-finite value", i)
			}
		}
		if m.Err <= 0 {
			return fmt.Errorf("fit: measurement %d uncertainty must be positive, got %v", i, m.Err)
		}
	}
	return nil
}

// ChiSquared evaluates Σ((σ_model - σ)/δσ)² for cffs.
func ChiSquared(cfg bkm.Config, cffs bkm.CFFInputs, measurements []Measurement) (float64, error) {
	cfg.CFFs = cffs
	d, err := bkm.NewDifferentialCrossSection(cfg)
	if err != nil {
		return 0, err
	}
	phis := make([]float64, len(measurements))
	for i, m := range measurements {
		phis[i] = m.Phi
	}
	model, err := d.CrossSection(phis, cfg.LeptonHelicity, cfg.TargetPolarization)
	if err != nil {
		return 0, err
	}
	var chi2 float64
	for i, m := range measurements {
		r := (model[i] - m.Sigma) / m.Err
		chi2 += r * r
	}
	return chi2, nil
}

// Fit minimises χ² over the free CFF components.
func Fit(p Problem) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if _, err := bkm.NewDifferentialCrossSection(p.Config); err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	start := p.Config.CFFs
	apply := func(x []float64) bkm.CFFInputs {
		c := start
		for i, param := range p.Free {
			c = param.set(c, x[i])
		}
		return c
	}

	x0 := make([]float64, len(p.Free))
	for i, param := range p.Free {
		x0[i] = param.get(start)
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			chi2, err := ChiSquared(p.Config, apply(x), p.Measurements)
			if err != nil {
				return math.Inf(1)
			}
			return chi2
		},
	}
	maxEval := p.MaxEvaluations
	if maxEval <= 0 {
		maxEval = defaultMaxEvaluations
	}
	settings := &optimize.Settings{
		FuncEvaluations: maxEval,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-12,
			Relative:   1e-12,
			Iterations: 200,
		},
	}

	logrus.Debugf("fit: minimising χ² over %v with %d measurements", p.Free, len(p.Measurements))
	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if res == nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	if err != nil {
		logrus.Warnf("fit: optimizer stopped early: %v", err)
	}

	out := &Result{
		CFFs:        apply(res.X),
		ChiSquared:  res.F,
		DoF:         len(p.Measurements) - len(p.Free),
		Status:      res.Status.String(),
		Evaluations: res.FuncEvaluations,
	}
	logrus.Infof("fit: χ²=%.6g (dof=%d) after %d evaluations, status %s", out.ChiSquared, out.DoF, out.Evaluations, out.Status)
	return out, nil
}
