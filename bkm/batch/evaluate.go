// Package batch evaluates cross sections over many independent kinematic
// points on a bounded worker pool, and generates and stores such samples.
package batch

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bkm10/bkm10/bkm"
)

// Options control a batch run. The spin state, WW setting, contributions
// and angle convention apply to every sample.
type Options struct {
	Workers            int // <= 0 means runtime.GOMAXPROCS(0)
	LeptonHelicity     float64
	TargetPolarization float64
	UsingWW            bool
	Contributions      bkm.Contributions
	TrentoConvention   bool
}

// DefaultOptions evaluates the unpolarized cross section with the WW
// relations, all contributions and the Trento convention.
func DefaultOptions() Options {
	return Options{
		UsingWW:          true,
		Contributions:    bkm.AllContributions(),
		TrentoConvention: true,
	}
}

// Result is the cross section of one accepted sample.
type Result struct {
	Index  int // position of the sample in the input
	Sample Sample
	Sigma  float64 // nb/GeV⁴
}

// Report collects the outcome of one Evaluate call.
type Report struct {
	RunID   uuid.UUID
	Results []Result // accepted samples, in input order
	Skipped int
}

// Evaluate computes σ for every sample with at most opts.Workers
// evaluations in flight. Samples that fail validation or give a
// non-finite σ are logged and skipped. Cancelling ctx stops outstanding
// work and returns the context error.
func Evaluate(ctx context.Context, samples []Sample, opts Options) (*Report, error) {
	if err := bkm.ValidateHelicity(opts.LeptonHelicity); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if err := bkm.ValidatePolarization(opts.TargetPolarization); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if c := opts.Contributions; !c.BH && !c.DVCS && !c.Interference {
		return nil, fmt.Errorf("batch: contributions: at least one of bh, dvcs, interference must be enabled")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	runID := uuid.New()
	logrus.Infof("batch %s: evaluating %d samples with %d workers", runID, len(samples), workers)

	sigmas := make([]float64, len(samples))
	accepted := make([]bool, len(samples))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range samples {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sigma, err := evaluateOne(s, opts)
			if err != nil {
				logrus.Warnf("batch %s: skipped sample %d: %v", runID, i, err)
				return nil
			}
			sigmas[i] = sigma
			accepted[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", runID, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", runID, err)
	}

	report := &Report{RunID: runID}
	for i, ok := range accepted {
		if !ok {
			report.Skipped++
			continue
		}
		report.Results = append(report.Results, Result{Index: i, Sample: samples[i], Sigma: sigmas[i]})
	}
	logrus.Infof("batch %s: %d accepted, %d skipped", runID, len(report.Results), report.Skipped)
	return report, nil
}

func evaluateOne(s Sample, opts Options) (float64, error) {
	cfg := bkm.DefaultConfig()
	cfg.Kinematics = s.Kinematics
	cfg.CFFs = s.CFFs
	cfg.UsingWW = opts.UsingWW
	cfg.Contributions = opts.Contributions
	cfg.TrentoConvention = opts.TrentoConvention

	d, err := bkm.NewDifferentialCrossSection(cfg)
	if err != nil {
		return 0, err
	}
	out, err := d.CrossSection([]float64{s.Phi}, opts.LeptonHelicity, opts.TargetPolarization)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(out[0]) || math.IsInf(out[0], 0) {
		return 0, fmt.Errorf("non-finite cross section %v at φ=%v", out[0], s.Phi)
	}
	return out[0], nil
}
