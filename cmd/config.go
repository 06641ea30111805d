package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/bkm10/bkm10/bkm"
	"github.com/bkm10/bkm10/internal/atomicfile"
)

// loadConfig reads --config. It is required by every evaluation command.
func loadConfig(path string) (bkm.Config, error) {
	if path == "" {
		return bkm.Config{}, fmt.Errorf("--config is required")
	}
	return bkm.LoadConfig(path)
}

// resolveSpins returns the spin state to evaluate: the config's defaults,
// replaced by --lambda or --Lambda only when those flags were set.
// Flag defaults never overwrite config values.
func resolveSpins(cmd *cobra.Command, cfg bkm.Config) (float64, float64, error) {
	l, bl := cfg.LeptonHelicity, cfg.TargetPolarization
	if cmd.Flags().Changed("lambda") {
		l = lambda
	}
	if cmd.Flags().Changed("Lambda") {
		bl = bigLambda
	}
	if err := bkm.ValidateHelicity(l); err != nil {
		return 0, 0, err
	}
	if err := bkm.ValidatePolarization(bl); err != nil {
		return 0, 0, err
	}
	return l, bl, nil
}

// phiGridDegrees returns n evenly spaced angles from start to end inclusive.
func phiGridDegrees(start, end float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("--phi-points must be at least 1, got %d", n)
	}
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return nil, fmt.Errorf("φ range must be finite, got [%v, %v]", start, end)
	}
	if n == 1 {
		return []float64{start}, nil
	}
	return floats.Span(make([]float64, n), start, end), nil
}

func degreesToRadians(deg []float64) []float64 {
	rad := make([]float64, len(deg))
	floats.ScaleTo(rad, math.Pi/180, deg)
	return rad
}

// writeOutput streams write to stdout when path is empty or "-", and
// atomically to path otherwise.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	return atomicfile.Write(path, write)
}
