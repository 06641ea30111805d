package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bkm10/bkm10/bkm"
)

var asymmetryKind string // bsa, tsa or dsa

// seriesRequest is one observable evaluated on a φ grid.
type seriesRequest struct {
	cfg        bkm.Config
	observable bkm.Observable
	phiDegrees []float64
	lambda     float64
	bigLambda  float64
}

// evaluateSeries builds the cross section and evaluates the observable.
func evaluateSeries(req seriesRequest) ([]float64, error) {
	d, err := bkm.NewDifferentialCrossSection(req.cfg)
	if err != nil {
		return nil, err
	}
	return d.Evaluate(req.observable, degreesToRadians(req.phiDegrees), req.lambda, req.bigLambda)
}

// writeSeries writes a two-column CSV: phi_deg and the named value column.
func writeSeries(w io.Writer, column string, phiDegrees, values []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"phi_deg", column}); err != nil {
		return err
	}
	for i, v := range values {
		rec := []string{
			strconv.FormatFloat(phiDegrees[i], 'g', -1, 64),
			strconv.FormatFloat(v, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// runSeries is shared by cross-section and asymmetry.
func runSeries(cmd *cobra.Command, observable bkm.Observable, column string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	l, bl, err := resolveSpins(cmd, cfg)
	if err != nil {
		return err
	}
	grid, err := phiGridDegrees(phiStart, phiEnd, phiPoints)
	if err != nil {
		return err
	}
	values, err := evaluateSeries(seriesRequest{cfg: cfg, observable: observable, phiDegrees: grid, lambda: l, bigLambda: bl})
	if err != nil {
		return err
	}
	logrus.Infof("Evaluated %s at %d φ points (λ=%v, Λ=%v)", observable, len(values), l, bl)
	return writeOutput(output, func(w io.Writer) error {
		return writeSeries(w, column, grid, values)
	})
}

// crossSectionCmd prints d⁴σ on a φ grid
var crossSectionCmd = &cobra.Command{
	Use:   "cross-section",
	Short: "Evaluate the four-fold differential cross section over φ",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSeries(cmd, bkm.ObservableCrossSection, "sigma_nb"); err != nil {
			logrus.Fatalf("cross-section: %v", err)
		}
	},
}

// asymmetryCmd prints a spin asymmetry on a φ grid
var asymmetryCmd = &cobra.Command{
	Use:   "asymmetry",
	Short: "Evaluate the beam-spin, target-spin or double-spin asymmetry over φ",
	Run: func(cmd *cobra.Command, args []string) {
		observable, err := bkm.ParseObservable(asymmetryKind)
		if err == nil && observable == bkm.ObservableCrossSection {
			err = fmt.Errorf("--kind must be an asymmetry (bsa, tsa, dsa), got %q", asymmetryKind)
		}
		if err != nil {
			logrus.Fatalf("asymmetry: %v", err)
		}
		if err := runSeries(cmd, observable, string(observable)); err != nil {
			logrus.Fatalf("asymmetry: %v", err)
		}
	},
}

func init() {
	asymmetryCmd.Flags().StringVar(&asymmetryKind, "kind", "bsa", "Asymmetry to evaluate (bsa, tsa, dsa)")
}
