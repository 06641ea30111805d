package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bkm10/bkm10/bkm/fit"
)

var (
	fitData string   // Measurements CSV
	fitFree []string // CFF components to vary
)

func writeFitReport(w io.Writer, res *fit.Result) error {
	c := res.CFFs
	_, err := fmt.Fprintf(w,
		"status: %s\nevaluations: %d\nchi2: %.6g\ndof: %d\nchi2/dof: %.6g\nH: %v\nH_tilde: %v\nE: %v\nE_tilde: %v\n",
		res.Status, res.Evaluations, res.ChiSquared, res.DoF, res.ReducedChiSquared(),
		c.H, c.HTilde, c.E, c.ETilde)
	return err
}

func runFit(cmd *cobra.Command, w io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	l, bl, err := resolveSpins(cmd, cfg)
	if err != nil {
		return err
	}
	cfg.LeptonHelicity, cfg.TargetPolarization = l, bl

	free, err := fit.ParseParameters(fitFree)
	if err != nil {
		return err
	}
	if fitData == "" {
		return fmt.Errorf("--data is required")
	}
	f, err := os.Open(fitData)
	if err != nil {
		return fmt.Errorf("reading measurements: %w", err)
	}
	defer f.Close()
	measurements, err := fit.ReadMeasurementsCSV(f)
	if err != nil {
		return err
	}

	res, err := fit.Fit(fit.Problem{Config: cfg, Measurements: measurements, Free: free})
	if err != nil {
		return err
	}
	return writeFitReport(w, res)
}

// fitCmd fits CFFs to measured cross sections, starting from --config
var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit CFF components to measured cross sections at the configured kinematics",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFit(cmd, os.Stdout); err != nil {
			logrus.Fatalf("fit: %v", err)
		}
	},
}

func init() {
	fitCmd.Flags().StringVar(&fitData, "data", "", "Measurements CSV with columns phi_deg, sigma_nb, err")
	fitCmd.Flags().StringSliceVar(&fitFree, "free", []string{"h_re", "h_im"}, "CFF components to vary (h_re, h_im, h_tilde_re, ..., e_tilde_im)")
	addSpinFlags(fitCmd)
}
