package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bkm10/bkm10/bkm"
	"github.com/bkm10/bkm10/bkm/trace"
)

var coefficientPhi float64 // φ in degrees

// writeCoefficientTable prints one row per coefficient followed by the
// trace summary.
func writeCoefficientTable(w io.Writer, ct *trace.CoefficientTrace) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "family\tname\tλ\tΛ\tvalue")
	for _, r := range ct.Records {
		fmt.Fprintf(tw, "%s\t%s\t%+g\t%+g\t%.12g\n", r.Family, r.Name, r.Helicity, r.Polarization, r.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	s := trace.Summarize(ct)
	_, err := fmt.Fprintf(w, "\n%d coefficients, largest |%s| = %.6g, %d non-finite\n",
		s.TotalRecords, s.LargestKey, s.LargestAbsVal, s.NonFinite)
	return err
}

func runCoefficients(cmd *cobra.Command, w io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	l, bl, err := resolveSpins(cmd, cfg)
	if err != nil {
		return err
	}
	d, err := bkm.NewDifferentialCrossSection(cfg)
	if err != nil {
		return err
	}
	ct, err := d.Coefficients(coefficientPhi*math.Pi/180, l, bl)
	if err != nil {
		return err
	}
	return writeCoefficientTable(w, ct)
}

// coefficientsCmd prints the named Fourier coefficients at one angle
var coefficientsCmd = &cobra.Command{
	Use:   "coefficients",
	Short: "Print the BH, DVCS and interference Fourier coefficients at one φ",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCoefficients(cmd, os.Stdout); err != nil {
			logrus.Fatalf("coefficients: %v", err)
		}
	},
}

func init() {
	coefficientsCmd.Flags().Float64Var(&coefficientPhi, "phi", 0, "Azimuthal angle φ (degrees)")
}
