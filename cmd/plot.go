package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bkm10/bkm10/bkm"
	"github.com/bkm10/bkm10/bkm/plot"
)

var (
	plotObservable string // cross-section, bsa, tsa, dsa
	plotOutput     string // image path; the extension picks the format
)

func runPlot(cmd *cobra.Command) error {
	observable, err := bkm.ParseObservable(plotObservable)
	if err != nil {
		return err
	}
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
	d, err := bkm.NewDifferentialCrossSection(cfg)
	if err != nil {
		return err
	}
	p, err := plot.New(d, plot.Options{
		Observable:         observable,
		PhiDegrees:         grid,
		LeptonHelicity:     l,
		TargetPolarization: bl,
	})
	if err != nil {
		return err
	}
	if err := plot.Save(plotOutput, p, plot.DefaultWidth, plot.DefaultHeight); err != nil {
		return err
	}
	logrus.Infof("Wrote %s plot to %s", observable, plotOutput)
	return nil
}

// plotCmd renders an observable against φ
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the cross section or an asymmetry against φ",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPlot(cmd); err != nil {
			logrus.Fatalf("plot: %v", err)
		}
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotObservable, "observable", "cross-section", "Observable to plot (cross-section, bsa, tsa, dsa)")
	plotCmd.Flags().StringVar(&plotOutput, "output", "bkm10.png", "Image path; .png, .svg, .pdf and other gonum/plot formats")
}
