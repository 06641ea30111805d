package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel   string // Log verbosity level
	configPath string // YAML kinematics/CFF configuration

	// Spin state and φ grid shared by the evaluation commands
	lambda    float64 // Lepton helicity
	bigLambda float64 // Target polarization
	phiStart  float64 // First φ in degrees
	phiEnd    float64 // Last φ in degrees
	phiPoints int     // Number of φ points
	output    string  // Output path; empty or "-" means stdout
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "bkm10",
	Short: "DVCS cross sections and asymmetries in the BKM10 formalism",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addSpinFlags registers --lambda and --Lambda on cmd.
func addSpinFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&lambda, "lambda", 0, "Lepton helicity (-1, 0, +1); overrides lepton_helicity from --config")
	cmd.Flags().Float64Var(&bigLambda, "Lambda", 0, "Target polarization (-0.5, 0, +0.5); overrides target_polarization from --config")
}

// addGridFlags registers the φ grid flags on cmd.
func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&phiStart, "phi-start", 0, "First azimuthal angle φ (degrees)")
	cmd.Flags().Float64Var(&phiEnd, "phi-end", 360, "Last azimuthal angle φ (degrees)")
	cmd.Flags().IntVar(&phiPoints, "phi-points", 15, "Number of evenly spaced φ points, endpoints included")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML kinematics and CFF configuration")

	for _, c := range []*cobra.Command{crossSectionCmd, asymmetryCmd, plotCmd} {
		addSpinFlags(c)
		addGridFlags(c)
	}
	addSpinFlags(coefficientsCmd)

	for _, c := range []*cobra.Command{crossSectionCmd, asymmetryCmd, batchCmd} {
		c.Flags().StringVar(&output, "output", "", "Output CSV path (default stdout)")
	}

	rootCmd.AddCommand(crossSectionCmd, asymmetryCmd, coefficientsCmd, plotCmd, batchCmd, fitCmd)
}
