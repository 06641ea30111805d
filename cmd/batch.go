package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bkm10/bkm10/bkm"
	"github.com/bkm10/bkm10/bkm/batch"
)

var (
	batchSamples int    // Number of synthetic samples when --input is absent
	batchSeed    int64  // Seed for synthetic samples
	batchWorkers int    // Concurrent evaluations
	batchInput   string // Samples CSV
)

// batchOptions derives run options from the optional --config and the
// spin flags.
func batchOptions(cmd *cobra.Command) (batch.Options, error) {
	opts := batch.DefaultOptions()
	opts.Workers = batchWorkers
	if configPath != "" {
		cfg, err := bkm.LoadConfig(configPath)
		if err != nil {
			return opts, err
		}
		opts.UsingWW = cfg.UsingWW
		opts.Contributions = cfg.Contributions
		opts.TrentoConvention = cfg.TrentoConvention
		opts.LeptonHelicity, opts.TargetPolarization = cfg.LeptonHelicity, cfg.TargetPolarization
	}
	if cmd.Flags().Changed("lambda") {
		opts.LeptonHelicity = lambda
	}
	if cmd.Flags().Changed("Lambda") {
		opts.TargetPolarization = bigLambda
	}
	return opts, nil
}

// batchInputSamples reads --input, or generates --samples points with --seed.
func batchInputSamples() ([]batch.Sample, error) {
	if batchInput == "" {
		logrus.Infof("Generating %d samples with seed %d", batchSamples, batchSeed)
		return batch.Generate(batchSeed, batchSamples, batch.DefaultRanges())
	}
	f, err := os.Open(batchInput)
	if err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}
	defer f.Close()
	return batch.ReadSamplesCSV(f)
}

func runBatch(ctx context.Context, cmd *cobra.Command) error {
	opts, err := batchOptions(cmd)
	if err != nil {
		return err
	}
	samples, err := batchInputSamples()
	if err != nil {
		return err
	}
	report, err := batch.Evaluate(ctx, samples, opts)
	if err != nil {
		return err
	}
	return writeOutput(output, func(w io.Writer) error {
		return batch.WriteResults(w, report.Results)
	})
}

// batchCmd evaluates many independent samples concurrently
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate the cross section for many kinematic points concurrently",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runBatch(ctx, cmd); err != nil {
			logrus.Fatalf("batch: %v", err)
		}
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchSamples, "samples", 256, "Number of synthetic samples to generate when --input is not given")
	batchCmd.Flags().Int64Var(&batchSeed, "seed", 345, "Seed for synthetic sample generation")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent evaluations (0 = GOMAXPROCS)")
	batchCmd.Flags().StringVar(&batchInput, "input", "", "Samples CSV (q_squared, x_bjorken, t, k, phi_deg, h_re, ..., e_tilde_im)")
	addSpinFlags(batchCmd)
}
