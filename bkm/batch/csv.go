package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/bkm10/bkm10/bkm"
	"github.com/bkm10/bkm10/internal/atomicfile"
)

// sampleColumns is the CSV layout of a sample. Angles are in degrees.
var sampleColumns = []string{
	"q_squared", "x_bjorken", "t", "k", "phi_deg",
	"h_re", "h_im", "h_tilde_re", "h_tilde_im",
	"e_re", "e_im", "e_tilde_re", "e_tilde_im",
}

// ReadSamplesCSV parses samples from r. The first row must be the header
// written by WriteSamplesCSV; columns may appear in any order.
func ReadSamplesCSV(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("samples csv: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("samples csv: %w", err)
	}
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}
	idx := make([]int, len(sampleColumns))
	for i, name := range sampleColumns {
		p, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("samples csv: missing column %q", name)
		}
		idx[i] = p
	}

	var samples []Sample
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("samples csv: %w", err)
		}
		v := make([]float64, len(sampleColumns))
		for i, p := range idx {
			v[i], err = strconv.ParseFloat(rec[p], 64)
			if err != nil {
				return nil, fmt.Errorf("samples csv: line %d, column %s: %w", line, sampleColumns[i], err)
			}
		}
		samples = append(samples, Sample{
			Kinematics: bkm.KinematicInputs{QSquared: v[0], XBjorken: v[1], T: v[2], BeamEnergy: v[3]},
			Phi:        v[4] * math.Pi / 180,
			CFFs: bkm.CFFInputs{
				H:      complex(v[5], v[6]),
				HTilde: complex(v[7], v[8]),
				E:      complex(v[9], v[10]),
				ETilde: complex(v[11], v[12]),
			},
		})
	}
	return samples, nil
}

func sampleRecord(s Sample) []string {
	vals := []float64{
		s.Kinematics.QSquared, s.Kinematics.XBjorken, s.Kinematics.T, s.Kinematics.BeamEnergy,
		s.Phi * 180 / math.Pi,
		real(s.CFFs.H), imag(s.CFFs.H), real(s.CFFs.HTilde), imag(s.CFFs.HTilde),
		real(s.CFFs.E), imag(s.CFFs.E), real(s.CFFs.ETilde), imag(s.CFFs.ETilde),
	}
	rec := make([]string, len(vals))
	for i, v := range vals {
		rec[i] = formatFloat(v)
	}
	return rec
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteSamples writes samples as CSV with a header row.
func WriteSamples(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sampleColumns); err != nil {
		return err
	}
	for _, s := range samples {
		if err := cw.Write(sampleRecord(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteResults writes accepted results as CSV: the input index, the sample
// columns and sigma_nb.
func WriteResults(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	header := append([]string{"index"}, sampleColumns...)
	if err := cw.Write(append(header, "sigma_nb")); err != nil {
		return err
	}
	for _, r := range results {
		rec := append([]string{strconv.Itoa(r.Index)}, sampleRecord(r.Sample)...)
		if err := cw.Write(append(rec, formatFloat(r.Sigma))); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSamplesCSV atomically writes samples to path.
func WriteSamplesCSV(path string, samples []Sample) error {
	return atomicfile.Write(path, func(w io.Writer) error { return WriteSamples(w, samples) })
}

// WriteResultsCSV atomically writes results to path.
func WriteResultsCSV(path string, results []Result) error {
	return atomicfile.Write(path, func(w io.Writer) error { return WriteResults(w, results) })
}
