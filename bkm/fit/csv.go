package fit

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ReadMeasurementsCSV parses rows of phi_deg, sigma_nb and err with a
// header row naming those columns.
func ReadMeasurementsCSV(r io.Reader) ([]Measurement, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("measurements csv: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("measurements csv: %w", err)
	}
	cols := []string{"phi_deg", "sigma_nb", "err"}
	idx := make([]int, len(cols))
	for i, name := range cols {
		idx[i] = -1
		for j, h := range header {
			if h == name {
				idx[i] = j
			}
		}
		if idx[i] < 0 {
			return nil, fmt.Errorf("measurements csv: missing column %q", name)
		}
	}

	var out []Measurement
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("measurements csv: %w", err)
		}
		var v [3]float64
		for i, p := range idx {
			if v[i], err = strconv.ParseFloat(rec[p], 64); err != nil {
				return nil, fmt.Errorf("measurements csv: line %d, column %s: %w", line, cols[i], err)
			}
		}
		out = append(out, Measurement{Phi: v[0] * math.Pi / 180, Sigma: v[1], Err: v[2]})
	}
}
