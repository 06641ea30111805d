package trace

import "math"

// TraceSummary aggregates statistics from a CoefficientTrace.
type TraceSummary struct {
	TotalRecords  int
	PerFamily     map[Family]int
	LargestKey    string  // key of the non-total coefficient with the largest |value|
	LargestAbsVal float64 // that |value|
	NonFinite     int     // records holding NaN or ±Inf
}

// Summarize computes aggregate statistics from a CoefficientTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(ct *CoefficientTrace) *TraceSummary {
	summary := &TraceSummary{
		PerFamily: make(map[Family]int),
	}
	if ct == nil {
		return summary
	}

	summary.TotalRecords = len(ct.Records)
	for _, r := range ct.Records {
		summary.PerFamily[r.Family]++
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			summary.NonFinite++
			continue
		}
		if r.Family == FamilyTotal {
			continue
		}
		if abs := math.Abs(r.Value); abs > summary.LargestAbsVal {
			summary.LargestAbsVal = abs
			summary.LargestKey = r.Key()
		}
	}
	return summary
}
