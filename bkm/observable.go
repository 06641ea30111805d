package bkm

import (
	"fmt"
	"strings"
)

// Observable names a quantity that can be evaluated on a φ grid.
type Observable string

// Supported observables.
const (
	ObservableCrossSection Observable = "cross-section"
	ObservableBSA          Observable = "bsa"
	ObservableTSA          Observable = "tsa"
	ObservableDSA          Observable = "dsa"
)

// ParseObservable accepts the names above, case-insensitively. "sigma" is
// an alias for the cross section.
func ParseObservable(s string) (Observable, error) {
	switch o := Observable(strings.ToLower(strings.TrimSpace(s))); o {
	case ObservableCrossSection, ObservableBSA, ObservableTSA, ObservableDSA:
		return o, nil
	case "sigma":
		return ObservableCrossSection, nil
	}
	return "", fmt.Errorf("unknown observable %q (valid: cross-section, bsa, tsa, dsa)", s)
}

// Label is a human-readable axis label.
func (o Observable) Label() string {
	switch o {
	case ObservableCrossSection:
		return "dσ/dΦ (nb/GeV⁴)"
	case ObservableBSA:
		return "BSA"
	case ObservableTSA:
		return "TSA"
	case ObservableDSA:
		return "DSA"
	}
	return string(o)
}

// Evaluate computes observable o at phis. Spin arguments an observable
// does not use are ignored: BSA reads only bigLambda, TSA only lambda and
// DSA neither.
func (d *DifferentialCrossSection) Evaluate(o Observable, phis []float64, lambda, bigLambda float64) ([]float64, error) {
	switch o {
	case ObservableCrossSection:
		return d.CrossSection(phis, lambda, bigLambda)
	case ObservableBSA:
		return d.BSA(phis, bigLambda)
	case ObservableTSA:
		return d.TSA(phis, lambda)
	case ObservableDSA:
		return d.DSA(phis)
	}
	return nil, fmt.Errorf("unknown observable %q", o)
}
