// Package trace provides coefficient-trace recording for inspecting how a
// cross section decomposes into its BKM10 Fourier coefficients.
// This package has no dependencies on bkm/; it stores pure data types.
package trace

// Family identifies which squared amplitude a coefficient belongs to.
type Family string

const (
	FamilyBH           Family = "bh"
	FamilyDVCS         Family = "dvcs"
	FamilyInterference Family = "i"
	FamilyTotal        Family = "total"
)

// CoefficientRecord captures one evaluated Fourier coefficient.
type CoefficientRecord struct {
	Family       Family
	Name         string  // e.g. "c0", "s1"
	Helicity     float64 // lepton helicity λ
	Polarization float64 // target polarization Λ
	Phi          float64 // caller's azimuthal angle in radians
	PhiBMK       float64 // the same angle in the BMK convention
	Value        float64
}

// Key returns the qualified name "<family>.<name>".
func (r CoefficientRecord) Key() string {
	return string(r.Family) + "." + r.Name
}
