package bkm

// FormFactors are the elastic nucleon form factors at a given t.
type FormFactors struct {
	GE  float64 // Sachs electric
	GM  float64 // Sachs magnetic
	F1  float64 // Dirac
	F2  float64 // Pauli
	Tau float64 // t / 4M²
}

// NewFormFactors evaluates the dipole parameterisation at momentum transfer t.
func NewFormFactors(t float64) FormFactors {
	d := 1 - t/DipoleMassSquared
	ge := 1 / (d * d)
	gm := ProtonMagneticMoment * ge
	tau := t / (4 * ProtonMass * ProtonMass)
	f2 := (gm - ge) / (1 - tau)
	return FormFactors{
		GE:  ge,
		GM:  gm,
		F1:  gm - f2,
		F2:  f2,
		Tau: tau,
	}
}
