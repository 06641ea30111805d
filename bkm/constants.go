package bkm

// Physical constants used throughout the formalism. Values follow CODATA 2018.
const (
	// ProtonMass is the proton mass in GeV.
	ProtonMass = 0.93827208816

	// FineStructure is the electromagnetic fine-structure constant α.
	FineStructure = 1.0 / 137.035999177

	// ProtonMagneticMoment is μ_p in nuclear magnetons.
	ProtonMagneticMoment = 2.79284734463

	// DipoleMassSquared is the dipole form factor mass parameter in GeV².
	DipoleMassSquared = 0.710649

	// GeVToNanobarn converts GeV⁻² to nb.
	GeVToNanobarn = 0.389379e6
)
