package bkm

import "fmt"

// Contributions selects which squared amplitudes enter the cross section.
type Contributions struct {
	BH           bool
	DVCS         bool
	Interference bool
}

// AllContributions enables BH, DVCS and interference.
func AllContributions() Contributions {
	return Contributions{BH: true, DVCS: true, Interference: true}
}

// Label names the enabled contributions, e.g. "BH DVCS". It is empty
// when all three are enabled.
func (c Contributions) Label() string {
	if c.BH && c.DVCS && c.Interference {
		return ""
	}
	label := ""
	for _, p := range []struct {
		on   bool
		name string
	}{{c.BH, "BH"}, {c.DVCS, "DVCS"}, {c.Interference, "I"}} {
		if !p.on {
			continue
		}
		if label != "" {
			label += " "
		}
		label += p.name
	}
	return label
}

// Formalism holds the Fourier coefficients of the three squared amplitudes
// for one fixed lepton helicity and target polarization. The coefficients
// are computed once at construction; only the lepton propagators depend on
// the angle.
type Formalism struct {
	kin           Kinematics
	ff            FormFactors
	lambda        float64
	bigLambda     float64
	contributions Contributions

	bh   Harmonics
	dvcs Harmonics
	intf Harmonics
}

// NewFormalism builds the formalism for helicity lambda and target
// polarization bigLambda.
func NewFormalism(kin Kinematics, cffs CFFInputs, usingWW bool, contributions Contributions, lambda, bigLambda float64) (*Formalism, error) {
	if err := ValidateHelicity(lambda); err != nil {
		return nil, fmt.Errorf("formalism: %w", err)
	}
	if err := ValidatePolarization(bigLambda); err != nil {
		return nil, fmt.Errorf("formalism: %w", err)
	}
	if err := cffs.Validate(); err != nil {
		return nil, fmt.Errorf("formalism: %w", err)
	}

	ff := NewFormFactors(kin.T)
	eff := cffs.Effective(kin.Xi, usingWW)
	return &Formalism{
		kin:           kin,
		ff:            ff,
		lambda:        lambda,
		bigLambda:     bigLambda,
		contributions: contributions,
		bh:            bhHarmonics(kin, ff, lambda, bigLambda),
		dvcs:          dvcsHarmonics(kin, ff, cffs, eff, lambda, bigLambda),
		intf:          interferenceHarmonics(kin, ff, cffs, eff, lambda, bigLambda),
	}, nil
}

// Parts returns the BH, DVCS and interference coefficients at phi (BMK
// convention, radians) with their normalisations applied. Disabled
// contributions are zero.
func (f *Formalism) Parts(phi float64) (bh, dvcs, intf Harmonics) {
	k := f.kin
	x, y, t := k.XBjorken, k.Y, k.T
	p1, p2 := k.LeptonPropagators(phi)

	if f.contributions.BH {
		onePlus := 1 + k.epsSq
		bh = f.bh.Scale(1 / (x * x * y * y * onePlus * onePlus * t * p1 * p2))
	}
	if f.contributions.DVCS {
		dvcs = f.dvcs.Scale(1 / (y * y * k.QSquared))
	}
	if f.contributions.Interference {
		intf = f.intf.Scale(1 / (x * y * y * y * t * p1 * p2))
	}
	return bh, dvcs, intf
}

// Coefficients returns the combined c₀..c₃ and s₁..s₃ at phi.
func (f *Formalism) Coefficients(phi float64) Harmonics {
	bh, dvcs, intf := f.Parts(phi)
	return bh.add(dvcs).add(intf)
}

// ModalSum evaluates Σ cₙ cos(nφ) + Σ sₙ sin(nφ) at phi.
func (f *Formalism) ModalSum(phi float64) float64 {
	return f.Coefficients(phi).Sum(phi)
}

// Helicity returns the lepton helicity this formalism was built for.
func (f *Formalism) Helicity() float64 { return f.lambda }

// Polarization returns the target polarization this formalism was built for.
func (f *Formalism) Polarization() float64 { return f.bigLambda }

// FormFactors returns the elastic form factors at the formalism's t.
func (f *Formalism) FormFactors() FormFactors { return f.ff }
