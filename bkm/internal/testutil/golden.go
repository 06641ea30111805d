// Package testutil provides shared test infrastructure for the bkm packages:
// the reference dataset and float assertion helpers.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// ReferenceDataset represents the structure of testdata/bkm10_reference.json.
type ReferenceDataset struct {
	Cases []ReferenceCase `json:"cases"`
}

// ReferenceCase is one kinematic point with its expected outputs.
type ReferenceCase struct {
	Name       string `json:"name"`
	Kinematics struct {
		QSquared   float64 `json:"q_squared"`
		XBjorken   float64 `json:"x_bjorken"`
		T          float64 `json:"t"`
		BeamEnergy float64 `json:"k"`
	} `json:"kinematics"`
	CFFs struct {
		H      [2]float64 `json:"h"`
		HTilde [2]float64 `json:"h_tilde"`
		E      [2]float64 `json:"e"`
		ETilde [2]float64 `json:"e_tilde"`
	} `json:"cffs"`
	UsingWW bool `json:"using_ww"`

	Derived struct {
		Epsilon   float64 `json:"epsilon"`
		Y         float64 `json:"y"`
		Xi        float64 `json:"xi"`
		TMin      float64 `json:"t_min"`
		TPrime    float64 `json:"t_prime"`
		KTilde    float64 `json:"k_tilde"`
		K         float64 `json:"k"`
		Prefactor float64 `json:"prefactor"`
	} `json:"derived"`

	FormFactors struct {
		GE  float64 `json:"ge"`
		GM  float64 `json:"gm"`
		F1  float64 `json:"f1"`
		F2  float64 `json:"f2"`
		Tau float64 `json:"tau"`
	} `json:"form_factors"`

	// PhiPoints angles span [0, 2π] inclusive, in radians.
	PhiPoints               int       `json:"phi_points"`
	CrossSectionUnpolarized []float64 `json:"cross_section_unpolarized"`
	CrossSectionPlusBeam    []float64 `json:"cross_section_plus_beam"`
	CrossSectionMinusBeam   []float64 `json:"cross_section_minus_beam"`

	// Asymmetry curves on the same grid. BSA is labelled by target
	// polarization, TSA by beam helicity.
	BSAUnpolarizedTarget []float64 `json:"bsa_unpolarized_target"`
	BSAPlusTarget        []float64 `json:"bsa_plus_target"`
	BSAMinusTarget       []float64 `json:"bsa_minus_target"`
	TSAUnpolarizedBeam   []float64 `json:"tsa_unpolarized_beam"`
	TSAPlusBeam          []float64 `json:"tsa_plus_beam"`
	TSAMinusBeam         []float64 `json:"tsa_minus_beam"`
	DSA                  []float64 `json:"dsa"`

	// BHCoefficients are c₀..c₂ of the Bethe-Heitler term for λ = +1,
	// split into the unpolarized part and the Λ = +½ addition.
	BHCoefficients struct {
		Unpolarized  []float64 `json:"unpolarized"`
		Longitudinal []float64 `json:"longitudinal"`
	} `json:"bh_coefficients"`
}

// Phis returns the case's evenly spaced angle grid.
func (c ReferenceCase) Phis() []float64 {
	phis := make([]float64, c.PhiPoints)
	for i := range phis {
		phis[i] = 2 * math.Pi * float64(i) / float64(c.PhiPoints-1)
	}
	return phis
}

// Complex converts a [re, im] pair from the dataset.
func Complex(p [2]float64) complex128 { return complex(p[0], p[1]) }

// LoadReferenceDataset loads the reference dataset from the testdata directory.
// The path is resolved relative to this source file: bkm/internal/testutil/ → testdata/.
func LoadReferenceDataset(t *testing.T) *ReferenceDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "bkm10_reference.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read reference dataset: %v", err)
	}

	var dataset ReferenceDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse reference dataset: %v", err)
	}
	if len(dataset.Cases) == 0 {
		t.Fatal("reference dataset has no cases")
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
