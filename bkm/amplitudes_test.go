package bkm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkm10/bkm10/bkm/internal/testutil"
)

func referenceAmplitudeInputs(t *testing.T) (Kinematics, FormFactors, CFFInputs, CFFInputs) {
	t.Helper()
	cfg, _ := referenceConfig(t)
	k, err := NewKinematics(cfg.Kinematics)
	require.NoError(t, err)
	return k, NewFormFactors(k.T), cfg.CFFs, cfg.CFFs.Effective(k.Xi, true)
}

func TestEffectiveCFFs_ReferencePoint(t *testing.T) {
	_, _, _, eff := referenceAmplitudeInputs(t)
	testutil.AssertFloat64Equal(t, "Re H_eff", -1.4961696451186222, real(eff.H), 1e-12)
	testutil.AssertFloat64Equal(t, "Im H_eff", 4.038156868263304, imag(eff.H), 1e-12)
}

func TestCurlyCDVCSUnpolarized_ReferencePoint(t *testing.T) {
	// GIVEN the reference CFFs and their effective twist-three partners
	k, ff, f, eff := referenceAmplitudeInputs(t)

	// WHEN the bilinear combinations are evaluated
	cases := []struct {
		name string
		a, b CFFInputs
		want float64
	}{
		{"F|F", f, f, 13.478125253553266},
		{"Feff|Feff", eff, eff, 37.49784250218004},
		{"Feff|F", eff, f, 22.481116920259893},
	}

	// THEN each is real to rounding and matches the reference
	for _, tc := range cases {
		got := CurlyCDVCSUnpolarized(k, ff, tc.a, tc.b)
		testutil.AssertFloat64Equal(t, tc.name, tc.want, real(got), 1e-12)
		assert.InDelta(t, 0, imag(got), 1e-12, tc.name)
	}
}

func TestCurlyCDVCSUnpolarized_HermitianInArguments(t *testing.T) {
	k, ff, f, eff := referenceAmplitudeInputs(t)
	ab := CurlyCDVCSUnpolarized(k, ff, eff, f)
	ba := CurlyCDVCSUnpolarized(k, ff, f, eff)
	assert.InDelta(t, real(ab), real(ba), 1e-12)
	assert.InDelta(t, imag(ab), -imag(ba), 1e-12)
}

func TestCurlyCIUnpolarized_ReferencePoint(t *testing.T) {
	k, ff, f, eff := referenceAmplitudeInputs(t)

	ci := CurlyCIUnpolarized(k, ff, f)
	testutil.AssertFloat64Equal(t, "Re C^I", 0.266711013189341, real(ci.C), 1e-12)
	testutil.AssertFloat64Equal(t, "Im C^I", 2.1847473098840733, imag(ci.C), 1e-12)

	ciEff := CurlyCIUnpolarized(k, ff, eff)
	testutil.AssertFloat64Equal(t, "Re C^I_eff", 0.44486613372656025, real(ciEff.C), 1e-12)
	testutil.AssertFloat64Equal(t, "Im C^I_eff", 3.6440943225229856, imag(ciEff.C), 1e-12)
}

func TestCurlyCI_LinearInCFFs(t *testing.T) {
	// GIVEN CFFs scaled by two
	k, ff, f, _ := referenceAmplitudeInputs(t)

	one := CurlyCIUnpolarized(k, ff, f)
	two := CurlyCIUnpolarized(k, ff, f.Scale(2))

	// THEN every component doubles
	assert.InDelta(t, 2*real(one.C), real(two.C), 1e-12)
	assert.InDelta(t, 2*imag(one.V), imag(two.V), 1e-12)
	assert.InDelta(t, 2*real(one.A), real(two.A), 1e-12)
	lp, lpTwo := CurlyCILongitudinal(k, ff, f), CurlyCILongitudinal(k, ff, f.Scale(2))
	assert.InDelta(t, 2*imag(lp.C), imag(lpTwo.C), 1e-12)
	assert.InDelta(t, 2*real(lp.A), real(lpTwo.A), 1e-12)
}

func TestHarmonics_SumAndScale(t *testing.T) {
	h := Harmonics{Cos: [4]float64{1, 2, 0, 0}, Sin: [4]float64{0, 3, 0, 0}}
	assert.InDelta(t, 3.0, h.Sum(0), 1e-15)
	assert.InDelta(t, 1+3.0, h.Sum(1.5707963267948966), 1e-12)

	s := h.Scale(2)
	assert.Equal(t, [4]float64{2, 4, 0, 0}, s.Cos)
	assert.Equal(t, [4]float64{1, 2, 0, 0}, h.Cos, "Scale must not modify the receiver")
}
