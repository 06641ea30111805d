package bkm

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkm10/bkm10/bkm/internal/testutil"
)

func TestNewKinematics_ReferencePoint_MatchesDerivedValues(t *testing.T) {
	// GIVEN the reference kinematics
	cfg, rc := referenceConfig(t)

	// WHEN the derived quantities are computed
	k, err := NewKinematics(cfg.Kinematics)
	require.NoError(t, err)

	// THEN every one matches the reference
	const tol = 1e-12
	testutil.AssertFloat64Equal(t, "epsilon", rc.Derived.Epsilon, k.Epsilon, tol)
	testutil.AssertFloat64Equal(t, "y", rc.Derived.Y, k.Y, tol)
	testutil.AssertFloat64Equal(t, "xi", rc.Derived.Xi, k.Xi, tol)
	testutil.AssertFloat64Equal(t, "t_min", rc.Derived.TMin, k.TMin, tol)
	testutil.AssertFloat64Equal(t, "t_prime", rc.Derived.TPrime, k.TPrime, tol)
	testutil.AssertFloat64Equal(t, "k_tilde", rc.Derived.KTilde, k.KTilde, tol)
	testutil.AssertFloat64Equal(t, "k", rc.Derived.K, k.K, tol)
	testutil.AssertFloat64Equal(t, "prefactor", rc.Derived.Prefactor, k.Prefactor(), tol)
}

func TestNewKinematics_TPrimeIsTMinusTMin(t *testing.T) {
	cfg, _ := referenceConfig(t)
	k, err := NewKinematics(cfg.Kinematics)
	require.NoError(t, err)
	assert.InDelta(t, k.T-k.TMin, k.TPrime, 1e-15)
	assert.LessOrEqual(t, k.TPrime, 0.0)
}

func TestNewKinematics_BeamEnergyTooLow_ReturnsError(t *testing.T) {
	// GIVEN a beam energy that pushes y above 1
	in := KinematicInputs{QSquared: 1.82, XBjorken: 0.34, T: -0.17, BeamEnergy: 2}

	// WHEN
	_, err := NewKinematics(in)

	// THEN
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lepton energy fraction")
}

func TestNewKinematics_TAboveTMin_ReturnsError(t *testing.T) {
	// GIVEN |t| smaller than |t_min| ≈ 0.1355
	in := KinematicInputs{QSquared: 1.82, XBjorken: 0.34, T: -0.1, BeamEnergy: 5.75}

	_, err := NewKinematics(in)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "t_min")
}

func TestKinematicInputs_Validate_RejectsOutOfDomain(t *testing.T) {
	valid := KinematicInputs{QSquared: 1.82, XBjorken: 0.34, T: -0.17, BeamEnergy: 5.75}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*KinematicInputs)
		want   string
	}{
		{"zero Q²", func(in *KinematicInputs) { in.QSquared = 0 }, "q_squared must be positive"},
		{"x_B above one", func(in *KinematicInputs) { in.XBjorken = 1 }, "x_bjorken must be in (0, 1)"},
		{"x_B zero", func(in *KinematicInputs) { in.XBjorken = 0 }, "x_bjorken must be in (0, 1)"},
		{"positive t", func(in *KinematicInputs) { in.T = 0.1 }, "t must be negative"},
		{"negative k", func(in *KinematicInputs) { in.BeamEnergy = -1 }, "k must be positive"},
		{"NaN Q²", func(in *KinematicInputs) { in.QSquared = math.NaN() }, "must be a finite number"},
		{"infinite t", func(in *KinematicInputs) { in.T = math.Inf(-1) }, "must be a finite number"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			err := in.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLeptonPropagators_SymmetricInPhi(t *testing.T) {
	cfg, _ := referenceConfig(t)
	k, err := NewKinematics(cfg.Kinematics)
	require.NoError(t, err)

	for _, phi := range []float64{0.2, 1.3, 2.9} {
		p1a, p2a := k.LeptonPropagators(phi)
		p1b, p2b := k.LeptonPropagators(2*math.Pi - phi)
		assert.InDelta(t, p1a, p1b, 1e-12)
		assert.InDelta(t, p2a, p2b, 1e-12)
	}
}

func TestNewFormFactors_ReferencePoint(t *testing.T) {
	_, rc := referenceConfig(t)

	ff := NewFormFactors(rc.Kinematics.T)

	const tol = 1e-12
	testutil.AssertFloat64Equal(t, "GE", rc.FormFactors.GE, ff.GE, tol)
	testutil.AssertFloat64Equal(t, "GM", rc.FormFactors.GM, ff.GM, tol)
	testutil.AssertFloat64Equal(t, "F1", rc.FormFactors.F1, ff.F1, tol)
	testutil.AssertFloat64Equal(t, "F2", rc.FormFactors.F2, ff.F2, tol)
	testutil.AssertFloat64Equal(t, "tau", rc.FormFactors.Tau, ff.Tau, tol)
}

func TestNewFormFactors_ZeroT_Normalisation(t *testing.T) {
	// At t = 0 the Dirac and Pauli form factors reduce to the charge and
	// anomalous magnetic moment.
	ff := NewFormFactors(0)
	assert.InDelta(t, 1.0, ff.GE, 1e-15)
	assert.InDelta(t, 1.0, ff.F1, 1e-12)
	assert.InDelta(t, ProtonMagneticMoment-1, ff.F2, 1e-12)
}

func TestValidateSpins_Sentinels(t *testing.T) {
	assert.NoError(t, ValidateHelicity(-1))
	assert.NoError(t, ValidateHelicity(0))
	assert.NoError(t, ValidatePolarization(0.5))

	err := ValidateHelicity(0.5)
	assert.True(t, errors.Is(err, ErrInvalidHelicity))
	err = ValidatePolarization(1)
	assert.ErrorIs(t, err, ErrInvalidPolarization)
	assert.Contains(t, err.Error(), "got 1")
}

func TestCFFInputs_Validate_RejectsNaN(t *testing.T) {
	c := CFFInputs{H: complex(math.NaN(), 0)}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cffs: h must be finite")
}

func TestCFFInputs_Effective(t *testing.T) {
	c := CFFInputs{H: 1 + 2i, HTilde: 3, E: -1i, ETilde: 0.5}
	xi := 0.2

	ww := c.Effective(xi, true)
	assert.InDelta(t, 2/(1+xi), real(ww.HTilde)/3, 1e-15)
	assert.Equal(t, c.Scale(2/(1+xi)), ww)

	noWW := c.Effective(xi, false)
	assert.Equal(t, c.Scale(-2*xi/(1+xi)), noWW)
}
