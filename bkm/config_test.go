package bkm

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceYAML = `
kinematics:
  q_squared: 1.82
  x_bjorken: 0.34
  t: -0.17
  k: 5.75
cffs:
  h: {re: -0.897, im: 2.421}
  h_tilde: {re: 2.444, im: 1.131}
  e: {re: -0.541, im: 0.903}
  e_tilde: {re: 2.207, im: 5.383}
using_ww: true
`

func TestParseConfig_Minimal_AppliesDefaults(t *testing.T) {
	// GIVEN a config with only kinematics, CFFs and using_ww
	// WHEN parsed
	cfg, err := ParseConfig([]byte(referenceYAML))
	require.NoError(t, err)

	// THEN the remaining fields take their defaults
	want, _ := referenceConfig(t)
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ParseConfig mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, cfg.TrentoConvention)
	assert.Equal(t, AllContributions(), cfg.Contributions)
}

func TestParseConfig_PartialContributions_KeepsOthersEnabled(t *testing.T) {
	data := referenceYAML + `
contributions:
  dvcs: false
trento_convention: false
lepton_helicity: -1
target_polarization: 0.5
`
	cfg, err := ParseConfig([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, Contributions{BH: true, Interference: true}, cfg.Contributions)
	assert.False(t, cfg.TrentoConvention)
	assert.Equal(t, -1.0, cfg.LeptonHelicity)
	assert.Equal(t, 0.5, cfg.TargetPolarization)
}

func TestParseConfig_UnknownKey_Rejected(t *testing.T) {
	// GIVEN a typo in a kinematics key
	data := `
kinematics:
  q_sqared: 1.82
`
	_, err := ParseConfig([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
	assert.Contains(t, err.Error(), "q_sqared")
}

func TestParseConfig_InvalidValues_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		want  string
	}{
		{"helicity", "lepton_helicity: 2\n", "lepton_helicity"},
		{"polarization", "target_polarization: 1\n", "target_polarization"},
		{"no contributions", "contributions: {bh: false, dvcs: false, interference: false}\n", "at least one"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(referenceYAML + tc.extra))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseConfig_InvalidHelicity_WrapsSentinel(t *testing.T) {
	_, err := ParseConfig([]byte(referenceYAML + "lepton_helicity: 0.5\n"))
	assert.ErrorIs(t, err, ErrInvalidHelicity)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "point.yaml")
	require.NoError(t, os.WriteFile(path, []byte(referenceYAML), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1.82, cfg.Kinematics.QSquared)
	assert.Equal(t, complex(2.207, 5.383), cfg.CFFs.ETilde)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadConfig_BundledExample(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	path := filepath.Join(filepath.Dir(thisFile), "..", "examples", "jlab_reference.yaml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want, _ := referenceConfig(t)
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("example config mismatch (-want +got):\n%s", diff)
	}
}

func TestContributions_Label(t *testing.T) {
	tests := []struct {
		c    Contributions
		want string
	}{
		{AllContributions(), ""},
		{Contributions{BH: true}, "BH"},
		{Contributions{BH: true, DVCS: true}, "BH DVCS"},
		{Contributions{DVCS: true, Interference: true}, "DVCS I"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.c.Label())
	}
}
