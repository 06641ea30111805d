package bkm

import (
	"testing"

	"github.com/bkm10/bkm10/bkm/internal/testutil"
)

// referenceConfig builds a Config from the first reference case.
func referenceConfig(t *testing.T) (Config, testutil.ReferenceCase) {
	t.Helper()
	rc := testutil.LoadReferenceDataset(t).Cases[0]
	cfg := DefaultConfig()
	cfg.Kinematics = KinematicInputs{
		QSquared:   rc.Kinematics.QSquared,
		XBjorken:   rc.Kinematics.XBjorken,
		T:          rc.Kinematics.T,
		BeamEnergy: rc.Kinematics.BeamEnergy,
	}
	cfg.CFFs = CFFInputs{
		H:      testutil.Complex(rc.CFFs.H),
		HTilde: testutil.Complex(rc.CFFs.HTilde),
		E:      testutil.Complex(rc.CFFs.E),
		ETilde: testutil.Complex(rc.CFFs.ETilde),
	}
	cfg.UsingWW = rc.UsingWW
	return cfg, rc
}
