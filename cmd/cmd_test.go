package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkm10/bkm10/bkm"
)

// referenceSigma0 is the unpolarized cross section of the bundled example
// at φ = 0.
const referenceSigma0 = 0.12847265889847323

// exampleConfig returns the path of the bundled example configuration.
func exampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join("..", "examples", "jlab_reference.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("example config not found: %v", err)
	}
	return path
}

// saveGlobals restores the package-level flag variables after the test.
func saveGlobals(t *testing.T) {
	t.Helper()
	saved := struct {
		configPath, output, plotObservable, plotOutput, batchInput, fitData string
		lambda, bigLambda, phiStart, phiEnd, coefficientPhi             float64
		phiPoints, batchSamples, batchWorkers                           int
		batchSeed                                                       int64
		fitFree                                                         []string
	}{configPath, output, plotObservable, plotOutput, batchInput, fitData,
		lambda, bigLambda, phiStart, phiEnd, coefficientPhi,
		phiPoints, batchSamples, batchWorkers, batchSeed, fitFree}
	t.Cleanup(func() {
		configPath, output, plotObservable, plotOutput, batchInput, fitData = saved.configPath, saved.output, saved.plotObservable, saved.plotOutput, saved.batchInput, saved.fitData
		lambda, bigLambda, phiStart, phiEnd, coefficientPhi = saved.lambda, saved.bigLambda, saved.phiStart, saved.phiEnd, saved.coefficientPhi
		phiPoints, batchSamples, batchWorkers, batchSeed, fitFree = saved.phiPoints, saved.batchSamples, saved.batchWorkers, saved.batchSeed, saved.fitFree
	})
}

// spinCommand returns a fresh command carrying only the spin flags.
func spinCommand() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	addSpinFlags(c)
	return c
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestPhiGridDegrees(t *testing.T) {
	got, err := phiGridDegrees(0, 360, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 90, 180, 270, 360}, got)

	one, err := phiGridDegrees(45, 90, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{45}, one)

	_, err = phiGridDegrees(0, 360, 0)
	assert.ErrorContains(t, err, "--phi-points")
	_, err = phiGridDegrees(math.NaN(), 360, 3)
	assert.Error(t, err)

	rad := degreesToRadians([]float64{180, 90})
	assert.InDelta(t, math.Pi, rad[0], 1e-15)
	assert.InDelta(t, math.Pi/2, rad[1], 1e-15)
}

func TestResolveSpins_ConfigUsedWhenFlagsUnset(t *testing.T) {
	saveGlobals(t)
	cfg := bkm.DefaultConfig()
	cfg.LeptonHelicity, cfg.TargetPolarization = -1, 0.5

	l, bl, err := resolveSpins(spinCommand(), cfg)
	require.NoError(t, err)
	assert.Equal(t, -1.0, l)
	assert.Equal(t, 0.5, bl)
}

func TestResolveSpins_ChangedFlagOverridesConfig(t *testing.T) {
	saveGlobals(t)
	cfg := bkm.DefaultConfig()
	cfg.LeptonHelicity, cfg.TargetPolarization = -1, 0.5

	// GIVEN only --lambda set explicitly
	c := spinCommand()
	require.NoError(t, c.Flags().Set("lambda", "1"))

	// THEN λ comes from the flag and Λ from the config
	l, bl, err := resolveSpins(c, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1.0, l)
	assert.Equal(t, 0.5, bl)

	require.NoError(t, c.Flags().Set("Lambda", "0.3"))
	_, _, err = resolveSpins(c, cfg)
	assert.ErrorIs(t, err, bkm.ErrInvalidPolarization)
}

func TestLoadConfig_RequiresPath(t *testing.T) {
	_, err := loadConfig("")
	assert.ErrorContains(t, err, "--config is required")
}

func TestRunSeries_CrossSection_WritesReferenceCSV(t *testing.T) {
	// GIVEN the example config and the default 0..360° grid with 16 points
	saveGlobals(t)
	configPath = exampleConfig(t)
	phiStart, phiEnd, phiPoints = 0, 360, 16
	output = filepath.Join(t.TempDir(), "sigma.csv")

	// WHEN the cross-section command runs
	require.NoError(t, runSeries(spinCommand(), bkm.ObservableCrossSection, "sigma_nb"))

	// THEN the CSV holds a header and 16 rows starting at the reference value
	rows := readCSV(t, output)
	require.Len(t, rows, 17)
	assert.Equal(t, []string{"phi_deg", "sigma_nb"}, rows[0])
	assert.Equal(t, "0", rows[1][0])
	sigma, err := strconv.ParseFloat(rows[1][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, referenceSigma0, sigma, 1e-9*referenceSigma0)
	last, err := strconv.ParseFloat(rows[16][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, sigma, last, 1e-12*sigma, "σ(0) = σ(360°)")
}

func TestRunSeries_Asymmetry_UsesObservableColumn(t *testing.T) {
	saveGlobals(t)
	configPath = exampleConfig(t)
	phiStart, phiEnd, phiPoints = 0, 180, 3
	output = filepath.Join(t.TempDir(), "bsa.csv")

	require.NoError(t, runSeries(spinCommand(), bkm.ObservableBSA, "bsa"))

	rows := readCSV(t, output)
	require.Len(t, rows, 4)
	assert.Equal(t, "bsa", rows[0][1])
	mid, err := strconv.ParseFloat(rows[2][1], 64)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(mid), 0.0)
	assert.Less(t, math.Abs(mid), 1.0)
}

func TestRunCoefficients_PrintsTable(t *testing.T) {
	saveGlobals(t)
	configPath = exampleConfig(t)
	coefficientPhi = 30

	var buf bytes.Buffer
	require.NoError(t, runCoefficients(spinCommand(), &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "family"))
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "28 coefficients")
	assert.Contains(t, out, "0 non-finite")
}

func TestRunPlot_WritesSVG(t *testing.T) {
	saveGlobals(t)
	configPath = exampleConfig(t)
	phiStart, phiEnd, phiPoints = 0, 360, 25
	plotObservable = "dsa"
	plotOutput = filepath.Join(t.TempDir(), "dsa.svg")

	require.NoError(t, runPlot(spinCommand()))

	data, err := os.ReadFile(plotOutput)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRunPlot_UnknownObservable(t *testing.T) {
	saveGlobals(t)
	plotObservable = "xsec"
	assert.ErrorContains(t, runPlot(spinCommand()), "unknown observable")
}

func TestRunBatch_GeneratedSamples(t *testing.T) {
	// GIVEN synthetic samples and no config
	saveGlobals(t)
	configPath = ""
	batchInput = ""
	batchSamples, batchSeed, batchWorkers = 32, 11, 4
	output = filepath.Join(t.TempDir(), "batch.csv")

	// WHEN
	require.NoError(t, runBatch(context.Background(), spinCommand()))

	// THEN accepted rows carry their input index and a positive σ
	rows := readCSV(t, output)
	require.NotEmpty(t, rows)
	header := rows[0]
	assert.Equal(t, "index", header[0])
	assert.Equal(t, "sigma_nb", header[len(header)-1])
	assert.LessOrEqual(t, len(rows)-1, 32)
	for _, r := range rows[1:] {
		sigma, err := strconv.ParseFloat(r[len(r)-1], 64)
		require.NoError(t, err)
		assert.Greater(t, sigma, 0.0)
	}
}

func TestRunFit_RecoversReH(t *testing.T) {
	// GIVEN pseudo-data from the example config
	saveGlobals(t)
	configPath = exampleConfig(t)
	cfg, err := bkm.LoadConfig(configPath)
	require.NoError(t, err)
	grid, err := phiGridDegrees(7.5, 352.5, 24)
	require.NoError(t, err)
	sigmas, err := evaluateSeries(seriesRequest{cfg: cfg, observable: bkm.ObservableCrossSection, phiDegrees: grid})
	require.NoError(t, err)

	var data strings.Builder
	data.WriteString("phi_deg,sigma_nb,err\n")
	for i, s := range sigmas {
		data.WriteString(strconv.FormatFloat(grid[i], 'g', -1, 64) + "," +
			strconv.FormatFloat(s, 'g', -1, 64) + "," +
			strconv.FormatFloat(0.01*s, 'g', -1, 64) + "\n")
	}
	fitData = filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(fitData, []byte(data.String()), 0o644))
	fitFree = []string{"h_re"}

	// AND a config whose Re H is displaced from the truth
	example, err := os.ReadFile(configPath)
	require.NoError(t, err)
	displaced := strings.Replace(string(example), "{re: -0.897,", "{re: 0.0,", 1)
	require.NotEqual(t, string(example), displaced)
	configPath = filepath.Join(t.TempDir(), "start.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(displaced), 0o644))

	// WHEN Re H alone is fitted
	var buf bytes.Buffer
	require.NoError(t, runFit(spinCommand(), &buf))

	// THEN the report lists the degrees of freedom and the fitted CFFs
	out := buf.String()
	assert.Contains(t, out, "dof: 23")
	assert.Contains(t, out, "status: ")
	var h complex128
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "H: ") {
			h, err = strconv.ParseComplex(strings.TrimPrefix(line, "H: "), 128)
			require.NoError(t, err)
		}
	}
	assert.InDelta(t, -0.897, real(h), 1e-3)
	assert.Equal(t, 2.421, imag(h))
}

func TestRunFit_MissingData(t *testing.T) {
	saveGlobals(t)
	configPath = exampleConfig(t)
	fitData = ""
	fitFree = []string{"h_re"}
	assert.ErrorContains(t, runFit(spinCommand(), &bytes.Buffer{}), "--data is required")
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"cross-section", "asymmetry", "coefficients", "plot", "batch", "fit"} {
		assert.True(t, names[want], want)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("log"))
	assert.NotNil(t, crossSectionCmd.Flags().Lookup("Lambda"))
}
