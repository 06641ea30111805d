// Package plot renders BKM10 observables against the azimuthal angle.
package plot

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bkm10/bkm10/bkm"
	"github.com/bkm10/bkm10/internal/atomicfile"
)

// Default image size.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// Options select what to draw.
type Options struct {
	Observable         bkm.Observable
	PhiDegrees         []float64 // evaluation grid, degrees
	LeptonHelicity     float64
	TargetPolarization float64
}

// New evaluates the observable on the grid and returns a line plot with
// φ in degrees on the x axis. The title lists the kinematics and CFFs; the
// y label names the enabled contributions when not all are on.
func New(d *bkm.DifferentialCrossSection, opts Options) (*plot.Plot, error) {
	if len(opts.PhiDegrees) == 0 {
		return nil, fmt.Errorf("plot: empty φ grid")
	}
	phis := make([]float64, len(opts.PhiDegrees))
	for i, deg := range opts.PhiDegrees {
		phis[i] = deg * math.Pi / 180
	}
	values, err := d.Evaluate(opts.Observable, phis, opts.LeptonHelicity, opts.TargetPolarization)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}

	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = opts.PhiDegrees[i]
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)

	p := plot.New()
	p.Title.Text = Title(d.Config())
	p.X.Label.Text = "φ (deg)"
	p.Y.Label.Text = YLabel(opts.Observable, d.Config().Contributions)
	p.Add(plotter.NewGrid(), line, scatter)
	return p, nil
}

// Title summarises the kinematic point and CFFs on two lines.
func Title(cfg bkm.Config) string {
	k, c := cfg.Kinematics, cfg.CFFs
	return fmt.Sprintf("Q²=%.3g GeV², x_B=%.3g, t=%.3g GeV², k=%.3g GeV\nH=%s  H̃=%s  E=%s  Ẽ=%s",
		k.QSquared, k.XBjorken, k.T, k.BeamEnergy,
		formatComplex(c.H), formatComplex(c.HTilde), formatComplex(c.E), formatComplex(c.ETilde))
}

// YLabel is the observable's label, suffixed with the active contributions
// when only some are enabled.
func YLabel(o bkm.Observable, c bkm.Contributions) string {
	if label := c.Label(); label != "" {
		return fmt.Sprintf("%s [%s]", o.Label(), label)
	}
	return o.Label()
}

func formatComplex(z complex128) string {
	return fmt.Sprintf("%.3g%+.3gi", real(z), imag(z))
}

// Render writes p in the given format ("png", "svg", "pdf", ...).
func Render(w io.Writer, p *plot.Plot, width, height vg.Length, format string) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save atomically writes p to path, choosing the format from the file
// extension.
func Save(path string, p *plot.Plot, width, height vg.Length) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("plot: %s has no file extension to choose a format from", path)
	}
	// Fail on unsupported formats before touching the destination.
	if _, err := p.WriterTo(width, height, format); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	logrus.Debugf("plot: writing %s (%s)", path, format)
	return atomicfile.Write(path, func(w io.Writer) error {
		return Render(w, p, width, height, format)
	})
}
