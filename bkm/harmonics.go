package bkm

import "math"

// Harmonics are the Fourier coefficients of one squared amplitude in the
// azimuthal angle: Σ Cos[n]·cos(nφ) + Σ Sin[n]·sin(nφ), n = 0..3.
// Sin[0] is always zero.
type Harmonics struct {
	Cos [4]float64
	Sin [4]float64
}

// Sum evaluates the Fourier series at phi.
func (h Harmonics) Sum(phi float64) float64 {
	total := h.Cos[0]
	for n := 1; n < 4; n++ {
		fn := float64(n)
		total += h.Cos[n]*math.Cos(fn*phi) + h.Sin[n]*math.Sin(fn*phi)
	}
	return total
}

// Scale returns h with every coefficient multiplied by f.
func (h Harmonics) Scale(f float64) Harmonics {
	for n := range h.Cos {
		h.Cos[n] *= f
		h.Sin[n] *= f
	}
	return h
}

func (h Harmonics) add(o Harmonics) Harmonics {
	for n := range h.Cos {
		h.Cos[n] += o.Cos[n]
		h.Sin[n] += o.Sin[n]
	}
	return h
}
