package bkm

import "math/cmplx"

// CurlyCDVCSUnpolarized is the bilinear CFF combination C^DVCS_unp(F|F*)
// entering the unpolarized-target DVCS amplitude squared.
func CurlyCDVCSUnpolarized(k Kinematics, ff FormFactors, f, g CFFInputs) complex128 {
	q2, x, t := k.QSquared, k.XBjorken, k.T
	tau := complex(ff.Tau, 0)

	h, ht, e, et := f.H, f.HTilde, f.E, f.ETilde
	hs, hts, es, ets := cmplx.Conj(g.H), cmplx.Conj(g.HTilde), cmplx.Conj(g.E), cmplx.Conj(g.ETilde)

	denom := (2-x)*q2 + x*t
	r := q2 * (q2 + x*t)
	pre := r / (denom * denom)

	sum := complex(4*(1-x), 0)*h*hs +
		complex(4*(1-x+(2*q2+t)/(q2+x*t)*k.epsSq/4), 0)*ht*hts -
		complex(x*x*(q2+t)*(q2+t)/r, 0)*(h*es+e*hs) -
		complex(x*x*q2*q2/r, 0)*(ht*ets+et*hts) -
		(complex(x*x*(q2+t)*(q2+t)/r, 0)+complex(denom*denom/r, 0)*tau)*e*es -
		complex(x*x*q2*q2/r, 0)*tau*et*ets
	return complex(pre, 0) * sum
}

// CurlyCDVCSLongitudinal is the helicity-difference combination
// C^DVCS_LP(F|F*) for a longitudinally polarized target.
func CurlyCDVCSLongitudinal(k Kinematics, ff FormFactors, f, g CFFInputs) complex128 {
	q2, x, t := k.QSquared, k.XBjorken, k.T

	h, ht, e, et := f.H, f.HTilde, f.E, f.ETilde
	hs, hts, es, ets := cmplx.Conj(g.H), cmplx.Conj(g.HTilde), cmplx.Conj(g.E), cmplx.Conj(g.ETilde)

	denom := (2-x)*q2 + x*t
	r := q2 * (q2 + x*t)
	pre := r / (k.root * denom * denom)

	sum := complex(4*(1-x+((3-2*x)*q2+t)/(q2+x*t)*k.epsSq/4), 0)*(h*hts+ht*hs) -
		complex(x*x*(q2-(1-2*x)*t)/(q2+x*t), 0)*(h*ets+et*hs) -
		complex((1+k.epsSq/(2*x))*x*x*(q2+t)*(q2+t)/r+x*(1-2*x)*t*denom/r, 0)*(ht*es+e*hts) -
		complex(x*x*x*(q2+t)*(q2+t)/(2*r)+x*denom/(q2+x*t)*ff.Tau, 0)*(e*ets+et*es)
	return complex(pre, 0) * sum
}

// dvcsHarmonics returns the DVCS amplitude-squared coefficients c₀, c₁
// and s₁. The result excludes the 1/(y²Q²) factor.
func dvcsHarmonics(k Kinematics, ff FormFactors, cffs, eff CFFInputs, lambda, bigLambda float64) Harmonics {
	x, y, e2, kk := k.XBjorken, k.Y, k.epsSq, k.K

	var h Harmonics
	h.Cos[0] = 2*(2-2*y+y*y+e2*y*y/2)/(1+e2)*real(CurlyCDVCSUnpolarized(k, ff, cffs, cffs)) +
		16*kk*kk/((2-x)*(2-x)*(1+e2))*real(CurlyCDVCSUnpolarized(k, ff, eff, eff))

	mixed := CurlyCDVCSUnpolarized(k, ff, eff, cffs)
	pre := 8 * kk / ((2 - x) * (1 + e2))
	h.Cos[1] = pre * (2 - y) * real(mixed)
	h.Sin[1] = pre * (-lambda * y * k.root) * imag(mixed)

	if bigLambda != 0 {
		h.Cos[0] += 2 * lambda * bigLambda * y * (2 - y) / k.root * real(CurlyCDVCSLongitudinal(k, ff, cffs, cffs))

		mixedLP := CurlyCDVCSLongitudinal(k, ff, eff, cffs)
		preLP := -8 * bigLambda * kk / ((2 - x) * (1 + e2))
		h.Cos[1] += preLP * (-lambda * y * k.root) * real(mixedLP)
		h.Sin[1] += preLP * (2 - y) * imag(mixedLP)
	}
	return h
}
