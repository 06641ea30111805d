package bkm

import "math"

// CurlyCI holds the three interference CFF combinations: the full C^I and
// its vector (C^{I,V}) and axial-vector (C^{I,A}) parts.
type CurlyCI struct {
	C complex128
	V complex128
	A complex128
}

// CurlyCIUnpolarized evaluates the unpolarized-target interference
// combinations for the CFFs f.
func CurlyCIUnpolarized(k Kinematics, ff FormFactors, f CFFInputs) CurlyCI {
	f1, f2 := complex(ff.F1, 0), complex(ff.F2, 0)
	tau := complex(ff.Tau, 0)
	r := complex(k.XBjorken/(2-k.XBjorken+k.XBjorken*k.tQ), 0)
	return CurlyCI{
		C: f1*f.H - tau*f2*f.E + r*(f1+f2)*f.HTilde,
		V: r * (f1 + f2) * (f.H + f.E),
		A: r * (f1 + f2) * f.HTilde,
	}
}

// CurlyCILongitudinal evaluates the interference combinations measured with a
// longitudinally polarized target: C^I_LP and its vector and axial-vector
// parts.
func CurlyCILongitudinal(k Kinematics, ff FormFactors, f CFFInputs) CurlyCI {
	x, tQ := k.XBjorken, k.tQ
	d := 2 - x + x*tQ
	r := x / d
	half := x / 2 * (1 - tQ)
	gm := complex(r*(ff.F1+ff.F2), 0)
	v := gm * (f.H + complex(half, 0)*f.E)
	return CurlyCI{
		C: v + complex((1+k.epsSq*(3+tQ)/(4*d))*ff.F1-2*x*(1-2*x)*tQ/d*ff.F2, 0)*f.HTilde -
			complex(r*(half*ff.F1+ff.Tau*ff.F2), 0)*f.ETilde,
		V: v,
		A: gm * (f.HTilde + complex(x*x/(2*x+k.epsSq), 0)*f.ETilde),
	}
}

// triple is one (C, C^V, C^A) coefficient set.
type triple struct{ c, v, a float64 }

func (tr triple) dotReal(ci CurlyCI) float64 {
	return tr.c*real(ci.C) + tr.v*real(ci.V) + tr.a*real(ci.A)
}

func (tr triple) dotImag(ci CurlyCI) float64 {
	return tr.c*imag(ci.C) + tr.v*imag(ci.V) + tr.a*imag(ci.A)
}

// cosHelicityConserving returns the ++ cosine coefficients of harmonic n.
func cosHelicityConserving(k Kinematics, n int) triple {
	q2, x, y, t := k.QSquared, k.XBjorken, k.Y, k.T
	e2, s, tQ, yf := k.epsSq, k.root, k.tQ, k.yFactor
	kt, kk, tp := k.KTilde, k.K, k.TPrime
	ktQ := kt * kt / q2
	oneE := 1 + e2

	switch n {
	case 0:
		pre := 8 * (2 - y) / (oneE * oneE)
		return triple{
			c: -4 * (2 - y) * (1 + s) / (oneE * oneE) *
				(ktQ*(2-y)*(2-y)/s + tQ*yf*(2-x)*(1+(2*x*(2-x+(s-1)/2+e2/(2*x))*tQ+e2)/((2-x)*(1+s)))),
			v: pre * x * tQ * ((2-y)*(2-y)/s*ktQ + yf*(1+s)/2*(1+tQ)*(1+(s-1+2*x)/(1+s)*tQ)),
			a: pre * tQ * ((2-y)*(2-y)/s*ktQ*(1+s-2*x)/2 +
				yf*((1+s)/2*(1+s-x+(s-1+x*(3+s-2*x)/(1+s))*tQ)-2*ktQ)),
		}
	case 1:
		pow := math.Pow(oneE, 2.5)
		return triple{
			c: -16*kk*yf/pow*((1+(1-x)*(s-1)/(2*x)+e2/(4*x))*x*tQ-3*e2/4) -
				4*kk*(2-2*y+y*y+e2/2*y*y)*(1+s-e2)/pow*(1-(1-3*x)*tQ+(1-s+3*e2)/(1+s-e2)*x*tQ),
			v: 16 * kk / pow * x * tQ * ((2-y)*(2-y)*(1-(1-2*x)*tQ) + yf*(1+s-2*x)/2*tp/q2),
			a: -16 * kk / (oneE * oneE) * tQ *
				(yf*(1-(1-2*x)*tQ+(4*x*(1-x)+e2)/(4*s)*tp/q2) -
					(2-y)*(2-y)*(1-x/2+(1+s-2*x)/4*(1-tQ)+(4*x*(1-x)+e2)/(2*s)*tp/q2)),
		}
	case 2:
		pre := 8 * (2 - y) * yf / (oneE * oneE)
		return triple{
			c: pre * (2*e2/(s*(1+s))*ktQ + x*t*tp/(q2*q2)*(1-x-(s-1)/2+e2/(2*x))),
			v: pre * x * tQ * (4*ktQ/s + (1+s-2*x)/2*(1+tQ)*tp/q2),
			a: pre / 2 * tQ * (4*(1-2*x)*ktQ/s - (3-s-2*x+e2/x)*x*tp/q2),
		}
	case 3:
		pow := math.Pow(oneE, 2.5)
		return triple{
			c: -8 * kk * yf * (s - 1) / pow * ((1-x)*tQ + (s-1)/2*(1+tQ)),
			v: -8 * kk * yf / pow * x * tQ * (s - 1 + (1+s-2*x)*tQ),
			a: 16 * kk * yf / pow * t * tp / (q2 * q2) * (x*(1-x) + e2/4),
		}
	}
	return triple{}
}

// cosLongitudinalTransverse returns the 0+ cosine coefficients of harmonic n.
// They multiply the effective CFF combinations.
func cosLongitudinalTransverse(k Kinematics, n int) triple {
	q2, x, y := k.QSquared, k.XBjorken, k.Y
	e2, s, tQ := k.epsSq, k.root, k.tQ
	kt, kk, tp := k.KTilde, k.K, k.TPrime
	sy := math.Sqrt(k.yFactor)
	pow := math.Pow(1+e2, 2.5)
	sq := (1 + e2) * (1 + e2)

	switch n {
	case 0:
		pre := math.Sqrt2 * kk * (2 - y) * sy / pow
		return triple{
			c: 12 * pre * (e2 + (2-6*x-e2)/3*tQ),
			v: 24 * pre * x * tQ * (1 - (1-2*x)*tQ),
			a: 4 * pre * tQ * (8 - 6*x + 5*e2) * (1 - tQ*(2-12*x*(1-x)-e2)/(8-6*x+5*e2)),
		}
	case 1:
		ky := kt * (2 - y)
		return triple{
			c: 8 * math.Sqrt2 * sy / sq *
				((2-y)*(2-y)*tp/q2*(1-x+((1-x)*x+e2/4)/s*tp/q2) +
					k.yFactor/s*(1-(1-2*x)*tQ)*(e2-2*(1+e2/(2*x))*x*tQ)),
			v: 16 * math.Sqrt2 * sy / pow * x * tQ * (ky*ky/q2 + (1-(1-2*x)*tQ)*(1-(1-2*x)*tQ)*k.yFactor),
			a: 8 * math.Sqrt2 * sy / pow * tQ *
				(ky*ky*(1-2*x)/q2 + (1-(1-2*x)*tQ)*k.yFactor*(4-2*x+3*e2+tQ*(4*x*(1-x)+e2))),
		}
	case 2:
		pre := 8 * math.Sqrt2 * kk * (2 - y) * sy
		return triple{
			c: -pre / pow * (1 + e2/2) * (1 + (1+e2/(2*x))/(1+e2/2)*x*tQ),
			v: pre / pow * x * tQ * (1 - (1-2*x)*tQ),
			a: pre / sq * tQ * (1 - x + tp/(2*q2)*(4*x*(1-x)+e2)/s),
		}
	}
	return triple{}
}

// sinHelicityConserving returns the ++ sine coefficients of harmonic n for
// unit lepton helicity.
func sinHelicityConserving(k Kinematics, n int) triple {
	q2, x, y := k.QSquared, k.XBjorken, k.Y
	e2, s, tQ, yf := k.epsSq, k.root, k.tQ, k.yFactor
	kk, tp := k.K, k.TPrime
	oneE := 1 + e2

	switch n {
	case 1:
		pre := 8 * kk * (2 - y) * y
		return triple{
			c: pre / oneE * (1 + (1-x+(s-1)/2)/oneE*tp/q2),
			v: -pre / (oneE * oneE) * x * tQ * (s - 1 + (1+s-2*x)*tQ),
			a: pre / oneE * tQ * (1 - (1-2*x)*(1+s-2*x)/(2*oneE)*tp/q2),
		}
	case 2:
		pre := -4 * y * yf
		return triple{
			c: pre / math.Pow(oneE, 1.5) * (1 + s - 2*x) * tp / q2 *
				((e2-x*(s-1))/(1+s-2*x) - (2*x+e2)/(2*s)*tp/q2),
			v: pre / (oneE * oneE) * x * tQ * (1 - (1-2*x)*tQ) * (s - 1 + (1+s-2*x)*tQ),
			a: pre / (oneE * oneE) * tQ * tp / q2 * (1 + s - 2*x) * (2 - x + 3*e2/2 + (4*x*(1-x)+e2)/2*tQ),
		}
	}
	return triple{}
}

// sinLongitudinalTransverse returns the 0+ sine coefficients of harmonic n
// for unit lepton helicity.
func sinLongitudinalTransverse(k Kinematics, n int) triple {
	q2, x, y := k.QSquared, k.XBjorken, k.Y
	e2, tQ := k.epsSq, k.tQ
	sy := math.Sqrt(k.yFactor)
	sq := (1 + e2) * (1 + e2)

	switch n {
	case 1:
		pre := 8 * math.Sqrt2 * (2 - y) * y * sy / sq * k.KTilde * k.KTilde / q2
		return triple{
			c: pre,
			v: -pre * 2 * x * tQ,
			a: -pre * (1 - 2*x) * tQ,
		}
	case 2:
		pre := 8 * math.Sqrt2 * k.K * y * sy / sq
		return triple{
			c: pre * (1 + e2/2) * (1 + (1+e2/(2*x))/(1+e2/2)*x*tQ),
			v: -pre * x * tQ * (1 - (1-2*x)*tQ),
			a: -pre * tQ * (1 - x + e2/2 + (2*x*(1-x)+e2/2)*tQ),
		}
	}
	return triple{}
}

// interferenceHarmonics returns the interference Fourier coefficients.
// The result excludes the 1/(x y³ t P₁P₂) factor.
func interferenceHarmonics(k Kinematics, ff FormFactors, cffs, eff CFFInputs, lambda, bigLambda float64) Harmonics {
	x := k.XBjorken
	weight := math.Sqrt2 / (2 - x) * k.KTilde / math.Sqrt(k.QSquared)

	ci := CurlyCIUnpolarized(k, ff, cffs)
	ciEff := CurlyCIUnpolarized(k, ff, eff)

	var h Harmonics
	for n := 0; n < 4; n++ {
		h.Cos[n] = cosHelicityConserving(k, n).dotReal(ci) + weight*cosLongitudinalTransverse(k, n).dotReal(ciEff)
	}
	if lambda != 0 {
		for n := 1; n < 4; n++ {
			h.Sin[n] = lambda * (sinHelicityConserving(k, n).dotImag(ci) + weight*sinLongitudinalTransverse(k, n).dotImag(ciEff))
		}
	}

	if bigLambda == 0 {
		return h
	}
	lp := CurlyCILongitudinal(k, ff, cffs)
	lpEff := CurlyCILongitudinal(k, ff, eff)
	pol := lambda * bigLambda
	for n := 0; n < 3; n++ {
		h.Cos[n] += pol * (cosHelicityConservingLP(k, n).dotReal(lp) + weight*cosLongitudinalTransverseLP(k, n).dotReal(lpEff))
	}
	for n := 1; n < 4; n++ {
		h.Sin[n] += bigLambda * (sinHelicityConservingLP(k, n).dotImag(lp) + weight*sinLongitudinalTransverseLP(k, n).dotImag(lpEff))
	}
	return h
}
