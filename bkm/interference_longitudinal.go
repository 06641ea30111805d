package bkm

import "math"

// cosHelicityConservingLP returns the ++ cosine coefficients of harmonic n
// for a longitudinally polarized target. They multiply λΛ and the real parts
// of CurlyCILongitudinal.
func cosHelicityConservingLP(k Kinematics, n int) triple {
	q2, x, y := k.QSquared, k.XBjorken, k.Y
	e2, s, tQ, yf := k.epsSq, k.root, k.tQ, k.yFactor
	ktQ := k.KTilde * k.KTilde / q2
	tpQ := k.TPrime / q2
	y2 := (2 - y) * (2 - y)
	pow := math.Pow(1+e2, 2.5)

	switch n {
	case 0:
		pre := 2 * y / pow
		return triple{
			c: pre * (-2*(1+s)*y2*ktQ +
				yf*(e2*(1+s)-2*tQ*(e2+x*(1+s-e2))+tQ*tQ*(e2*(1-s)+2*x*(1-s-e2)-4*x*x))),
			v: pre * tQ * (2*y2*ktQ*(1+s-2*x) +
				yf*((1+s)*(4+3*e2-2*x)+
					tQ*(4*(s-1)+2*e2*(2*s-1)+2*x*(7+3*e2+s)-4*x*x*(2+s))+
					tQ*tQ*(e2*(s-1)+2*x*(2*s+e2-2)+4*x*x*(3-s)-8*x*x*x))),
			a: pre * tQ * (2*y2*ktQ*(e2+2*x) +
				yf*((1+s)*(e2+2*x)+
					tQ*(-2*e2-2*x*(2-2*e2-e2*s)+4*x*x*(2+s))+
					tQ*tQ*(e2*(1-s)+2*x*(1-2*e2-s+e2*s)+4*x*x*(e2+s-2)+8*x*x*x))),
		}
	case 1:
		pre := 4 * k.K * y * (2 - y) / pow
		return triple{
			c: -pre * ((1+s-e2)*(1-tQ) + 2*x*(2+s)*tQ),
			v: pre * tQ * (5 + 3*e2 + s - 4*x - tQ*(1+s-e2-2*x*(4+s)+8*x*x)),
			a: 2 * pre * tQ * (e2 + 2*x - tQ*(e2+2*x*(1-e2)-4*x*x)),
		}
	case 2:
		pre := 2 * y * yf * tpQ / pow
		return triple{
			c: pre * (-e2*(1+s-2*x) + tQ*(e2*(1+s)+2*x*(1+s-e2)-4*x*x)),
			v: pre * tQ * (-(4+3*e2)*(1+s) + 2*x*(5+3*e2+s) - 4*x*x +
				tQ*(-e2*(1+s)-2*x*(2-e2+2*s)+4*x*x*(3+s)-8*x*x*x)),
			a: pre * tQ * (-e2*(1+s) - 2*x*(1+s-e2) + 4*x*x +
				tQ*(e2*(1+s)+2*x*(1+s-2*e2-e2*s)-4*x*x*(2+s-e2)+8*x*x*x)),
		}
	}
	return triple{}
}

// sinHelicityConservingLP returns the ++ sine coefficients of harmonic n for
// a longitudinally polarized target. They multiply Λ and the imaginary parts
// of CurlyCILongitudinal.
func sinHelicityConservingLP(k Kinematics, n int) triple {
	q2, x, y := k.QSquared, k.XBjorken, k.Y
	e2, s, tQ, yf := k.epsSq, k.root, k.tQ, k.yFactor
	tpQ := k.TPrime / q2
	y2 := (2 - y) * (2 - y)
	pow := (1 + e2) * (1 + e2) * (1 + e2)

	switch n {
	case 1:
		pre := 2 * k.K / pow
		return triple{
			c: pre * (y2*(2+4*e2+2*s+tQ*(2+2*s-4*x)) -
				yf*(2*(1+s)*(1+s)+tQ*(2*e2+8*s+4*x*(1-s)))),
			v: pre * tQ * (y2*(6+4*e2-2*s-4*x*(1-s)-tQ*(2+2*s-4*x*(2+s)+8*x*x)) +
				yf*(4+2*e2+4*s-4*x*(1+3*s)+tQ*(2*e2+8*s+8*x*(1-2*s)-8*x*x))),
			a: pre * tQ * (y2*tpQ*(-2*e2*(1+s)-4*x*(1+s-e2)+8*x*x) +
				yf*(2*e2*(1+3*s)+4*x*(1+3*s)+tQ*(2*e2*(3*s-1)+4*x*(3*s+e2-1)+8*x*x))),
		}
	case 2:
		pre := 2 * (2 - y) * yf * tpQ / pow
		return triple{
			c: pre * (-2*e2*(1+s-2*x) + tQ*(2*e2+2*x*(3-e2-s)-4*x*x*(2-s))),
			v: pre * tQ * (-(4+2*e2)*(1+s) + 2*x*(7+3*e2+3*s) - 4*x*x*(2+s) +
				tQ*(-2*e2-4*x*(2-e2)+24*x*x-16*x*x*x)),
			a: pre * tQ * (-e2*(3+e2+3*s) - 2*x*(3-e2)*(1+s) + 4*x*x*(2+s) +
				tQ*(e2*(1-e2+s)+2*x*(1-5*e2+s-e2*s)-4*x*x*(4-2*e2+s)+16*x*x*x)),
		}
	case 3:
		pre := 2 * k.K * yf * tpQ / pow
		return triple{
			c: pre * (-2*e2 - 4*x*(1-s)),
			v: pre * tQ * (2*e2 + 8*x*(1-x)),
			a: pre * tQ * (-2*e2*(1+s) - 4*x*(1+s-e2) + 8*x*x),
		}
	}
	return triple{}
}

// cosLongitudinalTransverseLP returns the 0+ cosine coefficients of harmonic
// n for a longitudinally polarized target. Like cosLongitudinalTransverse
// they multiply the effective CFF combinations.
func cosLongitudinalTransverseLP(k Kinematics, n int) triple {
	q2, x, y := k.QSquared, k.XBjorken, k.Y
	e2, tQ, yf := k.epsSq, k.tQ, k.yFactor
	kt := k.KTilde / math.Sqrt(q2)
	sq := (1 + e2) * (1 + e2)

	switch n {
	case 0:
		pre := math.Sqrt2 * kt * y * yf * tQ / sq
		return triple{
			c: 8 * pre * (1 - x),
			v: 8 * pre * (x - (1-2*x)*tQ),
			a: -4 * pre * (e2 + 2*x) * (1 + tQ),
		}
	case 1:
		pre := -8 * math.Sqrt2 * math.Sqrt(yf) * y * (2 - y) * kt * kt / sq
		return triple{
			c: pre,
			v: -pre * tQ,
		}
	case 2:
		pre := -8 * math.Sqrt2 * kt * y * yf / sq
		return triple{
			c: pre * (1 + x*tQ),
			v: -pre * tQ * (1 - x),
			a: -pre / 2 * tQ * (e2 + 2*x) * (1 + tQ),
		}
	}
	return triple{}
}

// sinLongitudinalTransverseLP returns the 0+ sine coefficients of harmonic n
// for a longitudinally polarized target and the effective CFF combinations.
func sinLongitudinalTransverseLP(k Kinematics, n int) triple {
	q2, x, y := k.QSquared, k.XBjorken, k.Y
	e2, tQ, yf := k.epsSq, k.tQ, k.yFactor
	kt := k.KTilde / math.Sqrt(q2)
	y2 := (2 - y) * (2 - y)
	pow := math.Pow(1+e2, 2.5)

	switch n {
	case 1:
		pre := 8 * math.Sqrt2 * math.Sqrt(yf) / pow
		return triple{
			c: pre * (y2*kt*kt + yf*(-e2+2*x*tQ+(e2+2*x)*tQ*tQ)),
			v: pre * tQ * (-y2*kt*kt +
				yf*(-4-3*e2+2*x-tQ*(4*(1+e2)+2*x-4*x*x)-tQ*tQ*(e2+4*x-4*x*x))),
			a: pre * tQ * yf * (-e2 - 2*x - 2*x*tQ*(e2+2*x) + tQ*tQ*(e2+2*x*(1-e2)-4*x*x)),
		}
	case 2:
		pre := 8 * math.Sqrt2 * kt * (2 - y) * yf / pow
		return triple{
			c: pre * (1 + x*tQ),
			v: -pre * tQ * (1 - x),
			a: -pre / 2 * tQ * (e2 + 2*x) * (1 + tQ),
		}
	}
	return triple{}
}
