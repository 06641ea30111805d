package bkm

// bhHarmonics returns the Bethe–Heitler Fourier coefficients c₀, c₁, c₂
// for lepton helicity lambda and longitudinal target polarization
// bigLambda. The result excludes the 1/(x²y²(1+ε²)² t P₁P₂) factor.
func bhHarmonics(k Kinematics, ff FormFactors, lambda, bigLambda float64) Harmonics {
	x, y, t := k.XBjorken, k.Y, k.T
	e2, tQ, kk := k.epsSq, k.tQ, k.K
	m2 := ProtonMass * ProtonMass
	f1, f2, tau := ff.F1, ff.F2, ff.Tau

	a := f1*f1 - tau*f2*f2 // F₁² - τF₂²
	sum := f1 + f2         // G_M
	b := sum * sum

	var h Harmonics
	h.Cos[0] = 8*kk*kk*((2+3*e2)/tQ*a+2*x*x*b) +
		(2-y)*(2-y)*((2+e2)*(4*x*x*m2/t*(1+tQ)*(1+tQ)+4*(1-x)*(1+x*tQ))*a+
			4*x*x*(x+(1-x+e2/2)*(1-tQ)*(1-tQ)-x*(1-2*x)*tQ*tQ)*b) +
		8*(1+e2)*k.yFactor*(2*e2*(1-tau)*a-x*x*(1-tQ)*(1-tQ)*b)
	h.Cos[1] = 8 * kk * (2 - y) * ((4*x*x*m2/t-2*x-e2)*a + 2*x*x*(1-(1-2*x)*tQ)*b)
	h.Cos[2] = 8 * x * x * kk * kk * (4*m2/t*a + 2*b)

	if pol := lambda * bigLambda; pol != 0 {
		fTau := f1 + tau*f2
		h.Cos[0] += 8 * pol * x * y * (2 - y) * k.root / (1 - tau) * sum *
			(0.5*(x/2*(1-tQ)-tau)*(2-x-2*(1-x)*(1-x)*tQ+e2*(1-tQ)-x*(1-2*x)*tQ*tQ)*sum +
				(1-(1-x)*tQ)*(x*x*m2/t*(1+tQ)*(1+tQ)+(1-x)*(1+x*tQ))*fTau)
		h.Cos[1] -= 8 * pol * x * y * kk * k.root / (1 - tau) * sum *
			((t/(2*m2)-x*(1-tQ))*(1-x+x*tQ)*sum +
				(1+x-(3-2*x)*(1+x*tQ)-4*x*x*m2/t*(1+tQ*tQ))*fTau)
	}
	return h
}
