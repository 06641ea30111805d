package fit

import (
	"fmt"
	"strings"

	"github.com/bkm10/bkm10/bkm"
)

// Parameter is one real CFF component the fit may vary.
type Parameter int

// The eight real components of the four CFFs.
const (
	HRe Parameter = iota
	HIm
	HTildeRe
	HTildeIm
	ERe
	EIm
	ETildeRe
	ETildeIm
)

var parameterNames = [...]string{
	HRe:      "h_re",
	HIm:      "h_im",
	HTildeRe: "h_tilde_re",
	HTildeIm: "h_tilde_im",
	ERe:      "e_re",
	EIm:      "e_im",
	ETildeRe: "e_tilde_re",
	ETildeIm: "e_tilde_im",
}

func (p Parameter) String() string {
	if p < 0 || int(p) >= len(parameterNames) {
		return fmt.Sprintf("Parameter(%d)", int(p))
	}
	return parameterNames[p]
}

// ParseParameters maps names such as "h_re" or "e_tilde_im" to parameters.
// Duplicates are rejected.
func ParseParameters(names []string) ([]Parameter, error) {
	seen := make(map[Parameter]bool, len(names))
	params := make([]Parameter, 0, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		p, ok := lookupParameter(name)
		if !ok {
			return nil, fmt.Errorf("unknown fit parameter %q (valid: %s)", raw, strings.Join(parameterNames[:], ", "))
		}
		if seen[p] {
			return nil, fmt.Errorf("fit parameter %q listed twice", raw)
		}
		seen[p] = true
		params = append(params, p)
	}
	return params, nil
}

func lookupParameter(name string) (Parameter, bool) {
	for i, n := range parameterNames {
		if n == name {
			return Parameter(i), true
		}
	}
	return 0, false
}

// get returns the component of c selected by p.
func (p Parameter) get(c bkm.CFFInputs) float64 {
	switch p {
	case HRe:
		return real(c.H)
	case HIm:
		return imag(c.H)
	case HTildeRe:
		return real(c.HTilde)
	case HTildeIm:
		return imag(c.HTilde)
	case ERe:
		return real(c.E)
	case EIm:
		return imag(c.E)
	case ETildeRe:
		return real(c.ETilde)
	case ETildeIm:
		return imag(c.ETilde)
	}
	return 0
}

// set returns c with the component selected by p replaced by v.
func (p Parameter) set(c bkm.CFFInputs, v float64) bkm.CFFInputs {
	switch p {
	case HRe:
		c.H = complex(v, imag(c.H))
	case HIm:
		c.H = complex(real(c.H), v)
	case HTildeRe:
		c.HTilde = complex(v, imag(c.HTilde))
	case HTildeIm:
		c.HTilde = complex(real(c.HTilde), v)
	case ERe:
		c.E = complex(v, imag(c.E))
	case EIm:
		c.E = complex(real(c.E), v)
	case ETildeRe:
		c.ETilde = complex(v, imag(c.ETilde))
	case ETildeIm:
		c.ETilde = complex(real(c.ETilde), v)
	}
	return c
}
