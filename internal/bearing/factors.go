package bearing

import "math"

// Limiting values of Nc at φ = 0, where (Nq-1)/tan φ is undefined
const (
	NcZeroTerzaghi = 5.71 // Terzaghi (1943)
	NcZeroPrandtl  = 5.14 // π + 2, Meyerhof / Vesic / Hansen / EC7
)

// Factors holds the three dimensionless bearing capacity factors
type Factors struct {
	Nc     float64 `json:"Nc"`     // Cohesion term
	Nq     float64 `json:"Nq"`     // Surcharge term
	Ngamma float64 `json:"Ngamma"` // Soil unit weight term
}

// Round returns a copy with every factor rounded to the given number of
// decimal places, half away from zero. A value that cannot be scaled to
// the requested precision without overflow is returned unchanged.
func (f Factors) Round(places int) Factors {
	scale := math.Pow(10, float64(places))
	r := func(v float64) float64 {
		rounded := math.Round(v*scale) / scale
		if math.IsNaN(rounded) || math.IsInf(rounded, 0) {
			return v
		}
		return rounded
	}
	return Factors{Nc: r(f.Nc), Nq: r(f.Nq), Ngamma: r(f.Ngamma)}
}

// radians converts an angle in degrees to radians
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// nqReissner is the Prandtl-Reissner surcharge factor
// Nq = e^(π tan φ) · tan²(45° + φ/2)
func nqReissner(phi float64) float64 {
	return math.Exp(math.Pi*math.Tan(radians(phi))) * math.Pow(math.Tan(radians(45+phi/2)), 2)
}

// nqTerzaghi is Terzaghi's surcharge factor
// Nq = [e^(π(0.75 - φ/360) tan φ)]² / (2 cos²(45° + φ/2))
func nqTerzaghi(phi float64) float64 {
	exponent := math.Exp(math.Pi * (0.75 - phi/360) * math.Tan(radians(phi)))
	return math.Pow(exponent, 2) / (2 * math.Pow(math.Cos(radians(45+phi/2)), 2))
}

// formula describes one method: its Nq, the Nc used at φ <= 0, and Nγ in terms of Nq
type formula struct {
	nq     func(phi float64) float64
	ncZero float64
	ngamma func(phi, nq float64) float64
}

func (f formula) compute(phi float64) Factors {
	nq := f.nq(phi)

	// Only non-positive angles take the limiting constant. Tiny positive
	// angles still divide by tan φ.
	nc := f.ncZero
	if phi > 0 {
		nc = (nq - 1) / math.Tan(radians(phi))
	}

	return Factors{
		Nc:     nc,
		Nq:     nq,
		Ngamma: f.ngamma(phi, nq),
	}
}

var (
	terzaghi = formula{
		nq:     nqTerzaghi,
		ncZero: NcZeroTerzaghi,
		ngamma: func(phi, nq float64) float64 {
			return 2 * (nq + 1) * math.Tan(radians(phi)) / (1 + 0.4*math.Sin(radians(4*phi)))
		},
	}
	meyerhof = formula{
		nq:     nqReissner,
		ncZero: NcZeroPrandtl,
		ngamma: func(phi, nq float64) float64 {
			return (nq - 1) * math.Tan(radians(1.4*phi))
		},
	}
	vesic = formula{
		nq:     nqReissner,
		ncZero: NcZeroPrandtl,
		ngamma: func(phi, nq float64) float64 {
			return 2 * (nq + 1) * math.Tan(radians(phi))
		},
	}
	hansen = formula{
		nq:     nqReissner,
		ncZero: NcZeroPrandtl,
		ngamma: func(phi, nq float64) float64 {
			return 1.5 * (nq - 1) * math.Tan(radians(phi))
		},
	}
	ec7 = formula{
		nq:     nqReissner,
		ncZero: NcZeroPrandtl,
		ngamma: func(phi, nq float64) float64 {
			return 2 * (nq - 1) * math.Tan(radians(phi))
		},
	}
)

// Terzaghi calculates bearing capacity factors using Terzaghi's method.
// phi is the angle of internal friction in degrees.
func Terzaghi(phi float64) Factors {
	return terzaghi.compute(phi)
}

// Meyerhof calculates bearing capacity factors using Meyerhof's method
func Meyerhof(phi float64) Factors {
	return meyerhof.compute(phi)
}

// Vesic calculates bearing capacity factors using Vesic's method
func Vesic(phi float64) Factors {
	return vesic.compute(phi)
}

// Hansen calculates bearing capacity factors using Hansen's method
func Hansen(phi float64) Factors {
	return hansen.compute(phi)
}

// EC7 calculates bearing capacity factors following Eurocode 7 (EN 1997-1 Annex D)
func EC7(phi float64) Factors {
	return ec7.compute(phi)
}
