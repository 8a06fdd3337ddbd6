package footing

import "math"

// Eurocode 7 material partial factors

const (
	// Set M2, used by Design Approach 1 Combination 2 (EN 1997-1 Table A.4)
	PartialFactorPhi      = 1.25 // γφ' - applied to tan φ'
	PartialFactorCohesion = 1.25 // γc' - effective cohesion

	// Default global factor of safety for allowable bearing pressure
	DefaultFactorOfSafety = 3.0
)

// DesignPhi reduces a characteristic friction angle by the partial factor
// on tan φ: φd = atan(tan φk / γφ). Angles are in degrees.
func DesignPhi(phi, gammaPhi float64) float64 {
	return math.Atan(math.Tan(phi*math.Pi/180)/gammaPhi) * 180 / math.Pi
}

// DesignCohesion reduces a characteristic cohesion by its partial factor
func DesignCohesion(c, gammaC float64) float64 {
	return c / gammaC
}
