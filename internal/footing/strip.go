package footing

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobcf/internal/bearing"
)

// StripFooting represents a shallow strip footing on a c-φ soil
type StripFooting struct {
	// Geometry (m)
	Width float64 // B - footing width
	Depth float64 // Df - embedment depth below ground

	// Soil
	Cohesion   float64 // c (kPa)
	UnitWeight float64 // γ (kN/m³)
	Phi        float64 // φ - angle of internal friction (degrees)
}

// NewStripFooting creates a strip footing
func NewStripFooting(width, depth, cohesion, unitWeight, phi float64) *StripFooting {
	return &StripFooting{
		Width:      width,
		Depth:      depth,
		Cohesion:   cohesion,
		UnitWeight: unitWeight,
		Phi:        phi,
	}
}

// CapacityResult holds the results of a bearing capacity calculation
type CapacityResult struct {
	Method  bearing.Method
	Phi     float64 // Angle used in the calculation (degrees)
	Factors bearing.Factors

	// Contributions to qu (kPa)
	CohesionTerm   float64 // c·Nc
	SurchargeTerm  float64 // q·Nq
	UnitWeightTerm float64 // 0.5·γ·B·Nγ

	Surcharge float64 // q = γ·Df (kPa)

	// Capacity (kPa)
	Ultimate       float64 // qu
	Allowable      float64 // qall = qu / FS
	FactorOfSafety float64

	// Capacity per metre run (kN/m)
	UltimateLine  float64
	AllowableLine float64
}

func (f *StripFooting) validate() error {
	if f.Width <= 0 {
		return fmt.Errorf("invalid footing width: B=%.3f", f.Width)
	}
	if f.Depth < 0 {
		return fmt.Errorf("invalid embedment depth: Df=%.3f", f.Depth)
	}
	if f.Cohesion < 0 || f.UnitWeight < 0 {
		return fmt.Errorf("invalid soil properties: c=%.2f, γ=%.2f", f.Cohesion, f.UnitWeight)
	}
	if f.Phi < 0 || math.IsNaN(f.Phi) || math.IsInf(f.Phi, 0) {
		return fmt.Errorf("invalid friction angle: φ=%.2f", f.Phi)
	}
	return nil
}

// Capacity calculates ultimate and allowable bearing pressure with the
// general strip footing equation qu = c·Nc + q·Nq + 0.5·γ·B·Nγ
func (f *StripFooting) Capacity(m bearing.Method, fs float64) (*CapacityResult, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if fs <= 0 {
		return nil, fmt.Errorf("invalid factor of safety: FS=%.2f", fs)
	}
	if _, err := bearing.ParseMethod(string(m)); err != nil {
		return nil, err
	}

	result := &CapacityResult{
		Method:         m,
		Phi:            f.Phi,
		Factors:        m.Compute(f.Phi),
		FactorOfSafety: fs,
	}

	result.Surcharge = f.UnitWeight * f.Depth

	result.CohesionTerm = f.Cohesion * result.Factors.Nc
	result.SurchargeTerm = result.Surcharge * result.Factors.Nq
	result.UnitWeightTerm = 0.5 * f.UnitWeight * f.Width * result.Factors.Ngamma

	result.Ultimate = result.CohesionTerm + result.SurchargeTerm + result.UnitWeightTerm
	result.Allowable = result.Ultimate / fs

	result.UltimateLine = result.Ultimate * f.Width
	result.AllowableLine = result.Allowable * f.Width

	return result, nil
}

// DesignCapacity runs the EC7 method on design values of φ and c
// obtained with the M2 partial factors
func (f *StripFooting) DesignCapacity(fs float64) (*CapacityResult, error) {
	design := *f
	design.Phi = DesignPhi(f.Phi, PartialFactorPhi)
	design.Cohesion = DesignCohesion(f.Cohesion, PartialFactorCohesion)
	return design.Capacity(bearing.MethodEC7, fs)
}
