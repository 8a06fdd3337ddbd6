package profile

import (
	"encoding/json"
	"math"
	"os"

	"github.com/alexiusacademia/gobcf/internal/bearing"
)

// LoadFromFile loads a profile definition from a JSON file
func LoadFromFile(filepath string) (*Profile, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Row is the factor set of one layer under one method
type Row struct {
	Layer   string          `json:"layer"`
	Phi     float64         `json:"phi"`
	Method  bearing.Method  `json:"method"`
	Factors bearing.Factors `json:"factors"`
}

// Analyze evaluates every layer. Negative angles are taken by magnitude.
func (p *Profile) Analyze() ([]Row, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var rows []Row
	for _, layer := range p.Layers {
		methods, err := layer.Methods()
		if err != nil {
			return nil, err
		}
		phi := math.Abs(layer.Phi)
		for _, m := range methods {
			rows = append(rows, Row{
				Layer:   layer.Name,
				Phi:     phi,
				Method:  m,
				Factors: m.Compute(phi),
			})
		}
	}
	return rows, nil
}
