package profile

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gobcf/internal/bearing"
)

// Profile is a named set of soil layers to evaluate
type Profile struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Layers []Layer `json:"layers"`
}

// Layer is one soil stratum
type Layer struct {
	Name string  `json:"name"`
	Phi  float64 `json:"phi"` // Angle of internal friction (degrees)

	// Method to apply; empty evaluates every method
	Method string `json:"method,omitempty"`
}

// Methods returns the methods to evaluate for the layer
func (l Layer) Methods() ([]bearing.Method, error) {
	if strings.TrimSpace(l.Method) == "" {
		return bearing.Methods(), nil
	}
	m, err := bearing.ParseMethod(l.Method)
	if err != nil {
		return nil, err
	}
	return []bearing.Method{m}, nil
}

// Validate checks if the profile definition is valid
func (p *Profile) Validate() error {
	if len(p.Layers) == 0 {
		return &ValidationError{"profile must have at least one layer"}
	}
	for i, layer := range p.Layers {
		if strings.TrimSpace(layer.Name) == "" {
			return &ValidationError{fmt.Sprintf("layer %d must have a name", i+1)}
		}
		if _, err := layer.Methods(); err != nil {
			return &ValidationError{fmt.Sprintf("layer %d (%s): %v", i+1, layer.Name, err)}
		}
	}
	return nil
}

// ValidationError represents a profile validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
