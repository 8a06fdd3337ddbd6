package bearing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Method identifies a bearing capacity theory
type Method string

const (
	MethodTerzaghi Method = "Terzaghi"
	MethodMeyerhof Method = "Meyerhof"
	MethodVesic    Method = "Vesic"
	MethodHansen   Method = "Hansen"
	MethodEC7      Method = "EC7"
)

// ErrUnknownMethod is returned when a method name does not match any theory
var ErrUnknownMethod = errors.New("unknown bearing capacity method")

// MaxSeriesPoints bounds the length of a tabulated range
const MaxSeriesPoints = 100000

var methods = []Method{MethodTerzaghi, MethodMeyerhof, MethodVesic, MethodHansen, MethodEC7}

var calculators = map[Method]func(float64) Factors{
	MethodTerzaghi: Terzaghi,
	MethodMeyerhof: Meyerhof,
	MethodVesic:    Vesic,
	MethodHansen:   Hansen,
	MethodEC7:      EC7,
}

var descriptions = map[Method]string{
	MethodTerzaghi: "Terzaghi (1943)",
	MethodMeyerhof: "Meyerhof (1963)",
	MethodVesic:    "Vesic (1973)",
	MethodHansen:   "Hansen (1970)",
	MethodEC7:      "Eurocode 7, EN 1997-1 Annex D",
}

// Methods returns all supported methods in canonical order
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// ParseMethod looks up a method by name, ignoring case and surrounding space
func ParseMethod(name string) (Method, error) {
	trimmed := strings.TrimSpace(name)
	for _, m := range methods {
		if strings.EqualFold(string(m), trimmed) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

func (m Method) String() string {
	return string(m)
}

// Description returns the reference the method is usually cited by
func (m Method) Description() string {
	if d, ok := descriptions[m]; ok {
		return d
	}
	return string(m)
}

// Compute evaluates the method at phi (degrees). An unrecognized method
// yields NaN factors.
func (m Method) Compute(phi float64) Factors {
	calc, ok := calculators[m]
	if !ok {
		return Factors{Nc: math.NaN(), Nq: math.NaN(), Ngamma: math.NaN()}
	}
	return calc(phi)
}

// Compute parses the method name and evaluates it at phi (degrees)
func Compute(name string, phi float64) (Factors, error) {
	m, err := ParseMethod(name)
	if err != nil {
		return Factors{}, err
	}
	return m.Compute(phi), nil
}

// Series tabulates a method over the inclusive range [from, to] in steps of step
func Series(m Method, from, to, step float64) ([]float64, []Factors, error) {
	if _, ok := calculators[m]; !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}
	if !isFinite(from) || !isFinite(to) || !isFinite(step) {
		return nil, nil, fmt.Errorf("invalid range: from=%v, to=%v, step=%v (must be finite)", from, to, step)
	}
	if step <= 0 {
		return nil, nil, fmt.Errorf("invalid step: %.4f (must be positive)", step)
	}
	if to < from {
		return nil, nil, fmt.Errorf("invalid range: from=%.2f > to=%.2f", from, to)
	}

	// φ is derived from the index, never accumulated. The 1e-9 slack keeps
	// the end point when (to-from)/step is integral.
	count := math.Floor((to-from)/step+1e-9) + 1
	if count > MaxSeriesPoints {
		return nil, nil, fmt.Errorf("range too long: %.0f points (max %d)", count, MaxSeriesPoints)
	}
	n := int(count)
	phis := make([]float64, 0, n)
	factors := make([]Factors, 0, n)
	for i := 0; i < n; i++ {
		phi := from + float64(i)*step
		phis = append(phis, phi)
		factors = append(factors, m.Compute(phi))
	}
	return phis, factors, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
