package bearing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodsOrder(t *testing.T) {
	assert.Equal(t,
		[]Method{MethodTerzaghi, MethodMeyerhof, MethodVesic, MethodHansen, MethodEC7},
		Methods())

	// Callers cannot reorder the package list
	m := Methods()
	m[0] = MethodEC7
	assert.Equal(t, MethodTerzaghi, Methods()[0])
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"Terzaghi", MethodTerzaghi},
		{"meyerhof", MethodMeyerhof},
		{"VESIC", MethodVesic},
		{" hansen ", MethodHansen},
		{"ec7", MethodEC7},
	}
	for _, tc := range tests {
		got, err := ParseMethod(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseMethod("Bishop")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMethod)
	assert.Contains(t, err.Error(), "Bishop")
}

func TestMethodCompute(t *testing.T) {
	assert.Equal(t, Vesic(32), MethodVesic.Compute(32))
	assert.Equal(t, Terzaghi(18), MethodTerzaghi.Compute(18))

	f := Method("Bishop").Compute(30)
	assert.True(t, math.IsNaN(f.Nc))
	assert.True(t, math.IsNaN(f.Nq))
	assert.True(t, math.IsNaN(f.Ngamma))
}

func TestCompute(t *testing.T) {
	f, err := Compute("hansen", 25)
	require.NoError(t, err)
	assert.Equal(t, Hansen(25), f)

	_, err = Compute("", 25)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Terzaghi (1943)", MethodTerzaghi.Description())
	assert.Equal(t, "Custom", Method("Custom").Description())
	assert.Equal(t, "EC7", MethodEC7.String())
}

func TestSeries(t *testing.T) {
	phis, factors, err := Series(MethodMeyerhof, 0, 45, 5)
	require.NoError(t, err)
	require.Len(t, phis, 10)
	require.Len(t, factors, 10)
	assert.Equal(t, 0.0, phis[0])
	assert.Equal(t, 45.0, phis[9])
	assert.Equal(t, Meyerhof(20), factors[4])

	// Non-integral step count still stops inside the range
	phis, _, err = Series(MethodEC7, 0, 10, 0.3)
	require.NoError(t, err)
	assert.LessOrEqual(t, phis[len(phis)-1], 10.0)
	assert.Len(t, phis, 34)

	phis, _, err = Series(MethodEC7, 0, 1, 0.1)
	require.NoError(t, err)
	assert.Len(t, phis, 11)

	phis, _, err = Series(MethodVesic, 30, 30, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{30}, phis)
}

func TestSeriesErrors(t *testing.T) {
	_, _, err := Series(MethodVesic, 0, 45, 0)
	assert.Error(t, err)

	_, _, err = Series(MethodVesic, 45, 0, 5)
	assert.Error(t, err)

	for _, tc := range []struct{ from, to, step float64 }{
		{0, math.NaN(), 1},
		{0, math.Inf(1), 1},
		{math.Inf(-1), 45, 1},
		{math.NaN(), 45, 1},
		{0, 45, math.NaN()},
		{0, 45, math.Inf(1)},
	} {
		_, _, err = Series(MethodVesic, tc.from, tc.to, tc.step)
		assert.Errorf(t, err, "from=%v to=%v step=%v", tc.from, tc.to, tc.step)
	}

	_, _, err = Series(MethodVesic, 0, 1e15, 1e-3)
	assert.Error(t, err)

	phis, _, err := Series(MethodVesic, 0, MaxSeriesPoints-1, 1)
	require.NoError(t, err)
	assert.Len(t, phis, MaxSeriesPoints)

	_, _, err = Series(Method("Bishop"), 0, 45, 5)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}
