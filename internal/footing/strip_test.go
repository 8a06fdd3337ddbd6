package footing

import (
	"testing"

	"github.com/alexiusacademia/gobcf/internal/bearing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityTerms(t *testing.T) {
	f := NewStripFooting(2.0, 1.5, 10, 18, 30)

	r, err := f.Capacity(bearing.MethodVesic, 3)
	require.NoError(t, err)

	nf := bearing.Vesic(30)
	assert.Equal(t, nf, r.Factors)
	assert.InDelta(t, 27.0, r.Surcharge, 1e-9)
	assert.InDelta(t, 10*nf.Nc, r.CohesionTerm, 1e-9)
	assert.InDelta(t, 27*nf.Nq, r.SurchargeTerm, 1e-9)
	assert.InDelta(t, 0.5*18*2*nf.Ngamma, r.UnitWeightTerm, 1e-9)
	assert.InDelta(t, r.CohesionTerm+r.SurchargeTerm+r.UnitWeightTerm, r.Ultimate, 1e-9)
	assert.InDelta(t, r.Ultimate/3, r.Allowable, 1e-9)
	assert.InDelta(t, r.Ultimate*2, r.UltimateLine, 1e-9)

	// 10·30.14 + 27·18.40 + 18·22.40
	assert.InDelta(t, 1201.5, r.Ultimate, 0.5)
}

func TestCapacityUndrainedClay(t *testing.T) {
	// φ = 0: qu = c·Nc + q
	f := NewStripFooting(1.0, 1.0, 50, 19, 0)

	r, err := f.Capacity(bearing.MethodTerzaghi, DefaultFactorOfSafety)
	require.NoError(t, err)
	assert.InDelta(t, 50*5.71+19, r.Ultimate, 1e-9)

	r, err = f.Capacity(bearing.MethodHansen, DefaultFactorOfSafety)
	require.NoError(t, err)
	assert.InDelta(t, 50*5.14+19, r.Ultimate, 1e-9)
}

func TestCapacityErrors(t *testing.T) {
	tests := []struct {
		name    string
		footing *StripFooting
		method  bearing.Method
		fs      float64
	}{
		{"zero width", NewStripFooting(0, 1, 0, 18, 30), bearing.MethodEC7, 3},
		{"negative depth", NewStripFooting(1, -1, 0, 18, 30), bearing.MethodEC7, 3},
		{"negative cohesion", NewStripFooting(1, 1, -5, 18, 30), bearing.MethodEC7, 3},
		{"negative unit weight", NewStripFooting(1, 1, 0, -18, 30), bearing.MethodEC7, 3},
		{"negative phi", NewStripFooting(2, 0, 0, 18, -30), bearing.MethodTerzaghi, 3},
		{"zero FS", NewStripFooting(1, 1, 0, 18, 30), bearing.MethodEC7, 0},
		{"unknown method", NewStripFooting(1, 1, 0, 18, 30), bearing.Method("Bishop"), 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.footing.Capacity(tc.method, tc.fs)
			assert.Error(t, err)
			assert.Nil(t, r)
		})
	}
}

func TestDesignPhi(t *testing.T) {
	// tan 30° / 1.25 = 0.4619 → 24.79°
	assert.InDelta(t, 24.79, DesignPhi(30, PartialFactorPhi), 0.01)
	assert.InDelta(t, 0.0, DesignPhi(0, PartialFactorPhi), 1e-12)
	assert.InDelta(t, 30.0, DesignPhi(30, 1), 1e-9)
	assert.InDelta(t, 8.0, DesignCohesion(10, PartialFactorCohesion), 1e-12)
}

func TestDesignCapacity(t *testing.T) {
	f := NewStripFooting(1.5, 1.0, 5, 18, 32)

	r, err := f.DesignCapacity(1)
	require.NoError(t, err)
	assert.Equal(t, bearing.MethodEC7, r.Method)
	assert.InDelta(t, DesignPhi(32, PartialFactorPhi), r.Phi, 1e-12)
	assert.InDelta(t, 4*r.Factors.Nc, r.CohesionTerm, 1e-9)

	// Original footing is untouched and the characteristic capacity is larger
	assert.Equal(t, 32.0, f.Phi)
	ch, err := f.Capacity(bearing.MethodEC7, 1)
	require.NoError(t, err)
	assert.Greater(t, ch.Ultimate, r.Ultimate)
}
