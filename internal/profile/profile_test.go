package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobcf/internal/bearing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProfile = `{
  "name": "Borehole BH-1",
  "description": "Sand over clay",
  "layers": [
    {"name": "Fill", "phi": 28, "method": "meyerhof"},
    {"name": "Dense sand", "phi": -34, "method": "Vesic"},
    {"name": "Soft clay", "phi": 0}
  ]
}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndAnalyze(t *testing.T) {
	p, err := LoadFromFile(writeFile(t, sampleProfile))
	require.NoError(t, err)
	assert.Equal(t, "Borehole BH-1", p.Name)
	require.Len(t, p.Layers, 3)

	rows, err := p.Analyze()
	require.NoError(t, err)
	require.Len(t, rows, 2+len(bearing.Methods()))

	assert.Equal(t, bearing.MethodMeyerhof, rows[0].Method)
	assert.Equal(t, bearing.Meyerhof(28), rows[0].Factors)

	// Negative angle evaluated by magnitude
	assert.Equal(t, 34.0, rows[1].Phi)
	assert.Equal(t, bearing.Vesic(34), rows[1].Factors)

	clay := rows[2:]
	for i, m := range bearing.Methods() {
		assert.Equal(t, "Soft clay", clay[i].Layer)
		assert.Equal(t, m, clay[i].Method)
	}
	assert.Equal(t, 5.71, clay[0].Factors.Nc)
	assert.Equal(t, 5.14, clay[1].Factors.Nc)
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadFromFile(writeFile(t, `{"name": `))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		msg     string
	}{
		{"no layers", Profile{Name: "x"}, "at least one layer"},
		{"blank name", Profile{Layers: []Layer{{Name: " ", Phi: 30}}}, "layer 1 must have a name"},
		{"bad method", Profile{Layers: []Layer{{Name: "Sand", Phi: 30, Method: "Bishop"}}}, "Bishop"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.profile.Validate()
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}

	ok := Profile{Layers: []Layer{{Name: "Sand", Phi: 30, Method: "EC7"}}}
	assert.NoError(t, ok.Validate())
}
