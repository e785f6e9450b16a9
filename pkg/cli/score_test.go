package cli

import (
	"encoding/json"
	"testing"

	"github.com/mchmarny/shoreline/pkg/beach"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestScoreText(t *testing.T) {
	out, err := runApp(t, "", "score")
	require.NoError(t, err)

	assert.Contains(t, out, "Escore Total: 11 → Tipo de Praia: Exposta")
	assert.Contains(t, out, "Sua Seleção: 1:20, 0.3 mm")
}

func TestScoreTextEnglish(t *testing.T) {
	out, err := runApp(t, "", "--locale", "en", "score",
		"--wave", "0", "--breaker", "0", "--fine", "0", "--redox", "0", "--tubeworms", "present")
	require.NoError(t, err)

	assert.Contains(t, out, "Total Score: 4 → Beach Type: Very Sheltered")
	assert.Contains(t, out, "Your Selection")
}

func TestScoreJSON(t *testing.T) {
	out, err := runApp(t, "", "--format", "json", "score", "--slope", "1/5")
	require.NoError(t, err)

	var res beach.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 9, res.Score)
	assert.Equal(t, beach.ClassProtected, res.Class)
	assert.Equal(t, "Protegida", res.Label)
	assert.Nil(t, res.Chart)
	assert.Equal(t, "1/5", res.Input.Slope)
}

func TestScoreJSONWithChart(t *testing.T) {
	out, err := runApp(t, "", "--format", "json", "score", "--chart")
	require.NoError(t, err)

	var res beach.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.Chart)
	assert.Len(t, res.Chart.Series, 3)
	require.NotNil(t, res.Chart.Selection)
	assert.InDelta(t, 20, res.Chart.Selection.X, 1e-9)
	assert.InDelta(t, 0.3, res.Chart.Selection.Y, 1e-9)
}

func TestScoreYAML(t *testing.T) {
	out, err := runApp(t, "", "--format", "yaml", "score", "--wave", "4", "--breaker", "2",
		"--fine", "2", "--grain", ">710", "--slope", "1/100", "--redox", "4")
	require.NoError(t, err)

	var res beach.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, 20, res.Score)
	assert.Equal(t, beach.ClassVeryExposed, res.Class)
	assert.Equal(t, beach.TubewormsAbsent, res.Input.Tubeworms)
}

func TestScoreUnknownSlope(t *testing.T) {
	out, err := runApp(t, "", "--format", "json", "score", "--slope", "1/25")
	require.NoError(t, err)

	var res beach.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	// table contributes zero: 2 + 1 + 1 + 0 + 2 + 1
	assert.Equal(t, 7, res.Score)
}

func TestScoreInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"wave out of range", []string{"score", "--wave", "9"}},
		{"negative redox", []string{"score", "--redox=-1"}},
		{"bad tubeworms", []string{"score", "--tubeworms", "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}
