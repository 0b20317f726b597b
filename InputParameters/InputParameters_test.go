package InputParameters

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Quadratic
Domain:
  - Name: x1
    Min: 0
    Max: 1
  - {Name: x2, Min: -1, Max: 1}
Range: [0, 2]
Elements: 50
QuadratureDegree: 200
Transform: x1*x1 + x2*x2 # comments are allowed
Samples: 5
`)
	var ip FitParameters
	require.NoError(t, ip.Parse(fileInput))
	assert.Equal(t, "Quadratic", ip.Title)
	assert.Len(t, ip.Domain, 2)
	assert.Equal(t, Axis{"x2", -1, 1}, ip.Domain[1])
	assert.Equal(t, [2]float64{0, 2}, ip.Range)
	assert.Equal(t, 50, ip.Elements)
	assert.Equal(t, 200, ip.QuadratureDegree)

	domain := ip.PhysicalDomain()
	assert.Equal(t, "x1", domain[0].Name)
	assert.Equal(t, 1., domain[0].Max)
	assert.Equal(t, 2., ip.ProbabilityRange().Max)

	e, err := ip.Expression()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, e.Eval([]float64{0.5, -0.5}), 1.e-15)

	// Samples are clipped to [0,1], where the QDF is defined
	points, err := ip.EvaluationPoints()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, points)

	ip.Points = []float64{0.3}
	points, err = ip.EvaluationPoints()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.3}, points)

	var buf bytes.Buffer
	ip.Print(&buf)
	assert.Contains(t, buf.String(), "= Axis x2")
	assert.Contains(t, buf.String(), "[x1*x1 + x2*x2]")
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"Domain: [",
		"Elements: 4\nTransform: x1",
		"Domain: [{Name: x1, Min: 0, Max: 1}]\nTransform: x1",
		"Domain: [{Name: x1, Min: 0, Max: 1}]\nElements: 4",
		"Domain: [{Name: x1, Min: 0, Max: 1}]\nElements: 4\nTransform: x1\nSamples: -1",
	} {
		var ip FitParameters
		assert.Error(t, ip.Parse([]byte(input)), input)
	}
	{ // Unknown coordinate
		ip := FitParameters{Domain: []Axis{{"x1", 0, 1}}, Elements: 1, Transform: "x2"}
		_, err := ip.Expression()
		assert.Error(t, err)
	}
	{ // Samples need the range to meet [0,1]
		ip := FitParameters{Range: [2]float64{2, 3}, Samples: 3}
		_, err := ip.EvaluationPoints()
		assert.Error(t, err)
		ip.Samples = 0
		points, err := ip.EvaluationPoints()
		assert.NoError(t, err)
		assert.Empty(t, points)
	}
}
