package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const identityCase = `
Title: Identity
Domain:
  - {Name: x1, Min: 0, Max: 1}
Range: [0, 1]
Elements: 5
QuadratureDegree: 1000
Transform: x1
Points: [0.25, 0.75]
`

func writeCase(t *testing.T, contents string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(name, []byte(contents), 0o644))
	return name
}

func TestRunFit(t *testing.T) {
	var (
		buf    bytes.Buffer
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	)
	fm := &FitModel{
		ICFile:    writeCase(t, identityCase),
		RoundTrip: true,
		Threads:   2,
		Logger:    logger,
	}
	d, err := RunFit(&buf, fm)
	require.NoError(t, err)
	cdfMass, pdfMass := d.Mass()
	assert.InDelta(t, 1, cdfMass, 1.e-6)
	assert.InDelta(t, 1, pdfMass, 1.e-6)

	cdf, qdf, pdf, _, err := d.Evaluate([]float64{0.25, 0.75})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, cdf, 1.e-4)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, qdf, 1.e-4)
	assert.InDeltaSlice(t, []float64{1, 1}, pdf, 1.e-3)

	out := buf.String()
	assert.Contains(t, out, "\"Identity\"")
	assert.Contains(t, out, "= F(hi) - F(lo)")
	assert.Contains(t, out, "= int (Q(F(y)) - y) dy")
	assert.Contains(t, out, "    0.250000")

	// Points given on the command line replace those of the case
	buf.Reset()
	fm.RoundTrip, fm.Points = false, []float64{0.5}
	_, err = RunFit(&buf, fm)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Q(F(y))")
	assert.Contains(t, buf.String(), "    0.500000")
	assert.NotContains(t, buf.String(), "    0.250000")
}

func TestRunFitErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, c := range []struct {
		name, contents, message string
	}{
		{"missing file", "", "must supply an input parameters file"},
		{"bad transform", strings.Replace(identityCase, "Transform: x1", "Transform: x3", 1), "Transform"},
		{"bad range", strings.Replace(identityCase, "Range: [0, 1]", "Range: [1, 0]", 1), "invalid domain"},
		{"point outside", strings.Replace(identityCase, "[0.25, 0.75]", "[1.5]", 1), "evaluating"},
	} {
		fm := &FitModel{Logger: logger}
		if c.contents != "" {
			fm.ICFile = writeCase(t, c.contents)
		}
		_, err := RunFit(io.Discard, fm)
		if assert.Error(t, err, c.name) {
			assert.Contains(t, err.Error(), c.message, c.name)
		}
	}
}

func TestParsePoints(t *testing.T) {
	points, err := parsePoints([]string{"0.1", "1e-2"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.01}, points)
	_, err = parsePoints([]string{"x"})
	assert.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	{ // Logging and profiling configuration
		_, err := newLogger(io.Discard, "warn")
		assert.NoError(t, err)
		_, err = newLogger(io.Discard, "loud")
		assert.Error(t, err)
		p, err := startProfile("")
		assert.NoError(t, err)
		assert.Nil(t, p)
		_, err = startProfile("gpu")
		assert.Error(t, err)
	}
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"fit", "-I", writeCase(t, identityCase), "--points", "0.5", "--logLevel", "error"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "    0.500000")
}
