package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/kernel"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfoText(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)

	assert.Contains(t, out, "Vendor:")
	assert.Contains(t, out, "Brand:")
	assert.Contains(t, out, "Kernel:")
	for _, ft := range cpu.AllFeatures() {
		assert.Contains(t, out, ft.String())
	}
}

func TestInfoGeneric(t *testing.T) {
	out, err := execute(t, "--generic", "info", "--format", "json")
	require.NoError(t, err)

	var r infoReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "generic", r.Kernel.Implementation)
	assert.Equal(t, 1, r.Kernel.Width)
	assert.True(t, r.CPU.ForceGeneric)
	assert.Equal(t, 16, r.CPU.OptimalAlignment)
	for _, st := range r.CPU.Features {
		assert.Falsef(t, st.Supported, "%s supported under --generic", st.Name)
	}
}

func TestInfoYAML(t *testing.T) {
	out, err := execute(t, "info", "--format", "yaml")
	require.NoError(t, err)

	var r infoReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, kernel.Default().Name(), r.Kernel.Implementation)
	assert.Len(t, r.CPU.Features, len(cpu.AllFeatures()))
}

func TestInfoUnknownFormat(t *testing.T) {
	_, err := execute(t, "info", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "info")
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestVerify(t *testing.T) {
	for _, args := range [][]string{
		{"verify", "--size", "1"},
		{"verify", "--size", "1031", "--seed", "9"},
		{"--generic", "--log-json", "--log-level", "debug", "verify", "--size", "257"},
	} {
		out, err := execute(t, args...)
		require.NoError(t, err, "args %v", args)
		assert.Contains(t, out, "vector-aligned")
		assert.Contains(t, out, "vek")
		assert.Contains(t, out, "algo-vecmath")
		assert.NotContains(t, out, "FAIL")
	}
}

func TestVerifyRejectsBadSize(t *testing.T) {
	_, err := execute(t, "verify", "--size", "0")
	assert.ErrorContains(t, err, "--size")
}

func TestBench(t *testing.T) {
	e := &env{features: cpu.DetectFeatures()}
	e.logger, _ = newLogger(&bytes.Buffer{}, "warn", false)

	calls := 0
	fake := func(f func(*testing.B)) testing.BenchmarkResult {
		calls++
		return testing.BenchmarkResult{N: 1000, T: time.Millisecond}
	}

	var out bytes.Buffer
	require.NoError(t, runBench(&out, e, []int{17, 64}, fake))
	assert.Equal(t, 2*(3*len(kernel.Tiers)+3), calls)
	assert.Contains(t, out.String(), "posdiff")
	assert.Contains(t, out.String(), "algo-vecmath")

	assert.Error(t, runBench(&out, e, []int{0}, fake))
}

func TestBenchCasesRun(t *testing.T) {
	d := kernel.New()
	cases, release, err := benchCases(d, 33, 64)
	require.NoError(t, err)
	defer release()

	for _, c := range cases {
		c.fn()
		assert.Positive(t, c.bytes)
	}
}
