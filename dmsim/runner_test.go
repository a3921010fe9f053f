package dmsim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/korliakov/TensorBackend/circuit"
	"github.com/korliakov/TensorBackend/dmsim"
	"github.com/korliakov/TensorBackend/gates"
	"github.com/korliakov/TensorBackend/tableau"
)

func TestRunBellCircuit(t *testing.T) {
	c := circuit.New()
	require.NoError(t, c.Add("H", 0))
	require.NoError(t, c.Add("CNOT", 0, 1))

	rho, err := dmsim.NewDensityMatrix(2)
	require.NoError(t, err)

	final, err := dmsim.NewRunner(zaptest.NewLogger(t)).Run(c, rho, nil)
	require.NoError(t, err)

	// (|00> + |11>)/sqrt(2): corners of the matrix are 1/2.
	for _, idx := range [][2]int{{0, 0}, {0, 3}, {3, 0}, {3, 3}} {
		assert.InDelta(t, 0.5, real(final.At(idx[0], idx[1])), 1e-12)
	}
	assert.InDelta(t, 0, real(final.At(1, 1)), 1e-12)
	assert.InDelta(t, 0, real(final.At(2, 2)), 1e-12)

	// Tracing out either side of a Bell pair leaves the maximally mixed
	// state.
	reduced, err := dmsim.PartialTrace(final, []int{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, real(reduced.At(0, 0)), 1e-12)
	assert.InDelta(t, 0.5, real(reduced.At(1, 1)), 1e-12)
	assert.InDelta(t, 0.5, reduced.Purity(), 1e-12)

	// The input state is untouched.
	assert.InDelta(t, 1, real(rho.At(0, 0)), 1e-12)
}

func TestRunUnknownGateFails(t *testing.T) {
	c := circuit.New()
	require.NoError(t, c.Add("RX", 0))

	rho, err := dmsim.NewDensityMatrix(1)
	require.NoError(t, err)

	_, err = dmsim.NewRunner(zaptest.NewLogger(t)).Run(c, rho, nil)
	assert.ErrorIs(t, err, gates.ErrUnknownGate)
}

// A synthesized Clifford circuit is unitary: evolving a pure state through it
// must preserve both trace and purity.
func TestRunSynthesizedClifford(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	for _, n := range []int{1, 2, 3} {
		circ, err := tableau.RandomClifford(rng, n)
		require.NoError(t, err)

		rho, err := dmsim.NewDensityMatrix(n)
		require.NoError(t, err)

		final, err := dmsim.NewRunner(zaptest.NewLogger(t)).Run(circ, rho, nil)
		require.NoError(t, err)

		assert.InDelta(t, 1, real(final.Trace()), 1e-9, "n=%d", n)
		assert.InDelta(t, 1, final.Purity(), 1e-9, "n=%d", n)
	}
}

func TestRunWithNoiseStaysTracePreserving(t *testing.T) {
	rng := rand.New(rand.NewSource(22))

	circ, err := tableau.RandomClifford(rng, 2)
	require.NoError(t, err)

	noise, err := gates.Depolarizing(0.1)
	require.NoError(t, err)

	rho, err := dmsim.NewDensityMatrix(2)
	require.NoError(t, err)

	final, err := dmsim.NewRunner(zaptest.NewLogger(t)).Run(circ, rho, noise)
	require.NoError(t, err)

	assert.InDelta(t, 1, real(final.Trace()), 1e-9)
	assert.LessOrEqual(t, final.Purity(), 1+1e-9)
}
