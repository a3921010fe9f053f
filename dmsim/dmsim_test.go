package dmsim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korliakov/TensorBackend/dmsim"
	"github.com/korliakov/TensorBackend/gates"
)

func pureState(t *testing.T, n, basis int) *dmsim.DensityMatrix {
	t.Helper()
	rho, err := dmsim.NewDensityMatrix(n)
	require.NoError(t, err)
	rho.Data[0] = 0
	rho.Data[basis*rho.Dim()+basis] = 1
	return rho
}

func assertDiagonalOne(t *testing.T, rho *dmsim.DensityMatrix, basis int) {
	t.Helper()
	dim := rho.Dim()
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			want := 0.0
			if i == basis && j == basis {
				want = 1.0
			}
			assert.InDelta(t, want, real(rho.At(i, j)), 1e-12, "(%d,%d)", i, j)
			assert.InDelta(t, 0, imag(rho.At(i, j)), 1e-12, "(%d,%d)", i, j)
		}
	}
}

func TestNewDensityMatrix(t *testing.T) {
	rho, err := dmsim.NewDensityMatrix(2)
	require.NoError(t, err)
	assert.Equal(t, 4, rho.Dim())
	assert.InDelta(t, 1, real(rho.Trace()), 1e-12)
	assert.InDelta(t, 1, rho.Purity(), 1e-12)

	_, err = dmsim.NewDensityMatrix(0)
	assert.ErrorIs(t, err, dmsim.ErrDimension)
}

func TestIdentityGateLeavesState(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	rho, err := dmsim.RandomDensityMatrix(rng, 3)
	require.NoError(t, err)

	final, err := dmsim.GateAction(gates.I(), rho, []int{1})
	require.NoError(t, err)
	for i := range rho.Data {
		assert.InDelta(t, real(rho.Data[i]), real(final.Data[i]), 1e-12)
		assert.InDelta(t, imag(rho.Data[i]), imag(final.Data[i]), 1e-12)
	}
}

func TestXFlipsSingleQubit(t *testing.T) {
	rho := pureState(t, 1, 0)
	final, err := dmsim.GateAction(gates.X(), rho, []int{0})
	require.NoError(t, err)
	assertDiagonalOne(t, final, 1)
}

// Qubit 0 is the most significant bit of the basis index: X on qubit 1 of
// |000> gives |010>.
func TestXOnMiddleQubit(t *testing.T) {
	rho := pureState(t, 3, 0)
	final, err := dmsim.GateAction(gates.X(), rho, []int{1})
	require.NoError(t, err)
	assertDiagonalOne(t, final, 2)
}

func TestHadamardOnGround(t *testing.T) {
	rho := pureState(t, 1, 0)
	final, err := dmsim.GateAction(gates.H(), rho, []int{0})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, 0.5, real(final.At(i, j)), 1e-12)
		}
	}
	assert.InDelta(t, 1, final.Purity(), 1e-12)
}

func TestCNOTControlOrder(t *testing.T) {
	// |10>: control qubit 0 set, target clear -> |11>.
	rho := pureState(t, 2, 2)
	final, err := dmsim.GateAction(gates.CNOT(), rho, []int{0, 1})
	require.NoError(t, err)
	assertDiagonalOne(t, final, 3)

	// Reversed index list swaps the roles: with the control on qubit 1,
	// |01> -> |11>.
	rho = pureState(t, 2, 1)
	final, err = dmsim.GateAction(gates.CNOT(), rho, []int{1, 0})
	require.NoError(t, err)
	assertDiagonalOne(t, final, 3)
}

func TestCNOTOnInnerQubits(t *testing.T) {
	// |011>: qubit 1 controls qubit 2 -> |010>.
	rho := pureState(t, 3, 3)
	final, err := dmsim.GateAction(gates.CNOT(), rho, []int{1, 2})
	require.NoError(t, err)
	assertDiagonalOne(t, final, 2)
}

func TestGateActionValidation(t *testing.T) {
	rho := pureState(t, 2, 0)

	_, err := dmsim.GateAction(gates.CNOT(), rho, []int{0})
	assert.ErrorIs(t, err, dmsim.ErrDimension)

	_, err = dmsim.GateAction(gates.CNOT(), rho, []int{0, 0})
	assert.ErrorIs(t, err, dmsim.ErrDimension)

	_, err = dmsim.GateAction(gates.X(), rho, []int{2})
	assert.ErrorIs(t, err, dmsim.ErrDimension)
}

func TestIdentityChannel(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	rho, err := dmsim.RandomDensityMatrix(rng, 2)
	require.NoError(t, err)

	final, err := dmsim.ChannelAction(gates.Channel{gates.I()}, rho, []int{0})
	require.NoError(t, err)
	for i := range rho.Data {
		assert.InDelta(t, real(rho.Data[i]), real(final.Data[i]), 1e-12)
	}
}

func TestFullDepolarizing(t *testing.T) {
	ch, err := gates.Depolarizing(1)
	require.NoError(t, err)

	rho := pureState(t, 1, 0)
	final, err := dmsim.ChannelAction(ch, rho, []int{0})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, real(final.At(0, 0)), 1e-12)
	assert.InDelta(t, 0.5, real(final.At(1, 1)), 1e-12)
	assert.InDelta(t, 0, real(final.At(0, 1)), 1e-12)
	assert.InDelta(t, 0.5, final.Purity(), 1e-12)
}

func TestFullAmplitudeDamping(t *testing.T) {
	ch, err := gates.AmplitudeDamping(1)
	require.NoError(t, err)

	rho := pureState(t, 1, 1)
	final, err := dmsim.ChannelAction(ch, rho, []int{0})
	require.NoError(t, err)
	assertDiagonalOne(t, final, 0)
}

func TestBitFlipPreservesTrace(t *testing.T) {
	ch, err := gates.BitFlip(0.3)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(8))
	rho, err := dmsim.RandomDensityMatrix(rng, 2)
	require.NoError(t, err)

	final, err := dmsim.ChannelAction(ch, rho, []int{1})
	require.NoError(t, err)
	assert.InDelta(t, 1, real(final.Trace()), 1e-10)
}

func TestPartialTraceProductState(t *testing.T) {
	// |01><01| over qubits (0, 1).
	rho := pureState(t, 2, 1)

	reduced, err := dmsim.PartialTrace(rho, []int{0})
	require.NoError(t, err)
	require.Equal(t, 1, reduced.NQubits)
	assertDiagonalOne(t, reduced, 0)

	reduced, err = dmsim.PartialTrace(rho, []int{1})
	require.NoError(t, err)
	assertDiagonalOne(t, reduced, 1)
}

// Kept qubits stay in ascending index order regardless of how the keep list
// is ordered.
func TestPartialTraceKeepOrderInsensitive(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	rho, err := dmsim.RandomDensityMatrix(rng, 3)
	require.NoError(t, err)

	a, err := dmsim.PartialTrace(rho, []int{0, 2})
	require.NoError(t, err)
	b, err := dmsim.PartialTrace(rho, []int{2, 0})
	require.NoError(t, err)

	for i := range a.Data {
		assert.InDelta(t, real(a.Data[i]), real(b.Data[i]), 1e-12)
		assert.InDelta(t, imag(a.Data[i]), imag(b.Data[i]), 1e-12)
	}
}

func TestPartialTracePreservesTrace(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	rho, err := dmsim.RandomDensityMatrix(rng, 4)
	require.NoError(t, err)

	reduced, err := dmsim.PartialTrace(rho, []int{1, 3})
	require.NoError(t, err)
	assert.InDelta(t, real(rho.Trace()), real(reduced.Trace()), 1e-10)
}

func TestPartialTraceValidation(t *testing.T) {
	rho := pureState(t, 2, 0)

	_, err := dmsim.PartialTrace(rho, nil)
	assert.ErrorIs(t, err, dmsim.ErrDimension)

	_, err = dmsim.PartialTrace(rho, []int{0, 0})
	assert.ErrorIs(t, err, dmsim.ErrDimension)

	_, err = dmsim.PartialTrace(rho, []int{2})
	assert.ErrorIs(t, err, dmsim.ErrDimension)
}

func TestRandomDensityMatrixIsHermitianUnitTrace(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	rho, err := dmsim.RandomDensityMatrix(rng, 3)
	require.NoError(t, err)

	assert.InDelta(t, 1, real(rho.Trace()), 1e-10)
	assert.InDelta(t, 0, imag(rho.Trace()), 1e-10)

	dim := rho.Dim()
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			assert.InDelta(t, real(rho.At(i, j)), real(rho.At(j, i)), 1e-12)
			assert.InDelta(t, imag(rho.At(i, j)), -imag(rho.At(j, i)), 1e-12)
		}
	}
}

func TestFock(t *testing.T) {
	rho, err := dmsim.Fock(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rho.NQubits)
	assertDiagonalOne(t, rho, 1)

	_, err = dmsim.Fock(3, 0)
	assert.ErrorIs(t, err, dmsim.ErrDimension)

	_, err = dmsim.Fock(4, 4)
	assert.ErrorIs(t, err, dmsim.ErrDimension)
}

func TestFromMatrix(t *testing.T) {
	data := make([]complex128, 16)
	data[0] = 1
	rho, err := dmsim.FromMatrix(data)
	require.NoError(t, err)
	assert.Equal(t, 2, rho.NQubits)

	_, err = dmsim.FromMatrix(make([]complex128, 9))
	assert.ErrorIs(t, err, dmsim.ErrDimension)
}
