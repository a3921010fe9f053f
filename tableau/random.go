package tableau

import (
	"math/rand"

	"github.com/pkg/errors"
)

// RandomPauli draws a uniformly random single-row Pauli over n qubits from
// the given source: n independent fair bits for the X part and n for the Z
// part, so each qubit's label is independently uniform over {I, X, Y, Z}.
func RandomPauli(rng *rand.Rand, n int) (*Tableau, error) {
	if n < 1 {
		return nil, errors.Wrap(ErrShapeMismatch, "random pauli")
	}

	xs := [][]bool{make([]bool, n)}
	zs := [][]bool{make([]bool, n)}
	for i := 0; i < n; i++ {
		xs[0][i] = rng.Intn(2) == 1
		zs[0][i] = rng.Intn(2) == 1
	}

	return FromBits(xs, zs)
}
