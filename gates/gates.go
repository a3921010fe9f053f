// Package gates provides the primitive gate and Kraus operator library
// consumed by the density-matrix simulation engine: dense complex matrices
// for the fixed Clifford generators, multi-controlled Toffolis, and the
// standard single-qubit noise channels.
package gates

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// ErrUnknownGate indicates a gate name with no registered operator.
var ErrUnknownGate = errors.New("unknown gate")

// Matrix is a dense square complex matrix in row-major order.
type Matrix struct {
	Dim  int
	Data []complex128
}

// At returns the (i, j) entry.
func (m Matrix) At(i, j int) complex128 {
	return m.Data[i*m.Dim+j]
}

// Qubits returns the number of qubits the operator acts on.
func (m Matrix) Qubits() int {
	return bits.TrailingZeros(uint(m.Dim))
}

func square(dim int, entries ...complex128) Matrix {
	data := make([]complex128, dim*dim)
	copy(data, entries)
	return Matrix{Dim: dim, Data: data}
}

// Identity returns the dim x dim identity.
func Identity(dim int) Matrix {
	m := square(dim)
	for i := 0; i < dim; i++ {
		m.Data[i*dim+i] = 1
	}
	return m
}

// I returns the single-qubit identity.
func I() Matrix {
	return Identity(2)
}

// X returns the Pauli X matrix.
func X() Matrix {
	return square(2,
		0, 1,
		1, 0,
	)
}

// Y returns the Pauli Y matrix.
func Y() Matrix {
	return square(2,
		0, complex(0, -1),
		complex(0, 1), 0,
	)
}

// Z returns the Pauli Z matrix.
func Z() Matrix {
	return square(2,
		1, 0,
		0, -1,
	)
}

// H returns the Hadamard matrix.
func H() Matrix {
	s := complex(1/math.Sqrt2, 0)
	return square(2,
		s, s,
		s, -s,
	)
}

// S returns the phase gate diag(1, i).
func S() Matrix {
	return square(2,
		1, 0,
		0, complex(0, 1),
	)
}

// CNOT returns the controlled-X gate; the first qubit is the control.
func CNOT() Matrix {
	return square(4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	)
}

// SWAP returns the two-qubit SWAP gate.
func SWAP() Matrix {
	return square(4,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	)
}

// Toffoli returns the doubly-controlled X gate.
func Toffoli() Matrix {
	return MultiToffoli(3)
}

// MultiToffoli returns the (n-1)-controlled X over n qubits: the identity
// with its bottom-right 2x2 block exchanged.
func MultiToffoli(n int) Matrix {
	if cached, ok := multiToffoliCache.Get(n); ok {
		return cached
	}

	dim := 1 << n
	m := Identity(dim)
	m.Data[(dim-1)*dim+(dim-1)] = 0
	m.Data[(dim-2)*dim+(dim-2)] = 0
	m.Data[(dim-1)*dim+(dim-2)] = 1
	m.Data[(dim-2)*dim+(dim-1)] = 1

	multiToffoliCache.Add(n, m)
	return m
}

// Lookup resolves a symbolic gate name, as recorded in a circuit, to its
// operator.
func Lookup(name string) (Matrix, error) {
	switch name {
	case "I":
		return I(), nil
	case "X":
		return X(), nil
	case "Y":
		return Y(), nil
	case "Z":
		return Z(), nil
	case "H":
		return H(), nil
	case "S":
		return S(), nil
	case "CNOT":
		return CNOT(), nil
	case "SWAP":
		return SWAP(), nil
	case "TOFFOLI":
		return Toffoli(), nil
	default:
		return Matrix{}, errors.Wrap(ErrUnknownGate, name)
	}
}
