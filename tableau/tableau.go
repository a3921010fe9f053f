// Package tableau implements the binary symplectic representation of Pauli
// operators and the Clifford-group transformations acting on it. A tableau is
// a pair of equal-shape boolean matrices (X-part, Z-part) where each row
// encodes one Pauli operator per qubit via (x, z) -> {00: I, 10: X, 01: Z,
// 11: Y}. Global sign is not tracked.
//
// Every gate applied to a tableau is simultaneously recorded into an owned
// circuit.Circuit, which is how the random Clifford synthesizer accumulates
// its output program.
package tableau

import (
	"github.com/pkg/errors"

	"github.com/korliakov/TensorBackend/circuit"
)

var (
	// ErrShapeMismatch indicates xs/zs dimensionality or shape mismatch.
	ErrShapeMismatch = errors.New("incompatible xs and zs shapes")

	// ErrValueDomain indicates matrix entries outside {0, 1}.
	ErrValueDomain = errors.New("matrix entries must be 0 or 1")
)

// pauliLabel maps the (x, z) bit pair of one qubit to its Pauli label.
var pauliLabel = [2][2]byte{
	{'I', 'Z'},
	{'X', 'Y'},
}

// Tableau tracks a set of unsigned Pauli operators over n qubits.
type Tableau struct {
	xs      [][]bool
	zs      [][]bool
	circuit *circuit.Circuit
}

// New constructs a Tableau from two equal-shaped 0/1 integer matrices. All
// validation happens before any field is committed.
func New(xs, zs [][]int) (*Tableau, error) {
	bx, err := intsToBits(xs)
	if err != nil {
		return nil, errors.Wrap(err, "new tableau")
	}
	bz, err := intsToBits(zs)
	if err != nil {
		return nil, errors.Wrap(err, "new tableau")
	}

	return FromBits(bx, bz)
}

// FromBits constructs a Tableau from two equal-shaped boolean matrices. The
// matrices are copied; the tableau never aliases caller memory.
func FromBits(xs, zs [][]bool) (*Tableau, error) {
	if err := checkShape(xs, zs); err != nil {
		return nil, errors.Wrap(err, "new tableau")
	}

	return &Tableau{
		xs:      copyBits(xs),
		zs:      copyBits(zs),
		circuit: circuit.New(),
	}, nil
}

func intsToBits(m [][]int) ([][]bool, error) {
	bits := make([][]bool, len(m))
	for i, row := range m {
		bits[i] = make([]bool, len(row))
		for j, v := range row {
			switch v {
			case 0:
				bits[i][j] = false
			case 1:
				bits[i][j] = true
			default:
				return nil, ErrValueDomain
			}
		}
	}
	return bits, nil
}

func checkShape(xs, zs [][]bool) error {
	if len(xs) == 0 || len(zs) == 0 {
		return ErrShapeMismatch
	}
	if len(xs) != len(zs) {
		return ErrShapeMismatch
	}

	cols := len(xs[0])
	for i := range xs {
		if len(xs[i]) != cols || len(zs[i]) != cols {
			return ErrShapeMismatch
		}
	}

	return nil
}

func copyBits(m [][]bool) [][]bool {
	out := make([][]bool, len(m))
	for i, row := range m {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}

// NQubits returns the number of columns (qubits) of the tableau.
func (t *Tableau) NQubits() int {
	return len(t.xs[0])
}

// NRows returns the number of tracked Pauli generators.
func (t *Tableau) NRows() int {
	return len(t.xs)
}

// Circuit returns the circuit recording every gate applied to this tableau,
// in application order.
func (t *Tableau) Circuit() *circuit.Circuit {
	return t.circuit
}

// Row extracts row i as a new independent single-row tableau with a fresh
// circuit.
func (t *Tableau) Row(i int) (*Tableau, error) {
	if i < 0 || i >= t.NRows() {
		return nil, errors.Wrapf(
			circuit.ErrInvalidIndex,
			"row %d of %d",
			i,
			t.NRows(),
		)
	}

	return FromBits(t.xs[i:i+1], t.zs[i:i+1])
}

// Slice extracts rows [from, to) as a new independent tableau.
func (t *Tableau) Slice(from, to int) (*Tableau, error) {
	if from < 0 || to > t.NRows() || from >= to {
		return nil, errors.Wrapf(
			circuit.ErrInvalidIndex,
			"rows [%d, %d) of %d",
			from,
			to,
			t.NRows(),
		)
	}

	return FromBits(t.xs[from:to], t.zs[from:to])
}

// Stack returns a new tableau whose rows are the receiver's rows followed by
// the other tableau's rows. Both operands must have the same qubit count.
func (t *Tableau) Stack(other *Tableau) (*Tableau, error) {
	if t.NQubits() != other.NQubits() {
		return nil, errors.Wrap(ErrShapeMismatch, "stack")
	}

	xs := append(copyBits(t.xs), copyBits(other.xs)...)
	zs := append(copyBits(t.zs), copyBits(other.zs)...)

	return FromBits(xs, zs)
}

// Mul returns the row-wise Pauli-string product of two equal-shaped tableaus,
// ignoring phase: an element-wise XOR of both parts.
func (t *Tableau) Mul(other *Tableau) (*Tableau, error) {
	if t.NRows() != other.NRows() || t.NQubits() != other.NQubits() {
		return nil, errors.Wrap(ErrShapeMismatch, "mul")
	}

	xs := copyBits(t.xs)
	zs := copyBits(t.zs)
	for i := range xs {
		for j := range xs[i] {
			xs[i][j] = xs[i][j] != other.xs[i][j]
			zs[i][j] = zs[i][j] != other.zs[i][j]
		}
	}

	return FromBits(xs, zs)
}

// Equal reports whether both tableaus have element-wise identical X and Z
// parts. The recorded circuits do not participate in equality.
func (t *Tableau) Equal(other *Tableau) bool {
	if t.NRows() != other.NRows() || t.NQubits() != other.NQubits() {
		return false
	}

	for i := range t.xs {
		for j := range t.xs[i] {
			if t.xs[i][j] != other.xs[i][j] || t.zs[i][j] != other.zs[i][j] {
				return false
			}
		}
	}

	return true
}

// Strings renders one Pauli-label string per row, each character one of
// I, X, Y, Z.
func (t *Tableau) Strings() []string {
	out := make([]string, t.NRows())
	for i := range t.xs {
		row := make([]byte, t.NQubits())
		for j := range t.xs[i] {
			row[j] = pauliLabel[bit(t.xs[i][j])][bit(t.zs[i][j])]
		}
		out[i] = string(row)
	}
	return out
}

// Commutes computes the symplectic commutation relation between two tableaus
// of identical shape: per entry x_a*z_b XOR x_b*z_a, commuting iff the total
// parity is even. It is symmetric, and every tableau commutes with itself.
func (t *Tableau) Commutes(other *Tableau) (bool, error) {
	if t.NRows() != other.NRows() || t.NQubits() != other.NQubits() {
		return false, errors.Wrap(ErrShapeMismatch, "commutes")
	}

	parity := false
	for i := range t.xs {
		for j := range t.xs[i] {
			a := t.xs[i][j] && other.zs[i][j]
			b := other.xs[i][j] && t.zs[i][j]
			if a != b {
				parity = !parity
			}
		}
	}

	return !parity, nil
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
