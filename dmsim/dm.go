// Package dmsim is the floating-point density-matrix evolution engine. It
// applies unitary gates and Kraus channels to n-qubit density matrices by
// index contraction, and provides partial trace and a handful of state
// constructors. Qubit 0 corresponds to the most significant bit of the
// row/column index, matching the row-major tensor layout of the operators in
// the gates package.
package dmsim

import (
	"math/cmplx"
	"math/rand"

	"github.com/pkg/errors"
)

// ErrDimension indicates a density matrix or qubit index set that does not
// match the expected dimensions.
var ErrDimension = errors.New("dimension mismatch")

// DensityMatrix is a dense 2^n x 2^n complex matrix in row-major order.
type DensityMatrix struct {
	NQubits int
	Data    []complex128
}

// NewDensityMatrix returns the pure state |0...0><0...0| over n qubits.
func NewDensityMatrix(n int) (*DensityMatrix, error) {
	if n < 1 {
		return nil, errors.Wrap(ErrDimension, "new density matrix")
	}

	dim := 1 << n
	data := make([]complex128, dim*dim)
	data[0] = 1

	return &DensityMatrix{NQubits: n, Data: data}, nil
}

// FromMatrix wraps an existing row-major matrix after validating that its
// size is 4^n for some n >= 1. The data is copied.
func FromMatrix(data []complex128) (*DensityMatrix, error) {
	n := 0
	for dim := 2; dim*dim <= len(data); dim <<= 1 {
		if dim*dim == len(data) {
			n = log2(dim)
			break
		}
	}
	if n == 0 {
		return nil, errors.Wrap(ErrDimension, "from matrix")
	}

	out := make([]complex128, len(data))
	copy(out, data)

	return &DensityMatrix{NQubits: n, Data: out}, nil
}

// Dim returns the Hilbert space dimension 2^n.
func (d *DensityMatrix) Dim() int {
	return 1 << d.NQubits
}

// At returns the (i, j) entry.
func (d *DensityMatrix) At(i, j int) complex128 {
	return d.Data[i*d.Dim()+j]
}

// Clone returns an independent copy.
func (d *DensityMatrix) Clone() *DensityMatrix {
	data := make([]complex128, len(d.Data))
	copy(data, d.Data)
	return &DensityMatrix{NQubits: d.NQubits, Data: data}
}

// Trace returns the trace of the matrix.
func (d *DensityMatrix) Trace() complex128 {
	dim := d.Dim()
	var tr complex128
	for i := 0; i < dim; i++ {
		tr += d.Data[i*dim+i]
	}
	return tr
}

// Purity returns Tr(rho^2), real part. Pure states give 1, the maximally
// mixed state gives 1/2^n.
func (d *DensityMatrix) Purity() float64 {
	dim := d.Dim()
	var p complex128
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			p += d.Data[i*dim+j] * d.Data[j*dim+i]
		}
	}
	return real(p)
}

// RandomDensityMatrix draws A with uniform [0, 1) real and imaginary entries
// and returns (A + A^dagger) normalized by its trace. Hermitian with unit
// trace, not Haar random.
func RandomDensityMatrix(rng *rand.Rand, n int) (*DensityMatrix, error) {
	d, err := NewDensityMatrix(n)
	if err != nil {
		return nil, errors.Wrap(err, "random density matrix")
	}

	dim := d.Dim()
	a := make([]complex128, dim*dim)
	for i := range a {
		a[i] = complex(rng.Float64(), rng.Float64())
	}

	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			d.Data[i*dim+j] = a[i*dim+j] + cmplx.Conj(a[j*dim+i])
		}
	}

	tr := d.Trace()
	for i := range d.Data {
		d.Data[i] /= tr
	}

	return d, nil
}

// Fock returns the density matrix of the number state |level> in a Hilbert
// space of the given power-of-two dimension.
func Fock(dim, level int) (*DensityMatrix, error) {
	if dim < 2 || dim&(dim-1) != 0 || level < 0 || level >= dim {
		return nil, errors.Wrap(ErrDimension, "fock")
	}

	data := make([]complex128, dim*dim)
	data[level*dim+level] = 1

	return &DensityMatrix{NQubits: log2(dim), Data: data}, nil
}

func log2(dim int) int {
	n := 0
	for dim > 1 {
		dim >>= 1
		n++
	}
	return n
}
