package dmsim

import (
	"math/cmplx"
	"sort"

	"github.com/pkg/errors"

	"github.com/korliakov/TensorBackend/gates"
)

// scatter places the bits of v, MSB-first over the listed qubits, into an
// n-bit basis index.
func scatter(v int, qubits []int, n int) int {
	out := 0
	k := len(qubits)
	for a := 0; a < k; a++ {
		if v&(1<<(k-1-a)) != 0 {
			out |= 1 << (n - 1 - qubits[a])
		}
	}
	return out
}

func checkQubits(n int, qubits []int, operator gates.Matrix) error {
	if len(qubits) != operator.Qubits() {
		return errors.Wrapf(
			ErrDimension,
			"operator acts on %d qubits, %d indices given",
			operator.Qubits(),
			len(qubits),
		)
	}

	seen := make(map[int]bool, len(qubits))
	for _, q := range qubits {
		if q < 0 || q >= n || seen[q] {
			return errors.Wrapf(ErrDimension, "qubit index %d", q)
		}
		seen[q] = true
	}

	return nil
}

// applySided multiplies the operator into the row side (U rho) or, with
// conjugated entries, into the column side (rho U^dagger) of the matrix.
func applySided(
	op gates.Matrix,
	rho *DensityMatrix,
	qubits []int,
	columns bool,
) *DensityMatrix {
	n := rho.NQubits
	dim := rho.Dim()
	sub := op.Dim

	mask := scatter(sub-1, qubits, n)
	out := rho.Clone()
	vec := make([]complex128, sub)
	res := make([]complex128, sub)

	for base := 0; base < dim; base++ {
		if base&mask != 0 {
			continue
		}
		for other := 0; other < dim; other++ {
			for j := 0; j < sub; j++ {
				idx := base | scatter(j, qubits, n)
				if columns {
					vec[j] = rho.Data[other*dim+idx]
				} else {
					vec[j] = rho.Data[idx*dim+other]
				}
			}

			for i := 0; i < sub; i++ {
				var acc complex128
				for j := 0; j < sub; j++ {
					u := op.Data[i*sub+j]
					if columns {
						u = cmplx.Conj(u)
					}
					acc += u * vec[j]
				}
				res[i] = acc
			}

			for i := 0; i < sub; i++ {
				idx := base | scatter(i, qubits, n)
				if columns {
					out.Data[other*dim+idx] = res[i]
				} else {
					out.Data[idx*dim+other] = res[i]
				}
			}
		}
	}

	return out
}

// GateAction applies unitary evolution U rho U^dagger for a k-qubit operator
// acting on the listed qubits and returns the evolved matrix.
func GateAction(
	gate gates.Matrix,
	rho *DensityMatrix,
	qubits []int,
) (*DensityMatrix, error) {
	if err := checkQubits(rho.NQubits, qubits, gate); err != nil {
		return nil, errors.Wrap(err, "gate action")
	}

	left := applySided(gate, rho, qubits, false)
	return applySided(gate, left, qubits, true), nil
}

// ChannelAction applies non-unitary evolution sum_i K_i rho K_i^dagger for a
// channel given by its Kraus operators.
func ChannelAction(
	channel gates.Channel,
	rho *DensityMatrix,
	qubits []int,
) (*DensityMatrix, error) {
	if len(channel) == 0 {
		return nil, errors.Wrap(ErrDimension, "channel action")
	}

	var out *DensityMatrix
	for _, k := range channel {
		term, err := GateAction(k, rho, qubits)
		if err != nil {
			return nil, errors.Wrap(err, "channel action")
		}
		if out == nil {
			out = term
			continue
		}
		for i := range out.Data {
			out.Data[i] += term.Data[i]
		}
	}

	return out, nil
}

// PartialTrace traces out every qubit not listed in keep and returns the
// reduced matrix. Kept qubits remain in ascending index order regardless of
// the order they are listed in.
func PartialTrace(rho *DensityMatrix, keep []int) (*DensityMatrix, error) {
	n := rho.NQubits
	if len(keep) == 0 || len(keep) > n {
		return nil, errors.Wrap(ErrDimension, "partial trace")
	}

	kept := make([]int, len(keep))
	copy(kept, keep)
	sort.Ints(kept)
	for i, q := range kept {
		if q < 0 || q >= n || (i > 0 && kept[i-1] == q) {
			return nil, errors.Wrapf(ErrDimension, "partial trace qubit %d", q)
		}
	}

	var traced []int
	i := 0
	for q := 0; q < n; q++ {
		if i < len(kept) && kept[i] == q {
			i++
			continue
		}
		traced = append(traced, q)
	}

	m := len(kept)
	outDim := 1 << m
	sumDim := 1 << len(traced)
	dim := rho.Dim()
	out := make([]complex128, outDim*outDim)

	for r := 0; r < outDim; r++ {
		rowBase := scatter(r, kept, n)
		for c := 0; c < outDim; c++ {
			colBase := scatter(c, kept, n)
			var acc complex128
			for t := 0; t < sumDim; t++ {
				tb := scatter(t, traced, n)
				acc += rho.Data[(rowBase|tb)*dim+(colBase|tb)]
			}
			out[r*outDim+c] = acc
		}
	}

	return &DensityMatrix{NQubits: m, Data: out}, nil
}
