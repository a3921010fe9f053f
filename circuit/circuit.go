// Package circuit provides the gate program representation consumed by the
// tensor simulation backend. A circuit is an ordered, append-only sequence of
// named gate operations over qubit indices; it carries no matrix data itself.
package circuit

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidOperation indicates a gate entry that is not a well-formed
	// name/index pair.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidIndex indicates a qubit index outside the valid domain.
	ErrInvalidIndex = errors.New("invalid qubit index")
)

// Operation is a single gate entry: a symbolic gate name and the ordered
// qubit indices it acts on.
type Operation struct {
	Name   string
	Qubits []int
}

// Circuit is an ordered, append-only sequence of gate operations.
type Circuit struct {
	ops []Operation
}

func New() *Circuit {
	return &Circuit{}
}

// Add appends one gate entry. The gate name must be non-empty, at least one
// qubit index must be given, and indices must be non-negative.
func (c *Circuit) Add(name string, qubits ...int) error {
	if name == "" {
		return errors.Wrap(ErrInvalidOperation, "add gate")
	}

	if len(qubits) == 0 {
		return errors.Wrapf(ErrInvalidOperation, "add gate %s", name)
	}

	for _, q := range qubits {
		if q < 0 {
			return errors.Wrapf(ErrInvalidIndex, "add gate %s", name)
		}
	}

	idxs := make([]int, len(qubits))
	copy(idxs, qubits)
	c.ops = append(c.ops, Operation{Name: name, Qubits: idxs})

	return nil
}

// Len returns the number of gate entries in the circuit.
func (c *Circuit) Len() int {
	return len(c.ops)
}

// Operations returns a copy of the gate entries in program order.
func (c *Circuit) Operations() []Operation {
	ops := make([]Operation, len(c.ops))
	for i, op := range c.ops {
		qubits := make([]int, len(op.Qubits))
		copy(qubits, op.Qubits)
		ops[i] = Operation{Name: op.Name, Qubits: qubits}
	}
	return ops
}

// Shift adds delta to every qubit index of every entry, relocating the
// circuit onto a different qubit window. Returns the receiver for chaining.
// Shifting an index below zero fails with ErrInvalidIndex and leaves the
// circuit unmodified.
func (c *Circuit) Shift(delta int) (*Circuit, error) {
	for _, op := range c.ops {
		for _, q := range op.Qubits {
			if q+delta < 0 {
				return nil, errors.Wrapf(ErrInvalidIndex, "shift by %d", delta)
			}
		}
	}

	for _, op := range c.ops {
		for i := range op.Qubits {
			op.Qubits[i] += delta
		}
	}

	return c, nil
}

// Append extends the circuit with copies of the other circuit's entries,
// preserving relative order: receiver entries first.
func (c *Circuit) Append(other *Circuit) {
	for _, op := range other.ops {
		qubits := make([]int, len(op.Qubits))
		copy(qubits, op.Qubits)
		c.ops = append(c.ops, Operation{Name: op.Name, Qubits: qubits})
	}
}

// String serializes the circuit as one line per gate: the gate name followed
// by its base-10 qubit indices, space separated, with a trailing newline on
// every line. This is the wire format the simulation backend consumes.
func (c *Circuit) String() string {
	var b strings.Builder
	for _, op := range c.ops {
		b.WriteString(op.Name)
		for _, q := range op.Qubits {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(q))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
