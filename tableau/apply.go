package tableau

import (
	"github.com/pkg/errors"

	"github.com/korliakov/TensorBackend/circuit"
)

func (t *Tableau) checkQubit(qubits ...int) error {
	for _, q := range qubits {
		if q < 0 || q >= t.NQubits() {
			return errors.Wrapf(
				circuit.ErrInvalidIndex,
				"qubit %d of %d",
				q,
				t.NQubits(),
			)
		}
	}
	return nil
}

// ApplyH conjugates every tracked Pauli by H on qubit q and records the gate.
func (t *Tableau) ApplyH(q int) error {
	if err := t.checkQubit(q); err != nil {
		return errors.Wrap(err, "apply h")
	}

	hTransition(t.xs, t.zs, q)
	return errors.Wrap(t.circuit.Add("H", q), "apply h")
}

// ApplyS conjugates every tracked Pauli by S on qubit q and records the gate.
// At the unsigned tableau level the transition is its own inverse.
func (t *Tableau) ApplyS(q int) error {
	if err := t.checkQubit(q); err != nil {
		return errors.Wrap(err, "apply s")
	}

	sTransition(t.xs, t.zs, q)
	return errors.Wrap(t.circuit.Add("S", q), "apply s")
}

// ApplySWAP exchanges qubits q1 and q2 and records the gate.
func (t *Tableau) ApplySWAP(q1, q2 int) error {
	if err := t.checkQubit(q1, q2); err != nil {
		return errors.Wrap(err, "apply swap")
	}

	swapTransition(t.xs, t.zs, q1, q2)
	return errors.Wrap(t.circuit.Add("SWAP", q1, q2), "apply swap")
}

// ApplyCNOT applies CNOT with the given control and target and records the
// gate.
func (t *Tableau) ApplyCNOT(ctrl, tgt int) error {
	if err := t.checkQubit(ctrl, tgt); err != nil {
		return errors.Wrap(err, "apply cnot")
	}

	cnotTransition(t.xs, t.zs, ctrl, tgt)
	return errors.Wrap(t.circuit.Add("CNOT", ctrl, tgt), "apply cnot")
}

// ApplyX records an X gate on qubit q. Conjugating a Pauli by a Pauli changes
// only the untracked global phase, so the matrices are untouched.
func (t *Tableau) ApplyX(q int) error {
	if err := t.checkQubit(q); err != nil {
		return errors.Wrap(err, "apply x")
	}

	return errors.Wrap(t.circuit.Add("X", q), "apply x")
}

// ApplyY records a Y gate on qubit q without mutating the matrices.
func (t *Tableau) ApplyY(q int) error {
	if err := t.checkQubit(q); err != nil {
		return errors.Wrap(err, "apply y")
	}

	return errors.Wrap(t.circuit.Add("Y", q), "apply y")
}

// ApplyZ records a Z gate on qubit q without mutating the matrices.
func (t *Tableau) ApplyZ(q int) error {
	if err := t.checkQubit(q); err != nil {
		return errors.Wrap(err, "apply z")
	}

	return errors.Wrap(t.circuit.Add("Z", q), "apply z")
}

// ApplyI is a true no-op: nothing is mutated and nothing is recorded.
func (t *Tableau) ApplyI(q int) error {
	return errors.Wrap(t.checkQubit(q), "apply i")
}
