package dmsim

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/korliakov/TensorBackend/circuit"
	"github.com/korliakov/TensorBackend/gates"
)

// Runner evolves density matrices through gate programs, resolving each
// recorded gate name through the gates library.
type Runner struct {
	logger *zap.Logger
}

func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{logger}
}

// Run applies every operation of the circuit to rho in program order and
// returns the evolved matrix. When noise is non-nil, the single-qubit channel
// is applied to each touched qubit after every gate. The input matrix is not
// modified.
func (r *Runner) Run(
	c *circuit.Circuit,
	rho *DensityMatrix,
	noise gates.Channel,
) (*DensityMatrix, error) {
	state := rho.Clone()

	for _, op := range c.Operations() {
		gate, err := gates.Lookup(op.Name)
		if err != nil {
			return nil, errors.Wrap(err, "run circuit")
		}

		state, err = GateAction(gate, state, op.Qubits)
		if err != nil {
			return nil, errors.Wrapf(err, "run circuit op %s", op.Name)
		}

		if noise == nil {
			continue
		}
		for _, q := range op.Qubits {
			state, err = ChannelAction(noise, state, []int{q})
			if err != nil {
				return nil, errors.Wrapf(err, "run circuit noise on %d", q)
			}
		}
	}

	r.logger.Debug(
		"ran circuit",
		zap.Int("gates", c.Len()),
		zap.Int("qubits", rho.NQubits),
	)

	return state, nil
}
