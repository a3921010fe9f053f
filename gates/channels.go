package gates

import (
	"math"

	"github.com/pkg/errors"
)

// ErrProbability indicates a channel probability outside [0, 1].
var ErrProbability = errors.New("probability must be in [0, 1]")

// Channel is a quantum channel given by its Kraus operators.
type Channel []Matrix

func scale(m Matrix, f float64) Matrix {
	out := square(m.Dim)
	for i, v := range m.Data {
		out.Data[i] = v * complex(f, 0)
	}
	return out
}

func checkProbability(p float64, op string) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return errors.Wrapf(ErrProbability, "%s p=%v", op, p)
	}
	return nil
}

// BitFlip returns the bit flip channel: X with probability p.
func BitFlip(p float64) (Channel, error) {
	if err := checkProbability(p, "bit flip"); err != nil {
		return nil, err
	}

	return Channel{
		scale(I(), math.Sqrt(1-p)),
		scale(X(), math.Sqrt(p)),
	}, nil
}

// PhaseFlip returns the phase flip channel: Z with probability p.
func PhaseFlip(p float64) (Channel, error) {
	if err := checkProbability(p, "phase flip"); err != nil {
		return nil, err
	}

	return Channel{
		scale(I(), math.Sqrt(1-p)),
		scale(Z(), math.Sqrt(p)),
	}, nil
}

// BitPhaseFlip returns the bit-phase flip channel: Y with probability p.
func BitPhaseFlip(p float64) (Channel, error) {
	if err := checkProbability(p, "bit-phase flip"); err != nil {
		return nil, err
	}

	return Channel{
		scale(I(), math.Sqrt(1-p)),
		scale(Y(), math.Sqrt(p)),
	}, nil
}

// Depolarizing returns the single-qubit depolarizing channel with error
// probability p: identity weighted by sqrt(1 - 3p/4), each Pauli by sqrt(p)/2.
func Depolarizing(p float64) (Channel, error) {
	if err := checkProbability(p, "depolarizing"); err != nil {
		return nil, err
	}

	return Channel{
		scale(I(), math.Sqrt(1-0.75*p)),
		scale(X(), math.Sqrt(p)/2),
		scale(Y(), math.Sqrt(p)/2),
		scale(Z(), math.Sqrt(p)/2),
	}, nil
}

// AmplitudeDamping returns the amplitude damping channel with damping
// probability p.
func AmplitudeDamping(p float64) (Channel, error) {
	if err := checkProbability(p, "amplitude damping"); err != nil {
		return nil, err
	}

	k0 := square(2,
		1, 0,
		0, complex(math.Sqrt(1-p), 0),
	)
	k1 := square(2,
		0, complex(math.Sqrt(p), 0),
		0, 0,
	)

	return Channel{k0, k1}, nil
}

// PhaseDamping returns the phase damping channel with damping probability p.
func PhaseDamping(p float64) (Channel, error) {
	if err := checkProbability(p, "phase damping"); err != nil {
		return nil, err
	}

	k0 := square(2,
		1, 0,
		0, complex(math.Sqrt(1-p), 0),
	)
	k1 := square(2,
		0, 0,
		0, complex(math.Sqrt(p), 0),
	)

	return Channel{k0, k1}, nil
}

// LookupChannel resolves a symbolic noise channel name with its probability
// parameter.
func LookupChannel(name string, p float64) (Channel, error) {
	switch name {
	case "bit-flip":
		return BitFlip(p)
	case "phase-flip":
		return PhaseFlip(p)
	case "bit-phase-flip":
		return BitPhaseFlip(p)
	case "depolarizing":
		return Depolarizing(p)
	case "amplitude-damping":
		return AmplitudeDamping(p)
	case "phase-damping":
		return PhaseDamping(p)
	default:
		return nil, errors.Wrap(ErrUnknownGate, name)
	}
}
