package tableau

import (
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/korliakov/TensorBackend/circuit"
	"github.com/korliakov/TensorBackend/internal/metrics"
)

// DefaultMaxPairAttempts bounds the anti-commuting-pair sampling loop per
// peeling round. Each draw anti-commutes with probability near 1/2, so the
// cap exists only to turn a broken randomness source into a hard failure
// instead of a hang.
const DefaultMaxPairAttempts = 1000

// ErrNonTermination indicates the anti-commuting-pair retry cap was exceeded.
var ErrNonTermination = errors.New("anti-commuting pair retry cap exceeded")

// Synthesizer produces uniformly random n-qubit Clifford circuits in O(n^2)
// gates via the recursive peeling decomposition of arXiv:2008.06011. It owns
// its random-bit stream, so independent synthesizers are safe to run from
// independent goroutines.
type Synthesizer struct {
	logger          *zap.Logger
	rng             *rand.Rand
	maxPairAttempts int
}

// NewSynthesizer constructs a synthesizer around an explicit seedable random
// source. A maxPairAttempts of zero selects DefaultMaxPairAttempts.
func NewSynthesizer(
	logger *zap.Logger,
	rng *rand.Rand,
	maxPairAttempts int,
) *Synthesizer {
	if maxPairAttempts <= 0 {
		maxPairAttempts = DefaultMaxPairAttempts
	}

	return &Synthesizer{
		logger:          logger,
		rng:             rng,
		maxPairAttempts: maxPairAttempts,
	}
}

// RandomClifford synthesizes a uniformly random Clifford circuit over n
// qubits with a throwaway synthesizer. For repeated or observable synthesis
// construct a Synthesizer instead.
func RandomClifford(rng *rand.Rand, n int) (*circuit.Circuit, error) {
	return NewSynthesizer(zap.NewNop(), rng, 0).Synthesize(n)
}

// Synthesize runs the peeling rounds for windows n, n-1, ..., 1 and returns
// the accumulated circuit.
func (s *Synthesizer) Synthesize(nQubits int) (*circuit.Circuit, error) {
	if nQubits < 1 {
		return nil, errors.Wrap(ErrShapeMismatch, "synthesize")
	}

	compiled := circuit.New()
	for n := nQubits; n >= 1; n-- {
		sub, err := s.peelRound(n)
		if err != nil {
			return nil, errors.Wrap(err, "synthesize")
		}

		if _, err := sub.Shift(nQubits - n); err != nil {
			return nil, errors.Wrap(err, "synthesize")
		}
		compiled.Append(sub)
	}

	metrics.CircuitsSynthesized.Inc()
	metrics.GatesPerCircuit.Observe(float64(compiled.Len()))
	s.logger.Debug(
		"synthesized random clifford",
		zap.Int("qubits", nQubits),
		zap.Int("gates", compiled.Len()),
	)

	return compiled, nil
}

// peelRound samples an anti-commuting Pauli pair over n qubits, reduces it to
// the canonical (X1, Z1) frame on qubit 0, and returns the gates that did so.
func (s *Synthesizer) peelRound(n int) (*circuit.Circuit, error) {
	s1, s2, err := s.antiCommutingPair(n)
	if err != nil {
		return nil, err
	}

	t, err := s1.Stack(s2)
	if err != nil {
		return nil, err
	}

	if err := t.clearZPart(0); err != nil {
		return nil, err
	}
	if err := t.collapseXSupport(0); err != nil {
		return nil, err
	}
	if err := t.fixSecondRow(); err != nil {
		return nil, err
	}
	if err := t.randomSeedGate(s.rng); err != nil {
		return nil, err
	}

	return t.Circuit(), nil
}

// antiCommutingPair draws independent random Pauli rows until they
// anti-commute, failing with ErrNonTermination once the cap is exhausted.
func (s *Synthesizer) antiCommutingPair(n int) (*Tableau, *Tableau, error) {
	for attempt := 1; attempt <= s.maxPairAttempts; attempt++ {
		s1, err := RandomPauli(s.rng, n)
		if err != nil {
			return nil, nil, err
		}
		s2, err := RandomPauli(s.rng, n)
		if err != nil {
			return nil, nil, err
		}

		commutes, err := s1.Commutes(s2)
		if err != nil {
			return nil, nil, err
		}
		if !commutes {
			return s1, s2, nil
		}

		metrics.PairRetries.Inc()
	}

	metrics.NonTerminations.Inc()
	s.logger.Error(
		"pair sampling did not terminate",
		zap.Int("qubits", n),
		zap.Int("maxAttempts", s.maxPairAttempts),
	)

	return nil, nil, errors.Wrapf(
		ErrNonTermination,
		"after %d attempts",
		s.maxPairAttempts,
	)
}

// clearZPart removes every Z component from the given row: S where the X bit
// is also set (clearing Z without disturbing X), H otherwise (moving the
// nonzero component into the X part).
func (t *Tableau) clearZPart(row int) error {
	x := make([]bool, t.NQubits())
	z := make([]bool, t.NQubits())
	copy(x, t.xs[row])
	copy(z, t.zs[row])

	for i := range z {
		if !z[i] {
			continue
		}
		if x[i] {
			if err := t.ApplyS(i); err != nil {
				return err
			}
		} else {
			if err := t.ApplyH(i); err != nil {
				return err
			}
		}
	}

	return nil
}

// collapseXSupport folds the row's X support onto its first supported qubit
// with CNOTs, then swaps that qubit onto position 0. The trailing SWAP is
// recorded even when the support already sits on qubit 0.
func (t *Tableau) collapseXSupport(row int) error {
	var support []int
	for i, set := range t.xs[row] {
		if set {
			support = append(support, i)
		}
	}
	if len(support) == 0 {
		return errors.New("row has no x support")
	}

	for len(support) > 1 {
		if err := t.ApplyCNOT(support[0], support[1]); err != nil {
			return err
		}
		support = append(support[:1], support[2:]...)
	}

	return t.ApplySWAP(0, support[0])
}

// fixSecondRow forces row 1 into the canonical Z1 form (X = 0...0,
// Z = 1, 0, ..., 0). Conjugating by H(0) turns the target into the X1 form
// handled by the row-0 reduction, which cannot disturb row 0: after the first
// reduction row 0 is X on qubit 0 only, and row 1 anti-commutes with it.
func (t *Tableau) fixSecondRow() error {
	canonical, err := canonicalZ1(t.NQubits())
	if err != nil {
		return err
	}

	row1, err := t.Row(1)
	if err != nil {
		return err
	}
	if row1.Equal(canonical) {
		return nil
	}

	if err := t.ApplyH(0); err != nil {
		return err
	}
	if err := t.clearZPart(1); err != nil {
		return err
	}
	if err := t.collapseXSupport(1); err != nil {
		return err
	}

	return t.ApplyH(0)
}

// canonicalZ1 builds the single-row tableau X = 0...0, Z = 1, 0, ..., 0.
func canonicalZ1(n int) (*Tableau, error) {
	xs := [][]bool{make([]bool, n)}
	zs := [][]bool{make([]bool, n)}
	zs[0][0] = true
	return FromBits(xs, zs)
}

// randomSeedGate draws two fair bits and applies exactly one of {I, X, Y, Z}
// to qubit 0. The choice is recorded in the circuit but leaves the unsigned
// matrices untouched; it selects the realized element of the residual
// equivalence class.
func (t *Tableau) randomSeedGate(rng *rand.Rand) error {
	first := rng.Intn(2)
	second := rng.Intn(2)

	switch {
	case first == 0 && second == 1:
		return t.ApplyX(0)
	case first == 0:
		return t.ApplyI(0)
	case second == 1:
		return t.ApplyY(0)
	default:
		return t.ApplyZ(0)
	}
}
