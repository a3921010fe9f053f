// Package metrics exposes Prometheus instrumentation for Clifford synthesis.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CircuitsSynthesized counts completed random Clifford syntheses.
	CircuitsSynthesized = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tensorbackend",
			Subsystem: "synthesis",
			Name:      "circuits_total",
			Help:      "Total number of random Clifford circuits synthesized",
		},
	)

	// PairRetries counts rejected Pauli pair draws in the anti-commuting
	// sampling loop.
	PairRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tensorbackend",
			Subsystem: "synthesis",
			Name:      "pair_retries_total",
			Help:      "Total number of commuting Pauli pairs rejected during sampling",
		},
	)

	// NonTerminations counts syntheses aborted on retry cap exhaustion.
	NonTerminations = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tensorbackend",
			Subsystem: "synthesis",
			Name:      "non_terminations_total",
			Help:      "Total number of syntheses aborted by the pair retry cap",
		},
	)

	// GatesPerCircuit observes the emitted gate count per synthesized circuit.
	GatesPerCircuit = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tensorbackend",
			Subsystem: "synthesis",
			Name:      "gates_per_circuit",
			Help:      "Number of gates emitted per synthesized circuit",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		},
	)
)
