// Package config holds the YAML configuration consumed by the command-line
// surface: synthesis parameters, noise selection, and logging settings.
package config

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
	"gopkg.in/yaml.v2"
)

const (
	defaultQubits          = 4
	defaultMaxPairAttempts = 1000
)

// NoiseConfig selects the single-qubit channel applied after every simulated
// gate. An empty channel name disables noise.
type NoiseConfig struct {
	Channel     string  `yaml:"channel"`
	Probability float64 `yaml:"probability"`
}

type Config struct {
	// Qubits is the circuit width used when no flag overrides it.
	Qubits int `yaml:"qubits"`

	// Seed is a free-form phrase expanded to the random source seed. Empty
	// means non-deterministic.
	Seed string `yaml:"seed"`

	// MaxPairAttempts caps the anti-commuting-pair sampling loop.
	MaxPairAttempts int `yaml:"maxPairAttempts"`

	Noise NoiseConfig `yaml:"noise"`

	// LogFile, when set, routes logs to a rotating file instead of stderr.
	LogFile string     `yaml:"logFile"`
	Logger  *LogConfig `yaml:"logger"`
}

// Load reads and decodes a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	return cfg, nil
}

// WithDefaults returns a copy of the config with zero values replaced by
// defaults.
func (c Config) WithDefaults() Config {
	cfg := c
	if cfg.Qubits == 0 {
		cfg.Qubits = defaultQubits
	}
	if cfg.MaxPairAttempts == 0 {
		cfg.MaxPairAttempts = defaultMaxPairAttempts
	}
	return cfg
}

// DeriveSeed expands a seed phrase into a deterministic int64 via SHA3-256.
func DeriveSeed(phrase string) int64 {
	digest := sha3.Sum256([]byte(phrase))
	return int64(binary.BigEndian.Uint64(digest[:8]))
}
