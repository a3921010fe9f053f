package cmd

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/korliakov/TensorBackend/config"
)

var (
	configPath       string
	debug            bool
	prometheusServer string

	cfg       config.Config
	logger    *zap.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "tensorbackend",
	Short: "Random Clifford synthesis and density-matrix simulation",
	Long: `tensorbackend synthesizes uniformly random n-qubit Clifford circuits via the
binary symplectic tableau representation and evolves density matrices through
the resulting gate programs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = *loaded
		}
		cfg = cfg.WithDefaults()

		var err error
		logger, logCloser, err = cfg.CreateLogger(debug)
		if err != nil {
			return err
		}

		if prometheusServer != "" {
			go func() {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				logger.Fatal(
					"failed to start prometheus server",
					zap.Error(http.ListenAndServe(prometheusServer, mux)),
				)
			}()
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"",
		"path to a YAML configuration file",
	)
	rootCmd.PersistentFlags().BoolVar(
		&debug,
		"debug",
		false,
		"enable debug logging",
	)
	rootCmd.PersistentFlags().StringVar(
		&prometheusServer,
		"prometheus-server",
		"",
		"enable prometheus server on specified address (e.g. localhost:8080)",
	)
}

// newRNG builds the random source for one invocation: seeded from the phrase
// when given, from the operating system otherwise.
func newRNG(phrase string) *rand.Rand {
	if phrase != "" {
		return rand.New(rand.NewSource(config.DeriveSeed(phrase)))
	}

	var raw [8]byte
	if _, err := crand.Read(raw[:]); err != nil {
		logger.Fatal("failed to seed random source", zap.Error(err))
	}

	return rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(raw[:]))))
}
