package config

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/korliakov/TensorBackend/internal/logging"
)

// LogConfig configures rotating file logging.
type LogConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
	Compress   bool   `yaml:"compress"`
}

// CreateLogger builds the zap logger described by the config: a rotating
// file logger when a path is configured, the standard production or
// development logger otherwise.
func (c *Config) CreateLogger(debug bool) (*zap.Logger, io.Closer, error) {
	if c.LogFile != "" || c.Logger != nil {
		dir := ""
		if c.Logger != nil {
			dir = c.Logger.Path
		}

		logger, closer, err := logging.NewRotatingFileLogger(
			debug,
			dir,
			c.LogFile,
		)
		return logger, closer, errors.Wrap(err, "create logger")
	}

	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	return logger, io.NopCloser(nil), errors.Wrap(err, "create logger")
}
