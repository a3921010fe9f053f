package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewRotatingFileLogger builds a zap logger writing to a size-rotated file.
func NewRotatingFileLogger(
	debug bool,
	dir string,
	filename string,
) (
	*zap.Logger,
	io.Closer,
	error,
) {
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}

	if filename == "" {
		filename = "tensorbackend.log"
	}

	path := filepath.Join(dir, filename)

	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50,   // megabytes per file before rotation
		MaxBackups: 5,    // number of old files to keep
		MaxAge:     14,   // days
		Compress:   true, // gzip old files
	}

	encCfg := zap.NewProductionEncoderConfig()
	if debug {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	enc := zapcore.NewConsoleEncoder(encCfg)

	ws := zapcore.AddSync(rot)
	core := zapcore.NewCore(enc, ws, zap.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	return logger, rot, nil
}
