package logger

import (
	"os"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	level  string
	output string
}

// Option customizes the logger built by New
type Option func(*options)

// WithLevel sets the minimum level ("debug", "info", "warn", "error")
func WithLevel(level string) Option {
	return func(o *options) { o.level = level }
}

// WithOutput sets the output path. "stdout", "stderr" and file paths are
// accepted. The interactive menu owns stdout, so the default is stderr.
func WithOutput(path string) Option {
	return func(o *options) { o.output = path }
}

// New creates a new structured logger
func New(env string, opts ...Option) (*zap.Logger, error) {
	o := options{level: "info", output: "stderr"}
	for _, opt := range opts {
		opt(&o)
	}

	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zap.ParseAtomicLevel(o.level)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}
	config.Level = level

	config.OutputPaths = []string{o.output}
	config.ErrorOutputPaths = []string{"stderr"}

	// Ensure structured JSON format in production
	if env == "production" {
		config.Encoding = "json"
	}

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	return logger, nil
}

// NewWithDefaults creates a logger with default settings
func NewWithDefaults() *zap.Logger {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	logger, err := New(env)
	if err != nil {
		// Fallback to basic logger
		logger, _ = zap.NewProduction()
	}

	return logger
}
