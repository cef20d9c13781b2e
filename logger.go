package piilog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLoggerName is the name of the logger built by GetLogger.
const DefaultLoggerName = "user_data"

// PIIFields returns the canonical set of personal data fields. Each call returns a new slice.
func PIIFields() []string {
	return []string{"name", "email", "phone", "ssn", "credit_card"}
}

type loggerConfig struct {
	name          string
	level         slog.Leveler
	output        io.Writer
	fields        []string
	formatOptions []Option
}

// LoggerOption configures GetLogger.
type LoggerOption func(c *loggerConfig)

// WithName is an option to set the logger name. The default is DefaultLoggerName.
func WithName(name string) LoggerOption {
	return func(c *loggerConfig) {
		c.name = name
	}
}

// WithLevel is an option to set the minimum level. The default is slog.LevelInfo.
func WithLevel(level slog.Leveler) LoggerOption {
	return func(c *loggerConfig) {
		c.level = level
	}
}

// WithOutput is an option to set the sink. The default is os.Stdout.
func WithOutput(w io.Writer) LoggerOption {
	return func(c *loggerConfig) {
		c.output = w
	}
}

// WithRotatingFile is an option to write to a size-rotated file instead of os.Stdout. maxSizeMB of 0 uses the lumberjack default of 100 MB. maxBackups of 0 keeps every old file.
func WithRotatingFile(path string, maxSizeMB, maxBackups int) LoggerOption {
	return func(c *loggerConfig) {
		c.output = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			LocalTime:  true,
		}
	}
}

// WithFields is an option to redact fields instead of PIIFields.
func WithFields(fields []string) LoggerOption {
	return func(c *loggerConfig) {
		c.fields = fields
	}
}

// WithFormatOptions is an option to pass options to the underlying Formatter.
func WithFormatOptions(options ...Option) LoggerOption {
	return func(c *loggerConfig) {
		c.formatOptions = append(c.formatOptions, options...)
	}
}

// GetLogger returns a logger named DefaultLoggerName at INFO level that writes to os.Stdout through a Formatter redacting PIIFields. The logger has exactly one sink and no parent to propagate to.
func GetLogger(options ...LoggerOption) (*slog.Logger, error) {
	cfg := &loggerConfig{
		name:   DefaultLoggerName,
		level:  slog.LevelInfo,
		output: os.Stdout,
		fields: PIIFields(),
	}
	for _, opt := range options {
		opt(cfg)
	}

	f, err := NewFormatter(cfg.fields, cfg.formatOptions...)
	if err != nil {
		return nil, err
	}

	h := NewHandler(cfg.output, f, &HandlerOptions{
		Name:  cfg.name,
		Level: cfg.level,
	})
	return slog.New(h), nil
}
