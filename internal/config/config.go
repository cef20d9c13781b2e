// Package config loads the piilog command configuration from a yaml file, PIILOG_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m-mizutani/piilog"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "piilog"
	ConfigName = "piilog"
)

// Keys shared by the config file, the environment and the flags.
const (
	KeyFields    = "fields"
	KeyRedaction = "redaction"
	KeySeparator = "separator"
	KeyBoundary  = "boundary"
	KeyFormat    = "format"
	KeyLogLevel  = "log_level"
)

// Config is the resolved configuration of the piilog command.
type Config struct {
	Fields    []string
	Redaction string
	Separator string
	Boundary  bool
	Format    string
	LogLevel  zerolog.Level
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyFields, piilog.PIIFields())
	v.SetDefault(KeyRedaction, piilog.Redaction)
	v.SetDefault(KeySeparator, piilog.Separator)
	v.SetDefault(KeyBoundary, true)
	v.SetDefault(KeyFormat, piilog.DefaultFormat)
	v.SetDefault(KeyLogLevel, "warn")

	return v
}

// Load reads the config file at path. With an empty path it looks for piilog.yaml in $HOME/.config/piilog and the working directory, and a missing file is not an error.
func Load(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/piilog")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// Get resolves the configuration held by v and checks that a Formatter can be built from it.
func Get(v *viper.Viper) (*Config, error) {
	level, err := zerolog.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: log_level: %w", piilog.ErrInvalidConfiguration, err)
	}

	cfg := &Config{
		Fields:    splitList(v.GetStringSlice(KeyFields)),
		Redaction: v.GetString(KeyRedaction),
		Separator: v.GetString(KeySeparator),
		Boundary:  v.GetBool(KeyBoundary),
		Format:    v.GetString(KeyFormat),
		LogLevel:  level,
	}

	if _, err := cfg.Formatter(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Options returns the piilog options described by c.
func (c *Config) Options() []piilog.Option {
	options := []piilog.Option{
		piilog.WithRedaction(c.Redaction),
		piilog.WithSeparator(c.Separator),
		piilog.WithFormat(c.Format),
	}
	if !c.Boundary {
		options = append(options, piilog.WithoutBoundary())
	}
	return options
}

func (c *Config) Redactor() (*piilog.Redactor, error) {
	return piilog.NewRedactor(c.Fields, c.Options()...)
}

func (c *Config) Formatter() (*piilog.Formatter, error) {
	return piilog.NewFormatter(c.Fields, c.Options()...)
}

// splitList accepts both list values and comma separated strings, as environment variables only carry the latter.
func splitList(values []string) []string {
	var list []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
	}
	return list
}
