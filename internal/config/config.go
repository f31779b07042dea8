package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Configuration keys, shared by environment variables and command-line flags
const (
	KeyBackend   = "backend"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Backend names
const (
	BackendAuto    = "auto"
	BackendWindows = "windows"
	BackendPlasma  = "plasma"
	BackendGnome   = "gnome"
)

const (
	envPrefix        = "DESKWALL"
	defaultBackend   = BackendAuto
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

var (
	backends   = []string{BackendAuto, BackendWindows, BackendPlasma, BackendGnome}
	logFormats = []string{"console", "json"}
)

// AppConfig holds application configuration
type AppConfig struct {
	backend   string
	logLevel  zapcore.Level
	logFormat string
}

// NewViper returns a viper instance reading DESKWALL_* environment variables
// with defaults for every key
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBackend, defaultBackend)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyLogFormat, defaultLogFormat)
	return v
}

// Load validates the values held by v
func Load(v *viper.Viper) (*AppConfig, error) {
	backend := strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend)))
	if !slices.Contains(backends, backend) {
		return nil, fmt.Errorf("unknown backend %q (expected one of %s)", backend, strings.Join(backends, ", "))
	}

	level, err := zapcore.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	format := strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat)))
	if !slices.Contains(logFormats, format) {
		return nil, fmt.Errorf("unknown log format %q (expected one of %s)", format, strings.Join(logFormats, ", "))
	}

	return &AppConfig{
		backend:   backend,
		logLevel:  level,
		logFormat: format,
	}, nil
}

// Default returns the configuration used when nothing is overridden
func Default() *AppConfig {
	return &AppConfig{
		backend:   defaultBackend,
		logLevel:  zapcore.WarnLevel,
		logFormat: defaultLogFormat,
	}
}

// Backend returns the configured backend name, possibly BackendAuto
func (c *AppConfig) Backend() string {
	return c.backend
}

// LogLevel returns the minimum level written by the logger
func (c *AppConfig) LogLevel() zapcore.Level {
	return c.logLevel
}

// LogFormat returns the zap encoding ("console" or "json")
func (c *AppConfig) LogFormat() string {
	return c.logFormat
}
