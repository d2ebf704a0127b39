// Package config loads printmgr settings from defaults, environment and flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sghaida/printmgr/internal/logger"
)

// EnvPrefix is the prefix for environment overrides, e.g. PRINTMGR_LOG_LEVEL.
const EnvPrefix = "PRINTMGR"

// DefaultDocuments are printed when no documents are given.
var DefaultDocuments = []string{"Report.pdf", "Letter.docx"}

// Config is the resolved process configuration.
type Config struct {
	Log       logger.Config `mapstructure:"log"`
	Documents []string      `mapstructure:"documents"`
}

// Flag names bound by BindFlags.
const (
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
)

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.level", logger.DefaultLevel)
	v.SetDefault("log.format", logger.FormatConsole)
	v.SetDefault("documents", DefaultDocuments)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// RegisterFlags adds the config flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagLogLevel, logger.DefaultLevel, "log level (debug, info, warn, error)")
	fs.String(FlagLogFormat, logger.FormatConsole, "log format (console, json)")
}

// BindFlags binds the flags registered by RegisterFlags into v.
// Flags only override environment and defaults when set explicitly.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlag("log.level", fs.Lookup(FlagLogLevel)); err != nil {
		return fmt.Errorf("config: bind %s: %w", FlagLogLevel, err)
	}
	if err := v.BindPFlag("log.format", fs.Lookup(FlagLogFormat)); err != nil {
		return fmt.Errorf("config: bind %s: %w", FlagLogFormat, err)
	}
	return nil
}

// Load resolves v into a Config. Non-empty args replace the document list.
func Load(v *viper.Viper, args []string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if len(args) > 0 {
		cfg.Documents = append([]string(nil), args...)
	}
	if err := cfg.Log.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
