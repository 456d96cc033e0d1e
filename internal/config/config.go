// Package config loads the inputkit demo settings from defaults, an optional
// .env file, an optional config file, INPUTKIT_* environment variables and
// explicitly set flags.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	inputkit "github.com/romdo/go-inputkit"
	"github.com/romdo/go-inputkit/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "INPUTKIT"

// Config is the complete demo configuration.
type Config struct {
	Env      string `mapstructure:"env"`       // "dev" | "prod"
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error …

	Kit inputkit.Config `mapstructure:",squash"`
}

// Dump returns the config as indented JSON for debug logging.
func (c Config) Dump() string {
	b, _ := json.MarshalIndent(c, "", "  ")
	return string(b)
}

// RegisterFlags defines the config flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := inputkit.DefaultConfig()

	fs.String("env", "dev", `Runtime environment "dev"|"prod"`)
	fs.String("log_level", "info", "Log level")
	fs.String("config", "", "Path to a config file (yaml, json or toml)")

	fs.Duration("search_wait", d.SearchWait, "Quiet period before a search is dispatched")
	fs.Int("min_query_length", d.MinQueryLength, "Shortest query passed to search")
	fs.Duration("toast_duration", d.ToastDuration, "How long notifications stay visible")
	fs.Bool("strict", d.Strict, "Validate every field and both addresses, not just content")
}

// Load merges defaults → config file → env vars → explicit flags into one
// Config. Final precedence (highest wins): flags(explicit) > env > config >
// defaults. fs must have been set up with RegisterFlags and parsed.
func Load(fs *pflag.FlagSet, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Optionally load .env (real env still wins over .env).
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env file")
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	setDefaults(v)

	if file, _ := fs.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %q: %w", file, err)
		}
		logger.Info("loaded config file", zap.String("file", file))
	}

	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed && f.Name != "config" && bindErr == nil {
			bindErr = v.BindPFlag(f.Name, f)
		}
	})
	if bindErr != nil {
		return nil, fmt.Errorf("unable to bind flags: %w", bindErr)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func allKeys() []string {
	return []string{
		"env", "log_level",
		"search_wait", "min_query_length", "toast_duration", "strict",
	}
}

func setDefaults(v *viper.Viper) {
	d := inputkit.DefaultConfig()

	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("search_wait", d.SearchWait)
	v.SetDefault("min_query_length", d.MinQueryLength)
	v.SetDefault("toast_duration", d.ToastDuration)
	v.SetDefault("strict", d.Strict)
}

func validateConfig(cfg Config) error {
	var invalid []string

	if env := cfg.Env; env != "dev" && env != "prod" {
		invalid = append(invalid, `env must be "dev" or "prod"`)
	}
	if !logging.IsValidLogLevel(cfg.LogLevel) {
		invalid = append(invalid, "log_level must be one of "+
			strings.Join(logging.ValidLogLevels, ", "))
	}
	if cfg.Kit.SearchWait < 0 {
		invalid = append(invalid, "search_wait cannot be negative")
	}
	if cfg.Kit.MinQueryLength < 0 {
		invalid = append(invalid, "min_query_length cannot be negative")
	}
	if cfg.Kit.ToastDuration <= 0 || cfg.Kit.ToastDuration > time.Minute {
		invalid = append(invalid, "toast_duration must be in (0, 1m]")
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(invalid, "; "))
	}

	return nil
}
