package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/AnotherFullstackDev/sellctl/internal/lib"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	BaseURL        string                   `mapstructure:"base_url"`
	LogLevel       string                   `mapstructure:"log_level"`
	ValidateKey    bool                     `mapstructure:"validate_key"`
	Output         string                   `mapstructure:"output"`
	KeyringService string                   `mapstructure:"keyring_service"`
	Profiles       map[string]ProfileConfig `mapstructure:"profiles"`
	v              *viper.Viper
}

// ProfileConfig holds any top level keys; they replace the base values when the profile is selected.
type ProfileConfig struct {
	Extras map[string]any `mapstructure:",remain"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("base_url", lib.DefaultBaseURL)
	v.SetDefault("log_level", "info")
	v.SetDefault("validate_key", true)
	v.SetDefault("output", OutputJSON)
	v.SetDefault("keyring_service", lib.DefaultKeyringService)

	v.SetEnvPrefix(lib.EnvKeyPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func newConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.v = v
	return &cfg, nil
}

// Load reads .env from the working directory (if any) and then the config file at path.
// An empty path yields defaults with environment overrides only.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if path == "" {
		return newConfigFromViper(newViper())
	}
	return NewConfigFromPath(path)
}

func NewConfigFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return newConfigFromViper(v)
}

func NewConfigFromReader(reader io.Reader) (*Config, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("reading config from reader: %w", err)
	}

	return newConfigFromViper(v)
}

// WithProfile returns a copy of the config with the profile's keys merged over the base ones.
// Environment variables still take precedence.
func (c *Config) WithProfile(profile string) (*Config, error) {
	profileCfg, ok := c.Profiles[profile]
	if !ok {
		return nil, fmt.Errorf("profile '%s' not found in config: %w", profile, lib.BadUserInputError)
	}

	newV := newViper()
	if err := newV.MergeConfigMap(c.v.AllSettings()); err != nil {
		return nil, fmt.Errorf("merging config map from global config instance: %w", err)
	}
	if err := newV.MergeConfigMap(profileCfg.Extras); err != nil {
		return nil, fmt.Errorf("merging profile config map: %w", err)
	}

	cfg, err := newConfigFromViper(newV)
	if err != nil {
		return nil, fmt.Errorf("loading profile '%s': %w", profile, err)
	}
	return cfg, nil
}

// Validate reports BadUserInputError for settings no command can work with.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output must be %q or %q, got %q: %w", OutputJSON, OutputYAML, c.Output, lib.BadUserInputError)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty: %w", lib.BadUserInputError)
	}
	return nil
}
