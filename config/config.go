package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"ptplan/ai"
	"ptplan/plan"
)

const (
	EnvPrefix      = "PTPLAN"
	DefaultEnvFile = ".env.local"
	DefaultKeyFile = "api-key"
)

var (
	ErrEmptyAPIKey     = errors.New("api key file is empty")
	ErrUnknownProvider = errors.New("unknown provider")
)

// Config is read from PTPLAN_* environment variables. Every field has a default,
// so a bare run behaves like the console tool always has.
type Config struct {
	Provider   string `mapstructure:"provider"`
	Model      string `mapstructure:"model"`
	APIKeyFile string `mapstructure:"api_key_file"`
	OutputFile string `mapstructure:"output_file"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
}

// Load reads envFile into the environment when it exists, then builds the config.
// Variables already set in the environment win over envFile.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("provider", string(ai.OpenAiServiceType))
	v.SetDefault("model", "")
	v.SetDefault("api_key_file", DefaultKeyFile)
	v.SetDefault("output_file", plan.DefaultOutputFile)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch ai.AiServiceType(c.Provider) {
	case ai.OpenAiServiceType, ai.AnthropicServiceType:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	if c.APIKeyFile == "" {
		return errors.New("api_key_file is required")
	}
	if c.OutputFile == "" {
		return errors.New("output_file is required")
	}
	return nil
}

func (c *Config) ServiceType() ai.AiServiceType {
	return ai.AiServiceType(c.Provider)
}

// LoadAPIKey returns the credential stored in path with surrounding whitespace removed.
func LoadAPIKey(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read api key: %w", err)
	}

	key := strings.TrimSpace(string(content))
	if key == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyAPIKey, path)
	}
	return key, nil
}
