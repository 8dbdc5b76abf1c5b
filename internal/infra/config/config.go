package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "configs/config.yaml"
	defaultEnvFile    = ".env"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Summary SummaryConfig `yaml:"summary"`
	LLM     LLMConfig     `yaml:"llm"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS"`
	ReadTimeout     time.Duration `yaml:"readTimeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" env:"HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
	AllowedOrigins  []string      `yaml:"allowedOrigins" env:"HTTP_ALLOWED_ORIGINS" envSeparator:","`
}

// SummaryConfig defines the prompt settings for the summarizer domain.
type SummaryConfig struct {
	SystemPrompt   string `yaml:"systemPrompt" env:"SUMMARY_SYSTEM_PROMPT"`
	MaxInputTokens int    `yaml:"maxInputTokens" env:"SUMMARY_MAX_INPUT_TOKENS"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey      string        `yaml:"apiKey" env:"OPENAI_API_KEY"`
	BaseURL     string        `yaml:"baseUrl" env:"OPENAI_BASE_URL"`
	Model       string        `yaml:"model" env:"LLM_MODEL"`
	Temperature float32       `yaml:"temperature" env:"LLM_TEMPERATURE"`
	Timeout     time.Duration `yaml:"timeout" env:"LLM_TIMEOUT"`
}

// Load reads configuration from a YAML file, an optional .env file and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := hydrateFromFile(cfg, defaultConfigPath); err != nil {
			return nil, err
		}
	}

	if err := loadEnvFile(defaultEnvFile); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// loadEnvFile exports variables from a dotenv file without overriding the
// process environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Summary: SummaryConfig{
			SystemPrompt:   "You are a helpful assistant that creates clear, accurate summaries. Focus on the most important information and maintain the requested format.",
			MaxInputTokens: 12000,
		},
		LLM: LLMConfig{
			Model:       "gpt-3.5-turbo",
			Temperature: 0.5,
			Timeout:     45 * time.Second,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return errors.New("llm.apiKey cannot be empty (set OPENAI_API_KEY)")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be between 0 and 2")
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("llm.timeout must be positive")
	}
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return errors.New("http.shutdownTimeout must be positive")
	}
	if c.HTTP.WriteTimeout > 0 && c.HTTP.WriteTimeout < c.LLM.Timeout {
		return errors.New("http.writeTimeout must not be shorter than llm.timeout")
	}
	if strings.TrimSpace(c.Summary.SystemPrompt) == "" {
		return errors.New("summary.systemPrompt cannot be empty")
	}
	if c.Summary.MaxInputTokens < 0 {
		return errors.New("summary.maxInputTokens cannot be negative")
	}
	return nil
}
