package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ragdex/ragdex/internal/domain"
)

// Config holds the ragdex daemon configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
	Store     StoreConfig     `yaml:"store"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	WebSearch WebSearchConfig `yaml:"websearch"`
	Inference InferenceConfig `yaml:"inference"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// AuthConfig holds API authentication settings. Empty key list
// disables auth entirely.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Driver           string   `yaml:"driver"`     // memory, file, redis (default: memory)
	Path             string   `yaml:"path"`       // file driver: root directory
	KeyPrefix        string   `yaml:"key_prefix"` // redis driver
	Addrs            []string `yaml:"addrs"`      // redis driver
	Password         string   `yaml:"password"`   // redis driver
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	APIKey              string `yaml:"api_key"`
	BaseURL             string `yaml:"base_url"`
	Model               string `yaml:"model"`
	Dimensions          int    `yaml:"dimensions"`
	DocumentInstruction string `yaml:"document_instruction"`
	QueryInstruction    string `yaml:"query_instruction"`
	Cache               bool   `yaml:"cache"`
}

// RetrievalConfig holds similarity search and routing settings.
// Overrides remaps a category to a non-default strategy.
type RetrievalConfig struct {
	TopK            int               `yaml:"top_k"`
	MinScore        float64           `yaml:"min_score"`
	MaxContextChars int               `yaml:"max_context_chars"`
	Overrides       map[string]string `yaml:"overrides"`
}

// WebSearchConfig holds web search settings.
type WebSearchConfig struct {
	Language   string `yaml:"language"`
	TimeoutSec int    `yaml:"timeout_sec"`
	MaxResults int    `yaml:"max_results"`
}

// InferenceConfig holds LLM generation settings for an
// OpenAI-compatible endpoint.
type InferenceConfig struct {
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	TimeoutSec  int     `yaml:"timeout_sec"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "memory"
	}
	if c.Store.Path == "" {
		c.Store.Path = "data"
	}
	if c.Store.KeyPrefix == "" {
		c.Store.KeyPrefix = "ragdex:"
	}
	if c.Store.ReadinessTimeout <= 0 {
		c.Store.ReadinessTimeout = 10
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "nomic-embed-text"
	}
	if c.Embedding.Dimensions <= 0 {
		c.Embedding.Dimensions = 768
	}
	if c.Retrieval.TopK <= 0 {
		c.Retrieval.TopK = 5
	}
	if c.Retrieval.MinScore == 0 {
		c.Retrieval.MinScore = 0.5
	}
	if c.Retrieval.MaxContextChars <= 0 {
		c.Retrieval.MaxContextChars = 8192
	}
	if c.WebSearch.Language == "" {
		c.WebSearch.Language = "en"
	}
	if c.WebSearch.TimeoutSec <= 0 {
		c.WebSearch.TimeoutSec = 5
	}
	if c.WebSearch.MaxResults <= 0 {
		c.WebSearch.MaxResults = 3
	}
	if c.Inference.Model == "" {
		c.Inference.Model = "llama3"
	}
	if c.Inference.MaxTokens <= 0 {
		c.Inference.MaxTokens = 1024
	}
	if c.Inference.Temperature <= 0 {
		c.Inference.Temperature = 0.7
	}
	if c.Inference.TimeoutSec <= 0 {
		c.Inference.TimeoutSec = 120
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Store.Driver {
	case "memory", "file":
		// ok
	case "redis":
		if len(c.Store.Addrs) == 0 {
			return fmt.Errorf("store.addrs is required for the redis driver")
		}
	default:
		return fmt.Errorf("store.driver must be memory, file or redis, got %q", c.Store.Driver)
	}
	if c.Retrieval.MinScore < 0 || c.Retrieval.MinScore > 1 {
		return fmt.Errorf("retrieval.min_score must be within [0, 1], got %v", c.Retrieval.MinScore)
	}
	for cat, strat := range c.Retrieval.Overrides {
		if !domain.Category(cat).Valid() {
			return fmt.Errorf("retrieval.overrides: unknown category %q", cat)
		}
		if !domain.Strategy(strat).Valid() {
			return fmt.Errorf("retrieval.overrides.%s: unknown strategy %q", cat, strat)
		}
	}
	return nil
}

// StrategyOverrides converts the override section to domain types.
// Call after Validate.
func (c *Config) StrategyOverrides() map[domain.Category]domain.Strategy {
	if len(c.Retrieval.Overrides) == 0 {
		return nil
	}
	out := make(map[domain.Category]domain.Strategy, len(c.Retrieval.Overrides))
	for cat, strat := range c.Retrieval.Overrides {
		out[domain.Category(cat)] = domain.Strategy(strat)
	}
	return out
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
