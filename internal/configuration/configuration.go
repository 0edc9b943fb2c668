package configuration

import (
	"encoding/json"
	"net/url"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/internal/file"
	"github.com/malonaz/urlreader/internal/i18n"
)

// Environment variables that override the configuration file.
const (
	EnvAPIBaseURL     = "URLREADER_API_BASE_URL"
	EnvViteAPIBaseURL = "VITE_API_BASE_URL"
	EnvLanguage       = "URLREADER_LANGUAGE"
)

const dotenvPath = ".env"

var defaultConfig = Config{
	APIBaseURL:     api.DefaultBaseURL,
	BackendHost:    "http://localhost:8080",
	RequestTimeout: 10,
	DefaultModel:   string(api.ModelAzureOpenAI),
	DebugLogPath:   "/tmp/urlreader-debug.log",

	Web: WebConfig{
		Port: 3030,
	},
}

// Config holds configuration for the urlreader tool.
type Config struct {
	// Base URL of the backend API. A relative path is resolved against BackendHost.
	APIBaseURL string `json:"api_base_url"`
	// Scheme and host of the backend.
	BackendHost string `json:"backend_host"`
	// Request timeout in seconds.
	RequestTimeout int    `json:"request_timeout"`
	DefaultModel   string `json:"default_model"`
	// Locale of the UI, en or zh. Detected from $LANG when empty.
	Language     string `json:"language"`
	DebugLogPath string `json:"debug_log_path"`

	Web WebConfig `json:"web"`
}

// WebConfig holds configuration for urlreader serve.
type WebConfig struct {
	Port int `json:"port"`
}

// Parse a configuration file.
func Parse(path string) (*Config, error) {
	path, err := file.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}
	if err := config.finalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// Default returns the default configuration with environment overrides applied.
func Default() (*Config, error) {
	config := &Config{}
	if err := config.finalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// finalize fills missing fields and applies the environment.
func (c *Config) finalize() error {
	if err := mergo.Merge(c, defaultConfig); err != nil {
		return errors.Wrap(err, "merging default config")
	}

	if err := loadDotenv(dotenvPath); err != nil {
		return errors.Wrap(err, "loading .env")
	}
	c.applyEnvironment()

	if c.Language == "" {
		c.Language = string(i18n.Detect(os.Getenv("LANG")))
	}
	if !i18n.Locale(c.Language).Valid() {
		return errors.Errorf("unknown language %q", c.Language)
	}
	if !api.Model(c.DefaultModel).Valid() {
		return errors.Errorf("unknown default model %q", c.DefaultModel)
	}

	expandedDebugLogPath, err := file.ExpandPath(c.DebugLogPath)
	if err != nil {
		return errors.Wrap(err, "expanding debug log path")
	}
	c.DebugLogPath = expandedDebugLogPath
	return nil
}

func (c *Config) applyEnvironment() {
	if value := os.Getenv(EnvViteAPIBaseURL); value != "" {
		c.APIBaseURL = value
	}
	if value := os.Getenv(EnvAPIBaseURL); value != "" {
		c.APIBaseURL = value
	}
	if value := os.Getenv(EnvLanguage); value != "" {
		c.Language = strings.ToLower(value)
	}
}

// ResolveAPIBaseURL returns the absolute base URL of the backend API.
func (c *Config) ResolveAPIBaseURL() (string, error) {
	baseURL, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return "", errors.Wrap(err, "parsing api base url")
	}
	if baseURL.IsAbs() {
		return baseURL.String(), nil
	}
	host, err := url.Parse(c.BackendHost)
	if err != nil {
		return "", errors.Wrap(err, "parsing backend host")
	}
	if !host.IsAbs() {
		return "", errors.Errorf("backend host %q must be absolute", c.BackendHost)
	}
	return host.ResolveReference(baseURL).String(), nil
}

// Timeout returns the request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Model returns the default chat model.
func (c *Config) Model() api.Model {
	return api.Model(c.DefaultModel)
}

// Locale returns the UI locale.
func (c *Config) Locale() i18n.Locale {
	return i18n.Locale(c.Language)
}

// save a configuration file.
func (c *Config) save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := file.WriteFile(path, bytes, 0644); err != nil {
		return errors.Wrap(err, "writing file")
	}
	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}
	if err := defaultConfig.save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}

// loadDotenv loads variables from a .env file when one exists.
// Variables already set in the environment win.
func loadDotenv(path string) error {
	exists, err := file.Exists(path)
	if err != nil || !exists {
		return err
	}
	return godotenv.Load(path)
}
