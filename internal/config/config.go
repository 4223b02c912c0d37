// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/budgetwise/backend/pkg/advisor"
	"github.com/joho/godotenv"
)

// Defaults for the HTTP server. The API is served on port 3000 so that it
// does not collide with the credit card service on 8080.
const (
	DefaultAPIURL = "http://localhost:3000/api"
	DefaultPort   = "3000"
)

type Config struct {
	// HTTP server
	APIURL           string
	Port             string
	GinMode          string
	LogFormat        string
	CORSAllowOrigins string
	EnablePprof      bool

	// Database
	DBPath string

	// AI provider. Recommendations are disabled without an API key
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	// Credit card service
	CardServiceURL string
}

// Load reads the configuration from the environment.
//
// Variables from the given .env files are added to the environment first,
// variables already set are not overwritten. Without files, ".env" in the
// working directory is used if it exists.
func Load(files ...string) (*Config, error) {
	err := godotenv.Load(files...)
	if err != nil && !(len(files) == 0 && errors.Is(err, os.ErrNotExist)) {
		return nil, fmt.Errorf("could not load environment file: %w", err)
	}

	return &Config{
		APIURL:           getEnv("API_URL", DefaultAPIURL),
		Port:             getEnv("PORT", DefaultPort),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogFormat:        os.Getenv("LOG_FORMAT"),
		CORSAllowOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",

		DBPath: getEnv("DB_PATH", "data/budgetwise.db"),

		LLMBaseURL: getEnv("LLM_BASE_URL", advisor.DefaultBaseURL),
		LLMAPIKey:  os.Getenv("LLM_API_KEY"),
		LLMModel:   getEnv("LLM_MODEL", advisor.DefaultModel),

		CardServiceURL: getEnv("CARD_SERVICE_URL", "http://localhost:8080"),
	}, nil
}

// Validate returns an error listing every invalid setting.
func (c *Config) Validate() error {
	var errs []string

	if c.APIURL == "" {
		errs = append(errs, "API_URL must be set")
	} else if err := validateURL(c.APIURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid API_URL: %v", err))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Sprintf("invalid GIN_MODE '%s': must be one of debug, release, test", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errs = append(errs, fmt.Sprintf("invalid LOG_FORMAT '%s': must be human or json", c.LogFormat))
	}

	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, "DB_PATH must not be empty")
	}

	if err := validateURL(c.LLMBaseURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid LLM_BASE_URL: %v", err))
	}

	if err := validateURL(c.CardServiceURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid CARD_SERVICE_URL: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// Advisor returns the configuration for the AI provider client.
func (c *Config) Advisor() advisor.Config {
	return advisor.Config{
		BaseURL: c.LLMBaseURL,
		APIKey:  c.LLMAPIKey,
		Model:   c.LLMModel,
	}
}

// RecommendationsEnabled reports whether an AI provider is configured.
func (c *Config) RecommendationsEnabled() bool {
	return c.LLMAPIKey != ""
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme of '%s' must be http or https", raw)
	}

	if u.Host == "" {
		return fmt.Errorf("'%s' has no host", raw)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
