package sigcard

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"google.golang.org/genai"
)

// Config holds the settings read from the environment.
type Config struct {
	APIKey      string        // GEMINI_API_KEY
	Model       string        // SIGCARD_MODEL
	Timeout     time.Duration // SIGCARD_TIMEOUT
	Temperature *float32      // SIGCARD_TEMPERATURE, nil → model default
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() Config {
	return Config{
		APIKey:      getEnv("GEMINI_API_KEY", ""),
		Model:       getEnv("SIGCARD_MODEL", DefaultModel),
		Timeout:     getEnvAsDuration("SIGCARD_TIMEOUT", DefaultTimeout),
		Temperature: getEnvAsFloat32("SIGCARD_TEMPERATURE"),
	}
}

// Validate reports missing required settings.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Options returns the extraction options described by c.
func (c Config) Options() []func(*Options) {
	opts := []func(*Options){
		WithModel(c.Model),
		WithTimeout(c.Timeout),
	}
	if c.Temperature != nil {
		opts = append(opts, WithTemperature(*c.Temperature))
	}
	return opts
}

// NewClient creates a Gemini API client for c.
func (c Config) NewClient(ctx context.Context) (*genai.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  c.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string) *float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			f := float32(floatVal)
			return &f
		}
	}
	return nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
