package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	AI      AIConfig
	Logging LoggingConfig
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	FrontendURL     string
	Environment     string
}

// StoreConfig contains knowledge store (Fuseki) configuration
type StoreConfig struct {
	QueryEndpoint  string
	UpdateEndpoint string
	OntologyNS     string
	Timeout        time.Duration
	ProbeSchedule  string // cron spec for the availability probe
}

// AIConfig contains generative AI collaborator configuration
type AIConfig struct {
	OpenAIAPIKey  string
	UseGenerative bool
	Model         string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors as it's optional)
	_ = godotenv.Load()

	queryEndpoint := getEnv("FUSEKI_ENDPOINT", "http://localhost:3030/tourisme-eco-2/sparql")

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8000),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 45*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
			Environment:     getEnv("ENVIRONMENT", "development"),
		},
		Store: StoreConfig{
			QueryEndpoint:  queryEndpoint,
			UpdateEndpoint: getEnv("FUSEKI_UPDATE_ENDPOINT", deriveUpdateEndpoint(queryEndpoint)),
			OntologyNS:     getEnv("ONTOLOGY_NS", "http://www.semanticweb.org/achref/ontologies/2025/9/tourism-eco#"),
			Timeout:        getEnvAsDuration("FUSEKI_TIMEOUT", 30*time.Second),
			ProbeSchedule:  getEnv("STORE_PROBE_SCHEDULE", "@every 1m"),
		},
		AI: AIConfig{
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			UseGenerative: getEnvAsBool("USE_GENERATIVE_AI", false),
			Model:         getEnv("OPENAI_MODEL", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Store.QueryEndpoint == "" {
		return fmt.Errorf("FUSEKI_ENDPOINT must be set")
	}

	if c.AI.UseGenerative && c.AI.OpenAIAPIKey == "" {
		return fmt.Errorf("USE_GENERATIVE_AI requires OPENAI_API_KEY")
	}

	return nil
}

// deriveUpdateEndpoint maps a Fuseki query endpoint to its update endpoint.
// Fuseki datasets expose /sparql for queries and /update for updates.
func deriveUpdateEndpoint(queryEndpoint string) string {
	if len(queryEndpoint) >= len("/sparql") && queryEndpoint[len(queryEndpoint)-len("/sparql"):] == "/sparql" {
		return queryEndpoint[:len(queryEndpoint)-len("/sparql")] + "/update"
	}
	return queryEndpoint
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
