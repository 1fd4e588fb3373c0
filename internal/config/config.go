package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port          string
	DBPath        string
	APIToken      string
	GroqAPIKey    string
	GroqBaseURL   string
	GroqModel     string
	ApifyToken    string
	NeynarAPIKey  string
	Timezone      string
	RetentionDays int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("CASTFORGE_PORT", "8080"),
		DBPath:        getEnv("CASTFORGE_DB_PATH", ""),
		APIToken:      getEnv("CASTFORGE_API_TOKEN", ""),
		GroqAPIKey:    getEnv("CASTFORGE_GROQ_API_KEY", ""),
		GroqBaseURL:   getEnv("CASTFORGE_GROQ_URL", ""),
		GroqModel:     getEnv("CASTFORGE_GROQ_MODEL", ""),
		ApifyToken:    getEnv("CASTFORGE_APIFY_TOKEN", ""),
		NeynarAPIKey:  getEnv("CASTFORGE_NEYNAR_API_KEY", ""),
		Timezone:      getEnv("CASTFORGE_TIMEZONE", "Asia/Jakarta"),
		RetentionDays: getEnvInt("CASTFORGE_RETENTION_DAYS", 90),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("CASTFORGE_DB_PATH is required")
	}
	if c.GroqAPIKey == "" {
		return fmt.Errorf("CASTFORGE_GROQ_API_KEY is required")
	}
	if c.APIToken == "" {
		return fmt.Errorf("CASTFORGE_API_TOKEN is required")
	}
	if c.RetentionDays <= 0 {
		return fmt.Errorf("CASTFORGE_RETENTION_DAYS must be positive")
	}
	return nil
}

// ValidToken checks a bearer token presented by a client.
func (c *Config) ValidToken(token string) bool {
	return token != "" && token == c.APIToken
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
