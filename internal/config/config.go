package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Database settings
	DatabasePath string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Cache settings
	CacheSize int
	CacheTTL  time.Duration

	// Court settings
	CourtBaseURL string
	SearchPath   string
	CourtName    string

	// Scraper settings
	ScraperTimeout  time.Duration
	DocumentTimeout time.Duration
	UserAgent       string
	NotFoundPhrases []string

	// API settings
	APIRateLimit  int
	APIRateWindow time.Duration
}

// defaultNotFoundPhrases are the negative-result markers court sites
// render instead of an HTTP error status
var defaultNotFoundPhrases = []string{
	"no record found",
	"invalid case number",
	"case not found",
	"error occurred",
	"invalid input",
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not an error if .env doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./data/court_cases.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		CourtBaseURL: getEnv("COURT_BASE_URL", "https://delhihighcourt.nic.in"),
		SearchPath:   getEnv("COURT_SEARCH_PATH", "/case_status.asp"),
		CourtName:    getEnv("COURT_NAME", "Delhi High Court"),
		UserAgent: getEnv("USER_AGENT",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
	}

	cfg.NotFoundPhrases = defaultNotFoundPhrases
	if raw := os.Getenv("COURT_NOT_FOUND_PHRASES"); raw != "" {
		cfg.NotFoundPhrases = splitPhrases(raw)
	}

	// Parse integer values
	var err error
	cfg.CacheSize, err = strconv.Atoi(getEnv("CACHE_SIZE", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = time.Duration(cacheTTL) * time.Minute

	scraperTimeout, err := strconv.Atoi(getEnv("SCRAPER_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCRAPER_TIMEOUT: %w", err)
	}
	cfg.ScraperTimeout = time.Duration(scraperTimeout) * time.Second

	documentTimeout, err := strconv.Atoi(getEnv("DOCUMENT_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid DOCUMENT_TIMEOUT: %w", err)
	}
	cfg.DocumentTimeout = time.Duration(documentTimeout) * time.Second

	cfg.APIRateLimit, err = strconv.Atoi(getEnv("API_RATE_LIMIT", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_LIMIT: %w", err)
	}

	apiRateWindow, err := strconv.Atoi(getEnv("API_RATE_WINDOW", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_WINDOW: %w", err)
	}
	cfg.APIRateWindow = time.Duration(apiRateWindow) * time.Second

	return cfg, nil
}

// SearchURL is the full URL of the case status search form
func (c *Config) SearchURL() string {
	return strings.TrimRight(c.CourtBaseURL, "/") + c.SearchPath
}

func splitPhrases(raw string) []string {
	var phrases []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			phrases = append(phrases, strings.ToLower(p))
		}
	}
	return phrases
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
