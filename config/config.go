package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// API Configuration
	APIPort        string
	APIHost        string
	APIEnvironment string

	// Database
	DatabasePath string

	// Redis
	RedisURL string

	// Logging
	LogLevel  string
	LogFormat string

	// Sentiment scoring
	OpenAIAPIKey string
	OpenAIModel  string

	// Finance data source
	FinanceBaseURL string

	// Business support
	ReminderLogPath string
	ExportDir       string

	// Automated reporting
	ReportTicker       string
	ReportRegion       string
	ReportCronSchedule string

	// Analysis cache TTL in minutes
	AnalysisCacheTTL int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// API
		APIPort:        getEnv("API_PORT", "8080"),
		APIHost:        getEnv("API_HOST", "0.0.0.0"),
		APIEnvironment: getEnv("API_ENVIRONMENT", "development"),

		// Database
		DatabasePath: getEnv("DATABASE_PATH", "./data/bizradar.db"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		// Sentiment
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		// Finance
		FinanceBaseURL: getEnv("FINANCE_BASE_URL", "https://query1.finance.yahoo.com"),

		// Business support
		ReminderLogPath: getEnv("REMINDER_LOG_PATH", "./data/reminders.log"),
		ExportDir:       getEnv("EXPORT_DIR", "./data/exports"),

		// Automated reporting
		ReportTicker:       getEnv("REPORT_TICKER", ""),
		ReportRegion:       getEnv("REPORT_REGION", "IN"),
		ReportCronSchedule: getEnv("REPORT_CRON_SCHEDULE", "0 3 * * 1"),

		// Cache
		AnalysisCacheTTL: getEnvAsInt("ANALYSIS_CACHE_TTL_MINUTES", 15),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
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
