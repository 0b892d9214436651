package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 应用配置
type Config struct {
	Port             string
	DataPath         string        // Survey spreadsheet (.xlsx/.xlsm/.csv)
	Sheet            string        // Worksheet name, first sheet if empty
	IdentifierColumn string        // Respondent column excluded from analysis
	RateLimit        int           // Requests per window per IP, 0 disables
	RateLimitWindow  time.Duration // Rate limit window
	GinMode          string
}

// Load 加载配置
func Load() *Config {
	port := getenv("PORT", ":8080")
	if !strings.Contains(port, ":") {
		port = ":" + port
	}

	return &Config{
		Port:             port,
		DataPath:         getenv("SURVEY_DATA_PATH", "./data_kuesioner.xlsx"),
		Sheet:            os.Getenv("SURVEY_SHEET"),
		IdentifierColumn: getenv("SURVEY_ID_COLUMN", "Partisipan"),
		RateLimit:        getenvInt("RATE_LIMIT", 120),
		RateLimitWindow:  time.Duration(getenvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		GinMode:          getenv("GIN_MODE", "debug"),
	}
}

func getenv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
