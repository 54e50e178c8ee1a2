package config

import (
	"os"
	"strconv"
)

// Config holds process-level settings sourced from the environment.
type Config struct {
	InputDir string
	Session  string
	BaseURL  string
	LogLevel string
	Workers  int
}

func Load() *Config {
	return &Config{
		InputDir: getEnv("AOC_INPUT_DIR", "input"),
		Session:  getEnv("AOC_SESSION", ""),
		BaseURL:  getEnv("AOC_BASE_URL", "https://adventofcode.com"),
		LogLevel: getEnv("AOC_LOG_LEVEL", "info"),
		Workers:  getEnvInt("AOC_WORKERS", 4),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
