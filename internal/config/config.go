package config

import (
	"os"
	"strconv"
)

type Config struct {
	ListenAddr    string
	DBPath        string
	VisionBackend string
	OllamaHost    string
	OllamaModel   string
	ClaudeAPIKey  string
	ClaudeModel   string
	SeedCount     int
	LogLevel      string
	LogFile       string
}

// Load reads configuration from the environment. FOODRESCUE_DB (the
// FoodRescueDb connection string) has no default on purpose: its absence
// must surface as a fatal startup error in the connection factory.
func Load() *Config {
	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		DBPath:        os.Getenv("FOODRESCUE_DB"),
		VisionBackend: getEnv("VISION_BACKEND", "ollama"),
		OllamaHost:    getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "moondream"),
		ClaudeAPIKey:  getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:   getEnv("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		SeedCount:     getEnvInt("SEED_COUNT", 10),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
