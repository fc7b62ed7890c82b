package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	GeminiAPIKey string
	ModelName    string

	StorageBackend string // "memory" or "mongo"
	UseMockModel   bool   // true = canned replies, no API key needed
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "TRUE"
}

// Load reads all env vars and builds the config.
// Credentials come from the environment exclusively.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),

		MongoURI:        getEnv("MONGODB_URI", ""),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "nexaur_ai"),
		MongoCollection: getEnv("MONGODB_COLLECTION_PROPERTIES", "properties"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		ModelName:    getEnv("GEMINI_MODEL_NAME", "gemini-2.5-flash"),

		StorageBackend: getEnv("STORAGE_BACKEND", "mongo"),
		UseMockModel:   getBoolEnv("USE_MOCK_MODEL", false),
	}
}
