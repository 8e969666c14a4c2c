package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string

	StateFile string
	StateDSN  string

	LogLevel string

	// Fixture server knobs.
	FixturePort int
	DatabaseURL string
	JWTSecret   []byte
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return Config{
		APIBaseURL: EnvDefault("SHOPFRONT_API_URL", "http://localhost:8080/api"),

		StateFile: EnvDefault("SHOPFRONT_STATE_FILE", defaultStateFile()),
		StateDSN:  os.Getenv("SHOPFRONT_STATE_DSN"),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),

		FixturePort: EnvIntDefault("FIXTURE_PORT", 8080),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   []byte(EnvDefault("JWT_SECRET", "fixture-secret")),
	}
}

func defaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".shopfront_state.json"
	}
	return dir + "/shopfront/state.json"
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}
