package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Init loads .env and validates required settings.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	if os.Getenv("DB_DSN") == "" {
		Logger.Fatal("DB_DSN is not set")
	}

	// The verifier stays unconfigured without a secret; authenticated
	// routes then answer with a server configuration error.
	if os.Getenv("IDENTITY_JWT_SECRET") == "" {
		Logger.Warn("IDENTITY_JWT_SECRET is not set, bearer tokens cannot be verified")
	}
}

// EnvInt reads an integer environment variable, falling back to def when
// unset or unparsable.
func EnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
