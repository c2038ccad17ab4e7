package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// SecretKey signs the session cookie. The default is a lab placeholder;
	// when Env is "prod" it must be overridden via SECRET_KEY.
	SecretKey string

	// Env is "dev" (default) or "prod".
	Env string

	// LabUsername and LabPassword seed the single demo account.
	LabUsername string
	LabPassword string

	// RememberTTLHours is the lifetime of a "remember me" session cookie
	// in hours (default 720, i.e. 30 days). Set via REMEMBER_TTL_HOURS.
	RememberTTLHours int

	// DemoSeed seeds the fake post generator so the demo content is stable
	// across restarts. Set via DEMO_SEED.
	DemoSeed uint64

	// LogFormat is "text" (default) or "json" for structured logging.
	LogFormat string
}

func Load() Config {
	return Config{
		Port:      getEnv("PORT", "8080"),
		SecretKey: getEnv("SECRET_KEY", "your_secret_key_here"),
		Env:       getEnv("ENV", "dev"),

		LabUsername: getEnv("LAB_USERNAME", "user"),
		LabPassword: getEnv("LAB_PASSWORD", "qwerty"),

		RememberTTLHours: getEnvInt("REMEMBER_TTL_HOURS", 720),
		DemoSeed:         uint64(getEnvInt("DEMO_SEED", 11)),

		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
