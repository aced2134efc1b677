// Package config loads application configuration from environment variables.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Database settings are required and missing
// values abort startup; everything else falls back to documented defaults
// so a bare deployment still comes up in a usable state.
type Config struct {
	Env         string        // application environment (e.g. "dev", "prod")
	Port        string        // HTTP port to listen on
	DBUser      string        // database username
	DBPass      string        // database password (optional)
	DBHost      string        // database host address
	DBPort      string        // database port number
	DBName      string        // database name
	JWTSecret   []byte        // secret used to sign bearer tokens
	TokenTTL    time.Duration // lifetime of issued bearer tokens
	BcryptCost  int           // bcrypt cost for password hashing
	CORSOrigins []string      // allowed CORS origins

	// Cloudinary credentials for the admin image upload proxy.  All three
	// must be set for uploads to work; otherwise the endpoint reports the
	// feature as unavailable.
	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
//
// JWT_SECRET is deliberately not required: when absent an ephemeral random
// secret is generated and a warning is logged, because every restart then
// invalidates all outstanding tokens.
func Load() Config {
	return Config{
		Env:         getenv("APP_ENV", "dev"),
		Port:        getenv("APP_PORT", "8000"),
		DBUser:      must("DB_USER"),
		DBPass:      os.Getenv("DB_PASS"), // empty allowed
		DBHost:      must("DB_HOST"),
		DBPort:      must("DB_PORT"),
		DBName:      must("DB_NAME"),
		JWTSecret:   loadSecret(),
		TokenTTL:    time.Duration(envInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		BcryptCost:  envInt("BCRYPT_COST", bcrypt.DefaultCost),
		CORSOrigins: splitOrigins(getenv("CORS_ORIGINS", "*")),

		CloudinaryCloud:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}
}

// loadSecret returns the configured signing secret, or a freshly generated
// ephemeral one when JWT_SECRET is unset.
func loadSecret() []byte {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return []byte(v)
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("config: generate ephemeral JWT secret: %v", err)
	}
	log.Printf("config: JWT_SECRET not set; generated an ephemeral secret. " +
		"All issued tokens become invalid when this process restarts.")
	return []byte(hex.EncodeToString(buf))
}

// splitOrigins parses a comma-separated origin list, trimming whitespace.
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the variable's value or the given default when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt reads an integer variable, falling back to def when unset.  A set
// but unparsable value is a configuration mistake and aborts startup.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
