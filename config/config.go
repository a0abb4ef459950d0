package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every runtime parameter of the application.
type Config struct {
	DatabaseURL           string
	ServerPort            int
	JWTSecretKey          string
	OrganizerEmail        string
	OrganizerPasswordHash string
	CORSAllowedOrigins    []string
}

// Load reads configuration from environment variables, optionally seeded
// from a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing .env is not an error

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	organizerEmail := os.Getenv("ORGANIZER_EMAIL")
	if organizerEmail == "" {
		return nil, fmt.Errorf("ORGANIZER_EMAIL environment variable is not set")
	}

	// A bcrypt hash, never the plain password.
	organizerHash := os.Getenv("ORGANIZER_PASSWORD_HASH")
	if organizerHash == "" {
		return nil, fmt.Errorf("ORGANIZER_PASSWORD_HASH environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return &Config{
		DatabaseURL:           dbURL,
		ServerPort:            port,
		JWTSecretKey:          jwtKey,
		OrganizerEmail:        organizerEmail,
		OrganizerPasswordHash: organizerHash,
		CORSAllowedOrigins:    origins,
	}, nil
}
