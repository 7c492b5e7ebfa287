package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	JWTTTL        time.Duration
	Port          string
	CORSOrigins   []string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "cortexbank",
		JWTSecret:     "tech-challenge",
		JWTTTL:        12 * time.Hour,
		Port:          "9446",
	}

	envMongoURI := os.Getenv("MONGO_URI")
	envMongoDatabase := os.Getenv("MONGO_DATABASE")
	envJWTSecret := os.Getenv("JWT_SECRET")
	envJWTTTLHours := os.Getenv("JWT_TTL_HOURS")
	envPort := os.Getenv("PORT")
	envCORSOrigins := os.Getenv("CORS_ORIGINS")

	if len(envMongoURI) != 0 {
		env.MongoURI = envMongoURI
	}

	if len(envMongoDatabase) != 0 {
		env.MongoDatabase = envMongoDatabase
	}

	if len(envJWTSecret) != 0 {
		env.JWTSecret = envJWTSecret
	}

	if len(envJWTTTLHours) != 0 {
		hours, err := strconv.Atoi(envJWTTTLHours)
		if err != nil {
			return nil, err
		}
		env.JWTTTL = time.Duration(hours) * time.Hour
	}

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envCORSOrigins) != 0 {
		for _, origin := range strings.Split(envCORSOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if len(origin) != 0 {
				env.CORSOrigins = append(env.CORSOrigins, origin)
			}
		}
	}

	return &env, nil
}
