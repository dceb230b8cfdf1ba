package dsn

import (
	"fmt"
	"os"
)

func build(host, port, user, pass, dbname string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
}

// FromEnv assembles the Postgres DSN from environment variables.
func FromEnv() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	return build(host, os.Getenv("DB_PORT"), os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_NAME"))
}

// FromEnvE2E reads the *_TEST variables used by the end-to-end tests.
func FromEnvE2E() string {
	host := os.Getenv("DB_HOST_TEST")
	if host == "" {
		return ""
	}
	return build(host, os.Getenv("DB_PORT_TEST"), os.Getenv("DB_USER_TEST"), os.Getenv("DB_PASS_TEST"), os.Getenv("DB_NAME_TEST"))
}

// JWTSecret returns the token signing secret, with a development fallback.
func JWTSecret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "secret-key"
}

// AuthEnabled selects the authenticated variant of the API.
func AuthEnabled() bool {
	return os.Getenv("AUTH_ENABLED") == "true"
}
