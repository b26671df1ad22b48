package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names for the bootstrap credentials.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
)

// ErrMissingCredential indicates a required bootstrap variable is absent.
var ErrMissingCredential = errors.New("missing required credential")

// Credentials holds the static AWS identity used to authenticate against
// Secrets Manager. Immutable once loaded.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// LoadCredentials reads the bootstrap credentials from the environment.
//
// When envFile is non-empty that file is loaded first; otherwise a ".env"
// in the working directory is tried. A missing file is ignored, since in
// deployed environments the variables are set directly. Both credentials
// are required; a missing one returns an error wrapping
// ErrMissingCredential and the caller is expected to halt startup.
func LoadCredentials(envFile string) (Credentials, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Credentials{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		// Best effort only.
		_ = godotenv.Load()
	}

	creds := Credentials{
		AccessKeyID:     os.Getenv(EnvAccessKeyID),
		SecretAccessKey: os.Getenv(EnvSecretAccessKey),
	}

	if creds.AccessKeyID == "" {
		return Credentials{}, fmt.Errorf("%w: %s", ErrMissingCredential, EnvAccessKeyID)
	}
	if creds.SecretAccessKey == "" {
		return Credentials{}, fmt.Errorf("%w: %s", ErrMissingCredential, EnvSecretAccessKey)
	}

	return creds, nil
}

// GetEnv returns an environment variable value or a default
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool returns a boolean environment variable or a default
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}
