package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredentials(t *testing.T) {
	tests := []struct {
		name      string
		accessKey string
		secretKey string
		wantErr   bool
	}{
		{
			name:      "both credentials present",
			accessKey: "AKIAEXAMPLE",
			secretKey: "shhh",
			wantErr:   false,
		},
		{
			name:      "missing access key id",
			accessKey: "",
			secretKey: "shhh",
			wantErr:   true,
		},
		{
			name:      "missing secret access key",
			accessKey: "AKIAEXAMPLE",
			secretKey: "",
			wantErr:   true,
		},
		{
			name:    "both missing",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAccessKeyID, tt.accessKey)
			t.Setenv(EnvSecretAccessKey, tt.secretKey)

			creds, err := LoadCredentials("")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingCredential)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.accessKey, creds.AccessKeyID)
			assert.Equal(t, tt.secretKey, creds.SecretAccessKey)
		})
	}
}

func TestLoadCredentialsFromEnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set, so they must
	// be fully unset here. t.Setenv registers the restore.
	t.Setenv(EnvAccessKeyID, "")
	t.Setenv(EnvSecretAccessKey, "")
	os.Unsetenv(EnvAccessKeyID)
	os.Unsetenv(EnvSecretAccessKey)

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "AWS_ACCESS_KEY_ID=file-key\nAWS_SECRET_ACCESS_KEY=file-secret\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	creds, err := LoadCredentials(envFile)
	require.NoError(t, err)
	assert.Equal(t, "file-key", creds.AccessKeyID)
	assert.Equal(t, "file-secret", creds.SecretAccessKey)
}

func TestLoadCredentialsMissingEnvFile(t *testing.T) {
	_, err := LoadCredentials(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
}

// TestGetEnv tests the GetEnv helper function
func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		want         string
	}{
		{
			name:         "returns env value when set",
			key:          "TEST_VAR",
			defaultValue: "default",
			envValue:     "custom",
			want:         "custom",
		},
		{
			name:         "returns default when env not set",
			key:          "TEST_VAR_NOT_SET",
			defaultValue: "default",
			envValue:     "",
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			}

			got := GetEnv(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestGetEnvBool tests the GetEnvBool helper function
func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue bool
		envValue     string
		want         bool
	}{
		{
			name:         "returns true for 'true'",
			key:          "TEST_BOOL",
			defaultValue: false,
			envValue:     "true",
			want:         true,
		},
		{
			name:         "returns true for '1'",
			key:          "TEST_BOOL",
			defaultValue: false,
			envValue:     "1",
			want:         true,
		},
		{
			name:         "returns false for 'false'",
			key:          "TEST_BOOL",
			defaultValue: true,
			envValue:     "false",
			want:         false,
		},
		{
			name:         "returns default when not set",
			key:          "TEST_BOOL_NOT_SET",
			defaultValue: true,
			envValue:     "",
			want:         true,
		},
		{
			name:         "returns true for 'TRUE' (case insensitive)",
			key:          "TEST_BOOL",
			defaultValue: false,
			envValue:     "TRUE",
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			}

			got := GetEnvBool(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetEnvBool() = %v, want %v", got, tt.want)
			}
		})
	}
}
