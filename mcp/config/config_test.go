package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv(EnvAPIURL, "https://env.example/yourls-api.php")

	cfg, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	require.NotNil(t, cfg.YOURLS)
	assert.Equal(t, "https://env.example/yourls-api.php", cfg.YOURLS.APIURL)
	assert.Equal(t, "", cfg.YOURLS.Username)
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
yourls:
  api_url: https://file.example/yourls-api.php
  username: fileuser
  password: filepass
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(EnvUsername, "envuser")

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, cfg.YOURLS)
	// environment always wins over the file
	assert.Equal(t, "envuser", cfg.YOURLS.Username)
	assert.Equal(t, "https://file.example/yourls-api.php", cfg.YOURLS.APIURL)
	assert.Equal(t, "filepass", cfg.YOURLS.Password)
}

func TestLoad_SignedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
yourls:
  api_url: https://file.example/yourls-api.php
  signature_token: tok
  signature_ttl: 600
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, cfg.YOURLS)
	assert.True(t, cfg.YOURLS.Signed())
	assert.Equal(t, "tok", cfg.YOURLS.SignatureToken)
	assert.Equal(t, 600, cfg.YOURLS.SignatureTTL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	// validation of required keys is deferred to Validate
	assert.Error(t, cfg.Validate())
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("yourls: [unclosed"), 0o600))

	_, err := Load(context.Background(), path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:    "missing section",
			config:  Config{},
			wantErr: "missing yourls configuration",
		},
		{
			name:    "static missing credentials",
			config:  Config{YOURLS: &YOURLS{APIURL: "https://a.example"}},
			wantErr: "username, password",
		},
		{
			name:    "missing api_url",
			config:  Config{YOURLS: &YOURLS{Username: "u", Password: "p"}},
			wantErr: "api_url",
		},
		{
			name:   "static complete",
			config: Config{YOURLS: &YOURLS{APIURL: "https://a.example", Username: "u", Password: "p"}},
		},
		{
			name:   "signed complete",
			config: Config{YOURLS: &YOURLS{APIURL: "https://a.example", SignatureToken: "tok"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
