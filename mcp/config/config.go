package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// Environment variables overriding static-auth fields. Signature-mode fields
// have no environment counterpart on purpose; they are file-only.
const (
	EnvAPIURL   = "YOURLS_API_URL"
	EnvUsername = "YOURLS_USERNAME"
	EnvPassword = "YOURLS_PASSWORD"
)

// YOURLS holds backend connection settings. Either username/password or
// signature_token must be present; signature_ttl is optional and
// informational (the backend's expected validity window, in seconds).
type YOURLS struct {
	APIURL         string `yaml:"api_url,omitempty" json:"api_url,omitempty"`
	Username       string `yaml:"username,omitempty" json:"username,omitempty"`
	Password       string `yaml:"password,omitempty" json:"password,omitempty"`
	SignatureToken string `yaml:"signature_token,omitempty" json:"signature_token,omitempty"`
	SignatureTTL   int    `yaml:"signature_ttl,omitempty" json:"signature_ttl,omitempty"`
}

// Signed reports whether the signature scheme is configured. A present token
// selects signed auth; otherwise static credentials are expected.
func (y *YOURLS) Signed() bool { return y.SignatureToken != "" }

type Config struct {
	YOURLS *YOURLS            `yaml:"yourls,omitempty" json:"yourls,omitempty"`
	Server *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
}

// Load resolves configuration from the first existing candidate path –
// the explicit path argument, ./config.yaml, ~/.config/yourls-mcp/config.yaml
// – then overlays environment variables. A missing file is not an error;
// required-key validation is deferred to Validate.
func Load(ctx context.Context, path string) (*Config, error) {
	fs := afs.New()
	var cfg Config
	for _, candidate := range candidates(path) {
		if candidate == "" {
			continue
		}
		if ok, _ := fs.Exists(ctx, candidate); !ok {
			continue
		}
		data, err := fs.DownloadWithURL(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", candidate, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", candidate, err)
		}
		break
	}
	cfg.applyEnv()
	return &cfg, nil
}

func candidates(path string) []string {
	result := []string{path, "config.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		result = append(result, filepath.Join(home, ".config", "yourls-mcp", "config.yaml"))
	}
	return result
}

// applyEnv overlays environment variables onto the file configuration,
// creating the yourls section when absent. Environment always wins.
func (c *Config) applyEnv() {
	overrides := []struct {
		env   string
		apply func(*YOURLS, string)
	}{
		{EnvAPIURL, func(y *YOURLS, v string) { y.APIURL = v }},
		{EnvUsername, func(y *YOURLS, v string) { y.Username = v }},
		{EnvPassword, func(y *YOURLS, v string) { y.Password = v }},
	}
	for _, o := range overrides {
		if value, ok := os.LookupEnv(o.env); ok {
			if c.YOURLS == nil {
				c.YOURLS = &YOURLS{}
			}
			o.apply(c.YOURLS, value)
		}
	}
}

// Validate checks that the yourls section is present and that the key set of
// the inferred auth mode is complete. The error names every missing key.
func (c *Config) Validate() error {
	if c.YOURLS == nil {
		return fmt.Errorf("missing yourls configuration section")
	}
	var missing []string
	if c.YOURLS.APIURL == "" {
		missing = append(missing, "api_url")
	}
	if !c.YOURLS.Signed() {
		if c.YOURLS.Username == "" {
			missing = append(missing, "username")
		}
		if c.YOURLS.Password == "" {
			missing = append(missing, "password")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required yourls configuration keys: %s", strings.Join(missing, ", "))
	}
	return nil
}
