package mcp

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/urltools/yourls-mcp/mcp/config"
	"github.com/urltools/yourls-mcp/yourls"
)

// Service bundles the effective configuration, the YOURLS client and the
// tool entries built from it. It is immutable after New and safe to share
// across concurrently served connections.
type Service struct {
	config *config.Config
	client *yourls.Client
	tools  serverproto.Tools
}

// Option modifies a service instance before it is initialised.
type Option func(*options)

type options struct {
	config        *config.Config
	configPath    string
	clientOptions []yourls.Option
}

// WithConfig sets an already resolved configuration instance; config loading
// is skipped entirely.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithConfigPath sets an explicit config file path checked before the
// default candidate locations.
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithClientOptions forwards options to the YOURLS client constructor, e.g.
// a custom HTTP client.
func WithClientOptions(opts ...yourls.Option) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, opts...)
	}
}

// New resolves configuration, validates it, constructs the backend client
// and builds the tool registry. Every failure here is a startup failure.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	cfg := o.config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(ctx, o.configPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := newClient(cfg.YOURLS, o.clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("create yourls client: %w", err)
	}
	s := &Service{config: cfg, client: client}
	s.tools = s.buildTools()
	log.Debug().Int("tools", len(s.tools)).Str("endpoint", client.Endpoint()).Msg("yourls mcp service ready")
	return s, nil
}

// newClient maps the configuration section onto a client credential set. A
// present signature token selects signed auth, otherwise static credentials
// are used.
func newClient(y *config.YOURLS, opts ...yourls.Option) (*yourls.Client, error) {
	auth := yourls.Auth{Mode: yourls.ModeStatic, Username: y.Username, Password: y.Password}
	if y.Signed() {
		auth = yourls.Auth{Mode: yourls.ModeSigned, SignatureToken: y.SignatureToken, SignatureTTL: y.SignatureTTL}
	}
	return yourls.New(y.APIURL, auth, opts...)
}

// Config returns the effective configuration. Callers must treat the
// returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Client returns the underlying YOURLS client.
func (s *Service) Client() *yourls.Client { return s.client }

// Tools returns the registered tool entries.
func (s *Service) Tools() serverproto.Tools { return s.tools }

// LookupTool returns the entry registered under name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	for _, entry := range s.tools {
		if entry.Metadata.Name == name {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("unknown tool: %v", name)
}
