package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urltools/yourls-mcp/mcp/config"
)

func TestNew_MissingSection(t *testing.T) {
	_, err := New(context.Background(), WithConfig(&config.Config{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yourls")
}

func TestNew_MissingKeys(t *testing.T) {
	_, err := New(context.Background(), WithConfig(&config.Config{
		YOURLS: &config.YOURLS{APIURL: "https://a.example", Username: "admin"},
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestNew_SignedMode(t *testing.T) {
	svc, err := New(context.Background(), WithConfig(&config.Config{
		YOURLS: &config.YOURLS{APIURL: "https://a.example", SignatureToken: "tok"},
	}))
	require.NoError(t, err)
	assert.NotNil(t, svc.Client())
	assert.Len(t, svc.Tools(), 4)
}
