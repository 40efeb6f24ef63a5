package mcp

import (
	"encoding/json"
	"errors"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/urltools/yourls-mcp/internal/conv"
	"github.com/urltools/yourls-mcp/yourls"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Envelope shapes returned by the tool handlers. Every invocation outcome –
// success, backend-reported failure or transport failure – is rendered as
// one of these; a handler never surfaces a protocol-level error.
type shortenEnvelope struct {
	Status   string `json:"status"`
	ShortURL string `json:"shorturl"`
	URL      string `json:"url"`
	Title    string `json:"title"`
}

type expandEnvelope struct {
	Status   string `json:"status"`
	ShortURL string `json:"shorturl"`
	LongURL  string `json:"longurl"`
	Title    string `json:"title"`
}

type urlStatsEnvelope struct {
	Status   string `json:"status"`
	ShortURL string `json:"shorturl"`
	Clicks   int    `json:"clicks"`
	Title    string `json:"title"`
	LongURL  string `json:"longurl"`
}

type dbStatsEnvelope struct {
	Status      string `json:"status"`
	TotalLinks  int    `json:"total_links"`
	TotalClicks int    `json:"total_clicks"`
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// successResult marshals a success envelope into a single text content
// element.
func successResult(envelope interface{}) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	data, err := json.Marshal(envelope)
	if err != nil {
		return errorResult(err)
	}
	return &mcpschema.CallToolResult{
		Content: []mcpschema.CallToolResultContentElem{{Text: string(data)}},
	}, nil
}

// errorResult renders any failure as an error envelope. Backend-reported
// failures carry the backend message and code; everything else (transport,
// decoding, argument coercion) carries the failure description only.
func errorResult(err error) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	envelope := errorEnvelope{Status: statusError, Message: err.Error()}
	var apiErr *yourls.APIError
	if errors.As(err, &apiErr) {
		envelope.Message = apiErr.Message
		envelope.Code = apiErr.Code
	}
	data, _ := json.Marshal(envelope)
	return &mcpschema.CallToolResult{
		Content: []mcpschema.CallToolResultContentElem{{Text: string(data)}},
		IsError: conv.Pointer(true),
	}, nil
}
