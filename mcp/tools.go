package mcp

import (
	"context"
	"reflect"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/urltools/yourls-mcp/internal/conv"
)

// Tool names exposed to the MCP host.
const (
	ToolShortenURL = "shorten_url"
	ToolExpandURL  = "expand_url"
	ToolURLStats   = "url_stats"
	ToolDBStats    = "db_stats"
)

type shortenArgs struct {
	URL     string `json:"url"`
	Keyword string `json:"keyword,omitempty"`
	Title   string `json:"title,omitempty"`
}

type expandArgs struct {
	ShortURL string `json:"shorturl"`
}

type urlStatsArgs struct {
	ShortURL string `json:"shorturl"`
}

func (s *Service) buildTools() serverproto.Tools {
	return serverproto.Tools{
		s.shortenTool(),
		s.expandTool(),
		s.urlStatsTool(),
		s.dbStatsTool(),
	}
}

func (s *Service) shortenTool() *serverproto.ToolEntry {
	entry := &serverproto.ToolEntry{
		Metadata: toolMetadata(ToolShortenURL, "Shorten a long URL using YOURLS",
			properties{
				"url":     property("string", "The URL to shorten"),
				"keyword": property("string", "Optional custom keyword for the short URL"),
				"title":   property("string", "Optional title for the URL"),
			},
			[]string{"url"},
			reflect.TypeOf(shortenEnvelope{}),
		),
	}
	entry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		var args shortenArgs
		if err := conv.Convert(request.Params.Arguments, &args); err != nil {
			return errorResult(err)
		}
		result, err := s.client.Shorten(ctx, args.URL, args.Keyword, args.Title)
		if err != nil {
			return errorResult(err)
		}
		return successResult(shortenEnvelope{
			Status:   statusSuccess,
			ShortURL: result.ShortURL,
			URL:      result.URL,
			Title:    result.Title,
		})
	}
	return entry
}

func (s *Service) expandTool() *serverproto.ToolEntry {
	entry := &serverproto.ToolEntry{
		Metadata: toolMetadata(ToolExpandURL, "Expand a short URL to its original long URL",
			properties{
				"shorturl": property("string", "The short URL or keyword to expand"),
			},
			[]string{"shorturl"},
			reflect.TypeOf(expandEnvelope{}),
		),
	}
	entry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		var args expandArgs
		if err := conv.Convert(request.Params.Arguments, &args); err != nil {
			return errorResult(err)
		}
		result, err := s.client.Expand(ctx, args.ShortURL)
		if err != nil {
			return errorResult(err)
		}
		return successResult(expandEnvelope{
			Status:   statusSuccess,
			ShortURL: result.ShortURL,
			LongURL:  result.LongURL,
			Title:    result.Title,
		})
	}
	return entry
}

func (s *Service) urlStatsTool() *serverproto.ToolEntry {
	entry := &serverproto.ToolEntry{
		Metadata: toolMetadata(ToolURLStats, "Get statistics for a shortened URL",
			properties{
				"shorturl": property("string", "The short URL or keyword to get stats for"),
			},
			[]string{"shorturl"},
			reflect.TypeOf(urlStatsEnvelope{}),
		),
	}
	entry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		var args urlStatsArgs
		if err := conv.Convert(request.Params.Arguments, &args); err != nil {
			return errorResult(err)
		}
		result, err := s.client.URLStats(ctx, args.ShortURL)
		if err != nil {
			return errorResult(err)
		}
		return successResult(urlStatsEnvelope{
			Status:   statusSuccess,
			ShortURL: result.ShortURL,
			Clicks:   result.Clicks,
			Title:    result.Title,
			LongURL:  result.LongURL,
		})
	}
	return entry
}

func (s *Service) dbStatsTool() *serverproto.ToolEntry {
	entry := &serverproto.ToolEntry{
		Metadata: toolMetadata(ToolDBStats, "Get global statistics for the YOURLS instance",
			properties{},
			nil,
			reflect.TypeOf(dbStatsEnvelope{}),
		),
	}
	entry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		result, err := s.client.DBStats(ctx)
		if err != nil {
			return errorResult(err)
		}
		return successResult(dbStatsEnvelope{
			Status:      statusSuccess,
			TotalLinks:  result.TotalLinks,
			TotalClicks: result.TotalClicks,
		})
	}
	return entry
}

type properties = map[string]map[string]interface{}

func property(kind, description string) map[string]interface{} {
	return map[string]interface{}{"type": kind, "description": description}
}

// toolMetadata assembles the schema.Tool metadata: a literal input schema
// (the argument surface is small and fixed, so schemas are spelled out) and
// an output schema derived from the success envelope struct.
func toolMetadata(name, description string, props properties, required []string, output reflect.Type) mcpschema.Tool {
	outProps, outRequired := mcpschema.StructToProperties(output)
	return mcpschema.Tool{
		Name:        name,
		Description: conv.Pointer(description),
		InputSchema: mcpschema.ToolInputSchema{
			Type:       "object",
			Properties: props,
			Required:   required,
		},
		OutputSchema: &mcpschema.ToolOutputSchema{
			Type:       "object",
			Properties: outProps,
			Required:   outRequired,
		},
	}
}
