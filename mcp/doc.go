// Package mcp exposes a YOURLS backend as MCP tools.  Its central Service
// type loads configuration, builds the backend client and registers the four
// URL-shortening tools so they can be served over an MCP server.
package mcp
