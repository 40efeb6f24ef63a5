// Package yourls implements a client for the YOURLS URL-shortener HTTP API.
// Every operation issues a single form-encoded POST against the configured
// endpoint and decodes the JSON response into a typed result at the client
// boundary, so callers never probe raw response maps themselves.
package yourls
