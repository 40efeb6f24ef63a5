// Package cmd implements the sub-commands that make up the yourls-mcp
// command-line interface.  Each file registers a single sub-command (serve,
// list-tools, call); the plumbing shared between commands such as
// configuration loading and service initialisation lives in shared.go.
package cmd
