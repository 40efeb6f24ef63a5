// Package config defines the YAML configuration model for the YOURLS MCP
// service together with helper functions to load it from an ordered list of
// candidate paths and to overlay environment-variable overrides.
package config
