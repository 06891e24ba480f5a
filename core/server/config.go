package server

import "strconv"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// An empty key leaves the API open.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of an upload request.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"32"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// IsValidPort checks that the port is a number in the TCP range.
func (c Config) IsValidPort() bool {
	p, err := strconv.Atoi(c.Port)
	return err == nil && p > 0 && p <= 65535
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 32 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
