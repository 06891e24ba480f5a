// Package server holds the HTTP server configuration.
//
// While cmd/serve handles the server startup, this package defines the
// configuration structure and its helpers.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key protecting every
// request and the maximum upload body size.
package server
