// Package server runs the asset-keeper HTTP server.
//
// It owns the server lifecycle: startup, termination-signal handling and
// graceful shutdown bounded by the configured shutdown timeout.
package server
