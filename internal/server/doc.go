// Package server runs the HTTP transport of the sync server: startup, signal
// handling and graceful shutdown.
package server
