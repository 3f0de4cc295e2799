// Package http implements the HTTP transport of the sync server.
//
// It wires the chi router, the read-only sync endpoints, the token-gated
// catalogue mutation endpoints and the middleware stack (tracing, access
// logging, compression, request timeout) in front of the service layer.
package http
