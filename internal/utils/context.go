// Package utils provides general-purpose helper utilities used across the
// species-sync server, client and tools: typed context keys, HTTP response
// and query helpers, the HTTP client, JWT minting and validation, and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EditorIDCtxKey is the key under which the auth middleware stores the id of
// the editor whose token authorized the request.
var EditorIDCtxKey = contextKey("editorID")

// GetEditorIDFromContext retrieves the editor identifier from the context.
// ok is false when the value is missing or is not an int64.
func GetEditorIDFromContext(ctx context.Context) (int64, bool) {
	editorID, ok := ctx.Value(EditorIDCtxKey).(int64)
	return editorID, ok
}
