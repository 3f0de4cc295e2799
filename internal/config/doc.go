// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources; a field set by an
// earlier source wins over later ones:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied after merging. The main entry points are
// [GetStructuredConfig] for the server and token tool and [GetClientConfig]
// for the sync client.
package config
