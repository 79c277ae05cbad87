// Package config loads, merges, and validates the configuration of the
// asset server and of its command-line client.
//
// Server configuration is assembled from several sources; for every field
// the first source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (CONFIG env or -c flag)
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
