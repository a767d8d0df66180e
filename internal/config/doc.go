// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Server configuration is assembled from multiple sources in the following
// priority order (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
