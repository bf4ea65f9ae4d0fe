// Package app contains the core application logic. It defines the App struct,
// its configuration and the run lifecycle, decoupled from the CLI entrypoint.
package app
