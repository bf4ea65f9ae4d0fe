// Package cli parses command-line arguments, validates user input and maps
// failures to process exit codes. It translates flags, and the optional
// settings file they point at, into app.Config.
package cli
