// Package config loads the optional HCL settings file. Every attribute is
// optional; a value left unset keeps whatever default the caller applies.
//
// Expressions can read the process environment through the `env` map and call
// a small set of numeric functions, for example:
//
//	bound = max(1, tonumber(env.SUMSQ_BOUND))
package config
