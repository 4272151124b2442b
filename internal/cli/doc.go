// Package cli defines the cobra command tree: apply, plan, verify, validate,
// config, and version. Each command lives in its own file and registers
// itself with the root command in an init function.
package cli
