// Package registry provides a generic, thread-safe registry keyed by name.
// It backs the process-wide table of loaded type declarations.
package registry
