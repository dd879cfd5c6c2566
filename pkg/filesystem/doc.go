// Package filesystem provides filesystem implementations for phint.
//
// The FS interface is the narrow set of operations the path helper needs.
// NewOS talks to the real filesystem; NewAferoFS adapts any afero.Fs, and
// NewMemory returns an in-memory filesystem for tests.
package filesystem
