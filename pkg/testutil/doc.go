// Package testutil provides test environments for phint components.
//
// Key components:
//   - TestEnvironment: a home directory, a filesystem and a paths helper
//     wired together, with HOME, XDG and PHINT_* variables isolated
//   - FileTree: declarative directory layouts written into an environment
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; it never touches the disk
//   - Use EnvIsolated when the code under test builds its own helper from
//     the process environment, as the CLI does
package testutil
