// Package paths is phint's path and file helper.
//
// It groups the small operations the rest of phint builds on:
//
//   - Pure path arithmetic: IsAbsolute, RelativePath, Extension, Join
//   - Home-aware expansion: Helper.Expand
//   - File access: Helper.Read, Helper.ReadJSON, Helper.WriteFile, Helper.EnsureDir
//   - The per-user data directory: Helper.DataPath, Helper.DataLocation
//   - Executable stub generation: Helper.CreateBinaries
//   - Discovery: Helper.FindFiles and Helper.LoadTypes
//
// The pure functions never touch the filesystem. Everything that does goes
// through a filesystem.FS, so tests run against an in-memory filesystem:
//
//	h := paths.New(paths.WithFS(filesystem.NewMemory()), paths.WithHome("/home/me"))
//	_ = h.WriteFile("/home/me/notes.json", map[string]any{"a": 1})
//
// Paths produced by Join and DataPath always use "/" as separator, whatever
// the host platform.
package paths
