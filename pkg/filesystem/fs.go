package filesystem

import (
	"io/fs"
	"path/filepath"
)

// FS is the filesystem surface used by the path helper and the symbol loader
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	// AppendFile appends data, creating the file with perm if needed
	AppendFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error
	Remove(name string) error
	// Walk visits root and everything below it in lexical order
	Walk(root string, fn filepath.WalkFunc) error
}

// IsDir reports whether name exists and is a directory
func IsDir(fsys FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}

// IsRegular reports whether name exists and is a regular file
func IsRegular(fsys FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.Mode().IsRegular()
}
