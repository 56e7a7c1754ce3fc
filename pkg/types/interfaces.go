package types

import (
	"io/fs"
)

// FS is the filesystem interface required for wsp operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Lstat must not follow symlinks. Implementations that cannot tell
	// links apart fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	Remove(name string) error
}
