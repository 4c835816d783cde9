package types

import (
	"io/fs"
)

// FS is the filesystem capability the scanner and materializer call into.
// Paths are handled as given; implementations do not resolve them.
type FS interface {
	// Stat follows symlinks.
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	MkdirAll(path string, perm fs.FileMode) error

	// CopyFile copies the regular file source to target, replacing target
	// if it exists. target gets source's permission bits.
	CopyFile(source, target string) error
}
