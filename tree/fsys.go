package tree

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// FS is the storage layer a Renderer walks.
type FS interface {
	// IsDir reports whether name denotes a directory. Any failure to
	// stat name (missing, permission denied) reports false.
	IsDir(name string) bool

	// ReadDir returns the immediate children of dir in the order the
	// storage layer enumerates them. No sorting is applied.
	ReadDir(dir string) ([]fs.DirEntry, error)

	// Join resolves a child name against its parent directory.
	Join(dir, name string) string
}

// OSFS is the operating-system filesystem.
type OSFS struct{}

var _ FS = OSFS{}

// ReadDir reads dir without sorting, unlike os.ReadDir.
func (OSFS) ReadDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}

func (OSFS) Join(dir, name string) string {
	return filepath.Join(dir, name)
}

// FromFS adapts an io/fs filesystem. Names are slash-separated and must be
// valid fs.FS paths; enumeration order is whatever fsys returns (sorted by
// name for fs.ReadDirFS implementations such as fstest.MapFS).
func FromFS(fsys fs.FS) FS {
	return ioFS{fsys: fsys}
}

type ioFS struct {
	fsys fs.FS
}

func (f ioFS) IsDir(name string) bool {
	info, err := fs.Stat(f.fsys, name)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (f ioFS) ReadDir(dir string) ([]fs.DirEntry, error) {
	return fs.ReadDir(f.fsys, dir)
}

func (ioFS) Join(dir, name string) string {
	return path.Join(dir, name)
}
