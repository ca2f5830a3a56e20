// Package osfs provides a read-only fs.FS over a host directory. Lookups are
// confined to the directory with os.Root, so ".." elements and symbolic links
// cannot reach entries outside it.
//
// Unlike os.DirFS, the FileInfo values it returns keep the host stat payload
// in Sys(), so attribute readers given an *FS see the same POSIX or DOS
// attributes they would see reading host paths.
package osfs

import (
	"io/fs"
	"os"
)

// FS is a filesystem rooted at a host directory. Close releases the root.
type FS struct {
	*os.Root
}

// New opens the directory name as the root of a new FS. Every lookup through
// the returned FS is confined to name and its subdirectories.
//
// Parameters:
//
//	name: The path of the host directory to serve as the root.
//
// Returns:
//
//	*FS:   The confined filesystem. The caller closes it when done.
//	error: nil on success, or an error if name cannot be opened as a
//	       directory.
func New(name string) (*FS, error) {
	r, err := os.OpenRoot(name)
	if err != nil {
		return nil, err
	}
	return &FS{Root: r}, nil
}

// Open opens the named file for reading.
func (fsys *FS) Open(name string) (fs.File, error) {
	return fsys.Root.Open(name)
}

// Stat returns the FileInfo of the named file, following symbolic links that
// stay within the root.
func (fsys *FS) Stat(name string) (fs.FileInfo, error) {
	return fsys.Root.Stat(name)
}

// Lstat returns the FileInfo of the named file without following a final
// symbolic link.
func (fsys *FS) Lstat(name string) (fs.FileInfo, error) {
	return fsys.Root.Lstat(name)
}

// ReadLink returns the destination of the named symbolic link.
func (fsys *FS) ReadLink(name string) (string, error) {
	return fsys.Root.Readlink(name)
}

var (
	_ fs.StatFS     = (*FS)(nil)
	_ fs.ReadLinkFS = (*FS)(nil)
)
