package fsattr

import (
	"io/fs"
	"os"
	"time"
)

// FileInfo is a type alias for fs.FileInfo, allowing it to be mocked by
// mockgen.
type FileInfo = fs.FileInfo

// Provider performs the stat calls behind attribute reads.
//
// Errors that are *fs.PathError, *os.SyscallError, or that match
// errors.ErrUnsupported let a reader fall back to a less specific view; any
// other error ends the read.
type Provider interface {
	// Stat returns a FileInfo describing the named file, following
	// symbolic links.
	Stat(name string) (fs.FileInfo, error)
	// Lstat returns a FileInfo describing the named file without following
	// symbolic links.
	Lstat(name string) (fs.FileInfo, error)
}

// BirthTimeProvider is implemented by providers that can query a creation
// time not carried in the stat result.
type BirthTimeProvider interface {
	BirthTime(name string, follow bool) (time.Time, error)
}

// HostProvider reads attributes of host paths through the os package.
type HostProvider struct{}

// Stat implements Provider with os.Stat.
func (HostProvider) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Lstat implements Provider with os.Lstat.
func (HostProvider) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

// FSProvider reads attributes of entries of an fs.FS.
type FSProvider struct {
	FS fs.FS
}

// Stat implements Provider with fs.Stat.
func (p FSProvider) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(p.FS, name)
}

// Lstat implements Provider with fs.Lstat.
func (p FSProvider) Lstat(name string) (fs.FileInfo, error) {
	return fs.Lstat(p.FS, name)
}

var (
	_ Provider          = HostProvider{}
	_ BirthTimeProvider = HostProvider{}
	_ Provider          = FSProvider{}
)
