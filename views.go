package fsattr

import (
	"fmt"
	"io/fs"
	"time"
)

// FileKey is an opaque value identifying a filesystem entry. Two entries with
// equal keys are the same file.
type FileKey interface {
	fmt.Stringer
}

// UnixFileKey identifies an entry by device and inode number.
type UnixFileKey struct {
	Dev uint64
	Ino uint64
}

// String formats the key as "(dev=<hex>,ino=<hex>)".
func (k UnixFileKey) String() string {
	return fmt.Sprintf("(dev=%x,ino=%x)", k.Dev, k.Ino)
}

// Principal is the owning user or group of a file.
type Principal struct {
	// Name is the resolved account name, or the decimal ID if it could not
	// be resolved.
	Name string
	// ID is the numeric uid or gid recorded by the filesystem.
	ID uint32
}

// ACLEntry is a single access control entry. Readers do not populate access
// control lists.
type ACLEntry struct {
	Type        string
	Principal   string
	Permissions []string
	Flags       []string
}

// BasicView holds the attributes common to every platform.
type BasicView struct {
	LastModifiedTime time.Time
	LastAccessTime   time.Time
	// CreationTime falls back to LastModifiedTime when the filesystem does
	// not record creation.
	CreationTime time.Time
	// Type holds only the type bits of the entry's mode.
	Type fs.FileMode
	Size int64
	// FileKey is nil when the platform does not expose an identity.
	FileKey FileKey
	// Info is the raw result of the stat call.
	Info fs.FileInfo
}

// IsRegularFile reports whether the entry is a regular file.
func (v *BasicView) IsRegularFile() bool { return v.Type.IsRegular() }

// IsDirectory reports whether the entry is a directory.
func (v *BasicView) IsDirectory() bool { return v.Type.IsDir() }

// IsSymbolicLink reports whether the entry is a symbolic link.
func (v *BasicView) IsSymbolicLink() bool { return v.Type&fs.ModeSymlink != 0 }

// IsOther reports whether the entry is something other than a regular file,
// directory, or symbolic link.
func (v *BasicView) IsOther() bool {
	return !v.IsRegularFile() && !v.IsDirectory() && !v.IsSymbolicLink()
}

// PosixView extends BasicView with POSIX ownership and permissions.
type PosixView struct {
	BasicView
	Owner Principal
	Group Principal
	// Permissions holds the nine permission bits of the entry's mode.
	Permissions fs.FileMode
}

// DosView extends BasicView with DOS attribute flags.
type DosView struct {
	BasicView
	ReadOnly bool
	Hidden   bool
	Archive  bool
	System   bool
}

// DOS attribute bits of Win32 file attribute data.
const (
	fileAttributeReadOnly = 0x01
	fileAttributeHidden   = 0x02
	fileAttributeSystem   = 0x04
	fileAttributeArchive  = 0x20
)
