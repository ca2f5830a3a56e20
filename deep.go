package fsattr

import (
	"time"
)

// DeepAttributes is the union of every attribute a reader can expose. Each
// accessor returns false as its second result when the attribute does not
// apply to the platform variant or could not be read.
type DeepAttributes interface {
	Path() string
	Platform() Platform

	LastModifiedTime() (time.Time, bool)
	LastAccessTime() (time.Time, bool)
	CreationTime() (time.Time, bool)
	LastModifiedTimeSec() (int64, bool)
	LastAccessTimeSec() (int64, bool)
	CreationTimeSec() (int64, bool)
	IsRegularFile() (bool, bool)
	IsDirectory() (bool, bool)
	IsSymbolicLink() (bool, bool)
	IsOther() (bool, bool)
	Size() (int64, bool)
	FileKey() FileKey
	Dev() (string, bool)
	Inode() (string, bool)

	// POSIX view.
	UserName() (string, bool)
	UserID() (uint32, bool)
	GroupName() (string, bool)
	GroupID() (uint32, bool)
	Permissions() (Permissions, bool)
	PermissionsString() (string, bool)
	PermissionsNumeric() (string, bool)
	AccessControlList() []ACLEntry

	// DOS view.
	IsReadOnly() (bool, bool)
	IsHidden() (bool, bool)
	IsArchive() (bool, bool)
	IsSystem() (bool, bool)

	// Unix extension.
	Mode() (uint32, bool)
	Rdev() (uint64, bool)
	Nlink() (uint64, bool)
	Ctime() (time.Time, bool)
	IsDevice() (bool, bool)

	// Windows extension.
	FileAttributes() (uint32, bool)
	VolumeSerialNumber() (uint32, bool)
	FileIndexHigh() (uint32, bool)
	FileIndexLow() (uint32, bool)
	IsReparsePoint() (bool, bool)
	IsDirectoryLink() (bool, bool)

	FileKeyAvailable() bool
	FailureMessage() (string, bool)
	ExtendedFailure() (string, bool)
	BasicView() *BasicView
	PosixView() *PosixView
	DosView() *DosView
}

var (
	_ DeepAttributes = (*PosixAttributes)(nil)
	_ DeepAttributes = (*WindowsAttributes)(nil)
)

// ReadDeep reads the attributes of the named host path with the default
// Config, including the extension of the running platform.
//
// Parameters:
//
//	name: The host path of the file.
//
// Returns:
//
//	DeepAttributes: A *WindowsAttributes on Windows, a *PosixAttributes
//	                elsewhere. It is never nil.
func ReadDeep(name string) DeepAttributes {
	return Config{}.ReadDeep(name)
}

// ReadDeep returns a *WindowsAttributes on Windows and a *PosixAttributes
// everywhere else.
func (c Config) ReadDeep(name string) DeepAttributes {
	if c.platform().IsWindows {
		return c.ReadWindows(name)
	}
	return c.ReadPosix(name)
}
