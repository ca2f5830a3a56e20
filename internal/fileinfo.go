// Package internal decodes the platform-specific payload of fs.FileInfo.Sys()
// into plain values shared by the attribute views.
package internal

import (
	"io/fs"
	"os/user"
	"strconv"
	"time"
)

// Unix holds the fields of a POSIX stat result.
type Unix struct {
	Dev   uint64
	Ino   uint64
	Rdev  uint64
	Nlink uint64
	Mode  uint32
	Uid   uint32
	Gid   uint32

	AccessTime time.Time
	ChangeTime time.Time
	// BirthTime is zero when the platform's stat result does not record it.
	BirthTime time.Time
}

// Windows holds the fields of Win32 file attribute data.
type Windows struct {
	FileAttributes uint32
	CreationTime   time.Time
	AccessTime     time.Time
	WriteTime      time.Time
}

// Sys is the decoded form of fs.FileInfo.Sys(). At most one of Unix and
// Windows is set; both are nil when the payload is unknown or missing.
type Sys struct {
	Unix    *Unix
	Windows *Windows
}

// DecodeSys decodes fi.Sys() using the representation of the running
// platform. A nil fi yields an empty Sys.
func DecodeSys(fi fs.FileInfo) Sys {
	if fi == nil {
		return Sys{}
	}
	return decodeSys(fi.Sys())
}

// LookupUser returns the user name for uid, falling back to the numeric id.
func LookupUser(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}

// LookupGroup returns the group name for gid, falling back to the numeric id.
func LookupGroup(gid uint32) string {
	id := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(id); err == nil {
		return g.Name
	}
	return id
}
