package fsattr

import (
	"errors"
	"io/fs"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gwangyi/fsattr/internal"
)

// fileKeyPattern matches the string form of a UnixFileKey.
var fileKeyPattern = regexp.MustCompile(`^\(dev=(\w+),ino=(\w+)\)$`)

// Attributes is a snapshot of the attributes of one filesystem entry,
// captured when it was read. Fields that the platform or the successful view
// does not provide are absent, which accessors report with a false second
// result.
type Attributes struct {
	path     string
	platform Platform

	basic *BasicView
	posix *PosixView
	dos   *DosView
	perms Permissions

	keyAvailable bool
	failures     []string

	keyOnce sync.Once
	dev     string
	ino     string
	keyOK   bool
}

// Read reads the attributes of the named host path with the default Config.
// Symbolic links are followed.
//
// Parameters:
//
//	name: The host path of the file.
//
// Returns:
//
//	*Attributes: The snapshot. It is never nil; attributes that could not be
//	             read are absent and FailureMessage reports why.
func Read(name string) *Attributes {
	return Config{}.Read(name)
}

// Read reads the attributes of name.
//
// The richest view for the platform is tried first: DOS attributes on
// Windows, POSIX attributes elsewhere. If that read fails because the view is
// unsupported or the filesystem reports an error, the failure is recorded and
// only the basic view is read. Read never fails; a failed basic read leaves
// FileKeyAvailable false and every attribute absent, with the reasons in
// FailureMessage.
//
// Parameters:
//
//	name: The path of the file, as understood by c.Provider.
//
// Returns:
//
//	*Attributes: The snapshot. It is never nil.
func (c Config) Read(name string) *Attributes {
	a := &Attributes{path: name, platform: c.platform()}
	log := c.logger()

	var err error
	if a.platform.IsWindows {
		err = a.readDos(c)
	} else {
		err = a.readPosix(c)
	}
	if err == nil {
		a.keyAvailable = true
		return a
	}

	a.failures = append(a.failures, err.Error())
	if !internal.Recoverable(err) {
		log.Error(err)
		return a
	}

	log.Infof("falling back to basic attributes: %v", err)
	if err := a.readBasic(c); err != nil {
		a.failures = append(a.failures, err.Error())
		log.Warn(err)
		return a
	}
	a.keyAvailable = true
	return a
}

func (a *Attributes) readPosix(c Config) error {
	fi, err := c.stat(a.path)
	if err != nil {
		return err
	}
	st := internal.DecodeSys(fi).Unix
	if st == nil {
		return &fs.PathError{Op: "posix attributes", Path: a.path, Err: errors.ErrUnsupported}
	}

	v := &PosixView{
		BasicView: BasicView{
			LastModifiedTime: fi.ModTime(),
			LastAccessTime:   st.AccessTime,
			CreationTime:     c.birthTime(a.path, fi, st.BirthTime),
			Type:             fi.Mode().Type(),
			Size:             fi.Size(),
			FileKey:          UnixFileKey{Dev: st.Dev, Ino: st.Ino},
			Info:             fi,
		},
		Owner:       Principal{Name: internal.LookupUser(st.Uid), ID: st.Uid},
		Group:       Principal{Name: internal.LookupGroup(st.Gid), ID: st.Gid},
		Permissions: fi.Mode().Perm(),
	}
	a.posix = v
	a.basic = &v.BasicView
	a.perms = PermissionsFromMode(v.Permissions)
	return nil
}

func (a *Attributes) readDos(c Config) error {
	fi, err := c.stat(a.path)
	if err != nil {
		return err
	}
	w := internal.DecodeSys(fi).Windows
	if w == nil {
		return &fs.PathError{Op: "dos attributes", Path: a.path, Err: errors.ErrUnsupported}
	}

	v := &DosView{
		BasicView: BasicView{
			LastModifiedTime: fi.ModTime(),
			LastAccessTime:   w.AccessTime,
			CreationTime:     w.CreationTime,
			Type:             fi.Mode().Type(),
			Size:             fi.Size(),
			Info:             fi,
		},
		ReadOnly: w.FileAttributes&fileAttributeReadOnly != 0,
		Hidden:   w.FileAttributes&fileAttributeHidden != 0,
		Archive:  w.FileAttributes&fileAttributeArchive != 0,
		System:   w.FileAttributes&fileAttributeSystem != 0,
	}
	a.dos = v
	a.basic = &v.BasicView
	return nil
}

// readBasic reads the attributes every platform provides. Access and
// creation times come from the stat payload when it can be decoded and
// default to the modification time otherwise.
func (a *Attributes) readBasic(c Config) error {
	fi, err := c.stat(a.path)
	if err != nil {
		return err
	}

	v := &BasicView{
		LastModifiedTime: fi.ModTime(),
		LastAccessTime:   fi.ModTime(),
		CreationTime:     fi.ModTime(),
		Type:             fi.Mode().Type(),
		Size:             fi.Size(),
		Info:             fi,
	}
	switch sys := internal.DecodeSys(fi); {
	case sys.Unix != nil:
		v.LastAccessTime = sys.Unix.AccessTime
		v.CreationTime = c.birthTime(a.path, fi, sys.Unix.BirthTime)
		v.FileKey = UnixFileKey{Dev: sys.Unix.Dev, Ino: sys.Unix.Ino}
	case sys.Windows != nil:
		v.LastAccessTime = sys.Windows.AccessTime
		v.CreationTime = sys.Windows.CreationTime
	}
	a.basic = v
	return nil
}

// Path returns the path the attributes were read from.
func (a *Attributes) Path() string { return a.path }

// Platform returns the platform the read branched on.
func (a *Attributes) Platform() Platform { return a.platform }

// LastModifiedTime returns the last modification time.
func (a *Attributes) LastModifiedTime() (time.Time, bool) {
	if a.basic == nil {
		return time.Time{}, false
	}
	return a.basic.LastModifiedTime, true
}

// LastAccessTime returns the last access time.
func (a *Attributes) LastAccessTime() (time.Time, bool) {
	if a.basic == nil {
		return time.Time{}, false
	}
	return a.basic.LastAccessTime, true
}

// CreationTime returns the creation time.
func (a *Attributes) CreationTime() (time.Time, bool) {
	if a.basic == nil {
		return time.Time{}, false
	}
	return a.basic.CreationTime, true
}

// LastModifiedTimeSec returns the last modification time in seconds since
// the Unix epoch.
func (a *Attributes) LastModifiedTimeSec() (int64, bool) {
	return unixSeconds(a.LastModifiedTime())
}

// LastAccessTimeSec returns the last access time in seconds since the Unix
// epoch.
func (a *Attributes) LastAccessTimeSec() (int64, bool) {
	return unixSeconds(a.LastAccessTime())
}

// CreationTimeSec returns the creation time in seconds since the Unix epoch.
func (a *Attributes) CreationTimeSec() (int64, bool) {
	return unixSeconds(a.CreationTime())
}

func unixSeconds(t time.Time, ok bool) (int64, bool) {
	if !ok {
		return 0, false
	}
	return t.Unix(), true
}

// IsRegularFile reports whether the entry is a regular file.
func (a *Attributes) IsRegularFile() (bool, bool) {
	if a.basic == nil {
		return false, false
	}
	return a.basic.IsRegularFile(), true
}

// IsDirectory reports whether the entry is a directory.
func (a *Attributes) IsDirectory() (bool, bool) {
	if a.basic == nil {
		return false, false
	}
	return a.basic.IsDirectory(), true
}

// IsSymbolicLink reports whether the entry is a symbolic link. It is only
// ever true for readers configured with NoFollowLinks.
func (a *Attributes) IsSymbolicLink() (bool, bool) {
	if a.basic == nil {
		return false, false
	}
	return a.basic.IsSymbolicLink(), true
}

// IsOther reports whether the entry is neither a regular file, a directory,
// nor a symbolic link.
func (a *Attributes) IsOther() (bool, bool) {
	if a.basic == nil {
		return false, false
	}
	return a.basic.IsOther(), true
}

// Size returns the size in bytes.
func (a *Attributes) Size() (int64, bool) {
	if a.basic == nil {
		return 0, false
	}
	return a.basic.Size, true
}

// FileKey returns the identity of the entry, or nil if it has none.
func (a *Attributes) FileKey() FileKey {
	if a.basic == nil {
		return nil
	}
	return a.basic.FileKey
}

// parseFileKey extracts device and inode from the file key. It runs at most
// once; a key that does not match leaves both absent.
func (a *Attributes) parseFileKey() {
	a.keyOnce.Do(func() {
		key := a.FileKey()
		if key == nil {
			return
		}
		m := fileKeyPattern.FindStringSubmatch(key.String())
		if m == nil {
			return
		}
		a.dev, a.ino, a.keyOK = m[1], m[2], true
	})
}

// Dev returns the device ID embedded in the file key, in hexadecimal.
func (a *Attributes) Dev() (string, bool) {
	a.parseFileKey()
	return a.dev, a.keyOK
}

// Inode returns the inode number embedded in the file key, in hexadecimal.
func (a *Attributes) Inode() (string, bool) {
	a.parseFileKey()
	return a.ino, a.keyOK
}

// UserName returns the name of the owning user.
func (a *Attributes) UserName() (string, bool) {
	if a.posix == nil {
		return "", false
	}
	return a.posix.Owner.Name, true
}

// UserID returns the uid of the owning user.
func (a *Attributes) UserID() (uint32, bool) {
	if a.posix == nil {
		return 0, false
	}
	return a.posix.Owner.ID, true
}

// GroupName returns the name of the owning group.
func (a *Attributes) GroupName() (string, bool) {
	if a.posix == nil {
		return "", false
	}
	return a.posix.Group.Name, true
}

// GroupID returns the gid of the owning group.
func (a *Attributes) GroupID() (uint32, bool) {
	if a.posix == nil {
		return 0, false
	}
	return a.posix.Group.ID, true
}

// Permissions returns the POSIX permission flags.
func (a *Attributes) Permissions() (Permissions, bool) {
	if a.posix == nil {
		return Permissions{}, false
	}
	return a.perms, true
}

// PermissionsString renders the POSIX permissions symbolically, e.g.
// "rwxr-x---".
func (a *Attributes) PermissionsString() (string, bool) {
	p, ok := a.Permissions()
	if !ok {
		return "", false
	}
	return p.String(), true
}

// PermissionsNumeric renders the POSIX permissions as octal digits, e.g.
// "750".
func (a *Attributes) PermissionsNumeric() (string, bool) {
	p, ok := a.Permissions()
	if !ok {
		return "", false
	}
	return p.Numeric(), true
}

// AccessControlList always returns nil.
func (a *Attributes) AccessControlList() []ACLEntry { return nil }

// IsReadOnly reports the DOS read-only attribute.
func (a *Attributes) IsReadOnly() (bool, bool) {
	if a.dos == nil {
		return false, false
	}
	return a.dos.ReadOnly, true
}

// IsHidden reports the DOS hidden attribute.
func (a *Attributes) IsHidden() (bool, bool) {
	if a.dos == nil {
		return false, false
	}
	return a.dos.Hidden, true
}

// IsArchive reports the DOS archive attribute.
func (a *Attributes) IsArchive() (bool, bool) {
	if a.dos == nil {
		return false, false
	}
	return a.dos.Archive, true
}

// IsSystem reports the DOS system attribute.
func (a *Attributes) IsSystem() (bool, bool) {
	if a.dos == nil {
		return false, false
	}
	return a.dos.System, true
}

// FileKeyAvailable reports whether any view was read successfully.
func (a *Attributes) FileKeyAvailable() bool { return a.keyAvailable }

// FailureMessage returns the reasons the primary read and, if attempted, the
// fallback read failed, joined by ";".
func (a *Attributes) FailureMessage() (string, bool) {
	if len(a.failures) == 0 {
		return "", false
	}
	return strings.Join(a.failures, ";"), true
}

// BasicView returns the view the common attributes were read from, or nil.
func (a *Attributes) BasicView() *BasicView { return a.basic }

// PosixView returns the POSIX view, or nil if it was not read.
func (a *Attributes) PosixView() *PosixView { return a.posix }

// DosView returns the DOS view, or nil if it was not read.
func (a *Attributes) DosView() *DosView { return a.dos }

func (c Config) stat(name string) (fs.FileInfo, error) {
	if c.NoFollowLinks {
		return c.provider().Lstat(name)
	}
	return c.provider().Stat(name)
}

// birthTime picks the creation time: the one in the stat payload, else one
// queried from the provider, else the modification time.
func (c Config) birthTime(name string, fi fs.FileInfo, recorded time.Time) time.Time {
	if !recorded.IsZero() {
		return recorded
	}
	if bp, ok := c.provider().(BirthTimeProvider); ok {
		if t, err := bp.BirthTime(name, !c.NoFollowLinks); err == nil {
			return t
		}
	}
	return fi.ModTime()
}
