package fsattr

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/gwangyi/fsattr/internal"
)

// UnixExtension holds Unix attributes beyond the POSIX view.
type UnixExtension struct {
	// Mode is the raw st_mode, including the file type bits.
	Mode  uint32
	Rdev  uint64
	Nlink uint64
	// Ctime is the last status change time.
	Ctime time.Time
	// Device reports a character device, block device, or FIFO.
	Device bool
}

// WindowsExtension holds Windows attributes beyond the DOS view.
type WindowsExtension struct {
	// FileAttributes is the raw FILE_ATTRIBUTE_* bitmask.
	FileAttributes     uint32
	VolumeSerialNumber uint32
	FileIndexHigh      uint32
	FileIndexLow       uint32
	ReparsePoint       bool
	// DirectoryLink reports a directory symbolic link or junction.
	DirectoryLink bool
}

// UnixExtender extracts the Unix extension from a POSIX stat result.
type UnixExtender interface {
	ExtendUnix(info fs.FileInfo) (UnixExtension, error)
}

// WindowsExtender extracts the Windows extension of the named entry, which
// info describes.
type WindowsExtender interface {
	ExtendWindows(name string, info fs.FileInfo, follow bool) (WindowsExtension, error)
}

// HostExtender extracts extensions through the host's stat payload and
// platform APIs.
type HostExtender struct{}

// ExtendUnix implements UnixExtender by decoding the stat payload.
func (HostExtender) ExtendUnix(info fs.FileInfo) (UnixExtension, error) {
	st := internal.DecodeSys(info).Unix
	if st == nil {
		return UnixExtension{}, errors.ErrUnsupported
	}
	return UnixExtension{
		Mode:   st.Mode,
		Rdev:   st.Rdev,
		Nlink:  st.Nlink,
		Ctime:  st.ChangeTime,
		Device: info.Mode()&(fs.ModeDevice|fs.ModeCharDevice|fs.ModeNamedPipe) != 0,
	}, nil
}

var (
	_ UnixExtender    = HostExtender{}
	_ WindowsExtender = HostExtender{}
)

// unixExtension is detected once per process: the build must support it and
// a probe of the temporary directory must succeed.
var unixExtension = sync.OnceValue(func() bool {
	if !unixExtensionSupported {
		return false
	}
	fi, err := os.Stat(os.TempDir())
	if err != nil {
		return false
	}
	_, err = HostExtender{}.ExtendUnix(fi)
	return err == nil
})

// windowsExtension is detected once per process like unixExtension.
var windowsExtension = sync.OnceValue(func() bool {
	if !windowsExtensionSupported {
		return false
	}
	dir := os.TempDir()
	fi, err := os.Stat(dir)
	if err != nil {
		return false
	}
	_, err = HostExtender{}.ExtendWindows(dir, fi, true)
	return err == nil
})

// UnixExtensionAvailable reports whether the host extender can extract the
// Unix extension in this process.
func UnixExtensionAvailable() bool { return unixExtension() }

// WindowsExtensionAvailable reports whether the host extender can extract the
// Windows extension in this process.
func WindowsExtensionAvailable() bool { return windowsExtension() }

// unixExtender returns the extender ReadPosix uses, or an error explaining
// why there is none.
func (c Config) unixExtender(name string) (UnixExtender, error) {
	if c.UnixExtender != nil {
		return c.UnixExtender, nil
	}
	if !unixExtension() {
		return nil, &fs.PathError{Op: "unix extension", Path: name, Err: errors.ErrUnsupported}
	}
	return HostExtender{}, nil
}

func (c Config) windowsExtender(name string) (WindowsExtender, error) {
	if c.WindowsExtender != nil {
		return c.WindowsExtender, nil
	}
	if !c.readsHostPaths() || !windowsExtension() {
		return nil, &fs.PathError{Op: "windows extension", Path: name, Err: errors.ErrUnsupported}
	}
	return HostExtender{}, nil
}
