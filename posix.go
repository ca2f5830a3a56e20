package fsattr

import (
	"time"
)

// PosixAttributes extends Attributes with the Unix extension. The extension
// is extracted only on non-Windows platforms after a successful POSIX read;
// otherwise its fields are absent.
type PosixAttributes struct {
	*Attributes

	ext       *UnixExtension
	extFailed string
}

// ReadPosix reads the attributes of the named host path with the default
// Config.
func ReadPosix(name string) *PosixAttributes {
	return Config{}.ReadPosix(name)
}

// ReadPosix reads the attributes of name, then extracts the Unix extension.
// A failing extraction leaves all five extension fields absent and is
// reported by ExtendedFailure.
func (c Config) ReadPosix(name string) *PosixAttributes {
	a := &PosixAttributes{Attributes: c.Read(name)}
	if a.platform.IsWindows || a.posix == nil {
		return a
	}

	log := c.logger()
	ext, err := c.unixExtender(name)
	if err == nil {
		var e UnixExtension
		if e, err = ext.ExtendUnix(a.posix.Info); err == nil {
			a.ext = &e
			return a
		}
	}
	a.extFailed = err.Error()
	log.Debugf("unix extension absent: %v", err)
	return a
}

// Mode returns the raw st_mode.
func (a *PosixAttributes) Mode() (uint32, bool) {
	if a.ext == nil {
		return 0, false
	}
	return a.ext.Mode, true
}

// Rdev returns the device ID of a device file.
func (a *PosixAttributes) Rdev() (uint64, bool) {
	if a.ext == nil {
		return 0, false
	}
	return a.ext.Rdev, true
}

// Nlink returns the number of hard links.
func (a *PosixAttributes) Nlink() (uint64, bool) {
	if a.ext == nil {
		return 0, false
	}
	return a.ext.Nlink, true
}

// Ctime returns the last status change time.
func (a *PosixAttributes) Ctime() (time.Time, bool) {
	if a.ext == nil {
		return time.Time{}, false
	}
	return a.ext.Ctime, true
}

// IsDevice reports whether the entry is a device file or FIFO.
func (a *PosixAttributes) IsDevice() (bool, bool) {
	if a.ext == nil {
		return false, false
	}
	return a.ext.Device, true
}

// UnixExtension returns the extracted extension, or nil.
func (a *PosixAttributes) UnixExtension() *UnixExtension { return a.ext }

// ExtendedFailure returns why the Unix extension is absent after it was
// attempted.
func (a *PosixAttributes) ExtendedFailure() (string, bool) {
	return a.extFailed, a.extFailed != ""
}

// Windows attributes never apply to PosixAttributes.

func (a *PosixAttributes) FileAttributes() (uint32, bool)     { return 0, false }
func (a *PosixAttributes) VolumeSerialNumber() (uint32, bool) { return 0, false }
func (a *PosixAttributes) FileIndexHigh() (uint32, bool)      { return 0, false }
func (a *PosixAttributes) FileIndexLow() (uint32, bool)       { return 0, false }
func (a *PosixAttributes) IsReparsePoint() (bool, bool)       { return false, false }
func (a *PosixAttributes) IsDirectoryLink() (bool, bool)      { return false, false }
