package fsattr

import (
	"time"
)

// WindowsAttributes extends Attributes with the Windows extension. The
// extension is extracted only on Windows after a successful DOS read;
// otherwise its fields are absent.
type WindowsAttributes struct {
	*Attributes

	ext       *WindowsExtension
	extFailed string
}

// ReadWindows reads the attributes of the named host path with the default
// Config.
func ReadWindows(name string) *WindowsAttributes {
	return Config{}.ReadWindows(name)
}

// ReadWindows reads the attributes of name, then extracts the Windows
// extension. A failing extraction leaves all six extension fields absent and
// is reported by ExtendedFailure.
func (c Config) ReadWindows(name string) *WindowsAttributes {
	a := &WindowsAttributes{Attributes: c.Read(name)}
	if !a.platform.IsWindows || a.dos == nil {
		return a
	}

	log := c.logger()
	ext, err := c.windowsExtender(name)
	if err == nil {
		var e WindowsExtension
		if e, err = ext.ExtendWindows(name, a.dos.Info, !c.NoFollowLinks); err == nil {
			a.ext = &e
			return a
		}
	}
	a.extFailed = err.Error()
	log.Debugf("windows extension absent: %v", err)
	return a
}

// FileAttributes returns the raw FILE_ATTRIBUTE_* bitmask.
func (a *WindowsAttributes) FileAttributes() (uint32, bool) {
	if a.ext == nil {
		return 0, false
	}
	return a.ext.FileAttributes, true
}

// VolumeSerialNumber returns the serial number of the volume holding the
// entry.
func (a *WindowsAttributes) VolumeSerialNumber() (uint32, bool) {
	if a.ext == nil {
		return 0, false
	}
	return a.ext.VolumeSerialNumber, true
}

// FileIndexHigh returns the high 32 bits of the file index.
func (a *WindowsAttributes) FileIndexHigh() (uint32, bool) {
	if a.ext == nil {
		return 0, false
	}
	return a.ext.FileIndexHigh, true
}

// FileIndexLow returns the low 32 bits of the file index.
func (a *WindowsAttributes) FileIndexLow() (uint32, bool) {
	if a.ext == nil {
		return 0, false
	}
	return a.ext.FileIndexLow, true
}

// IsReparsePoint reports the reparse point attribute.
func (a *WindowsAttributes) IsReparsePoint() (bool, bool) {
	if a.ext == nil {
		return false, false
	}
	return a.ext.ReparsePoint, true
}

// IsDirectoryLink reports whether the entry is a directory symbolic link or
// junction.
func (a *WindowsAttributes) IsDirectoryLink() (bool, bool) {
	if a.ext == nil {
		return false, false
	}
	return a.ext.DirectoryLink, true
}

// WindowsExtension returns the extracted extension, or nil.
func (a *WindowsAttributes) WindowsExtension() *WindowsExtension { return a.ext }

// ExtendedFailure returns why the Windows extension is absent after it was
// attempted.
func (a *WindowsAttributes) ExtendedFailure() (string, bool) {
	return a.extFailed, a.extFailed != ""
}

// Unix attributes never apply to WindowsAttributes.

func (a *WindowsAttributes) Mode() (uint32, bool)     { return 0, false }
func (a *WindowsAttributes) Rdev() (uint64, bool)     { return 0, false }
func (a *WindowsAttributes) Nlink() (uint64, bool)    { return 0, false }
func (a *WindowsAttributes) Ctime() (time.Time, bool) { return time.Time{}, false }
func (a *WindowsAttributes) IsDevice() (bool, bool)   { return false, false }
