//go:build windows

package fsattr

import (
	"io/fs"

	"golang.org/x/sys/windows"

	"github.com/gwangyi/fsattr/internal"
)

const windowsExtensionSupported = true

// ExtendWindows implements WindowsExtender. It opens the entry, queries
// GetFileInformationByHandle, and resolves the reparse tag of reparse points
// with FindFirstFile. The handle is closed before returning.
func (HostExtender) ExtendWindows(name string, _ fs.FileInfo, follow bool) (WindowsExtension, error) {
	const op = "windows extension"

	path, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return WindowsExtension{}, internal.IntoPathErr(op, name, err)
	}

	flags := uint32(windows.FILE_FLAG_BACKUP_SEMANTICS)
	if !follow {
		flags |= windows.FILE_FLAG_OPEN_REPARSE_POINT
	}
	h, err := windows.CreateFile(path, 0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, flags, 0)
	if err != nil {
		return WindowsExtension{}, internal.IntoPathErr(op, name, err)
	}
	defer func() { _ = windows.CloseHandle(h) }()

	var d windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &d); err != nil {
		return WindowsExtension{}, internal.IntoPathErr(op, name, err)
	}

	ext := WindowsExtension{
		FileAttributes:     d.FileAttributes,
		VolumeSerialNumber: d.VolumeSerialNumber,
		FileIndexHigh:      d.FileIndexHigh,
		FileIndexLow:       d.FileIndexLow,
		ReparsePoint:       d.FileAttributes&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0,
	}
	if ext.ReparsePoint {
		tag, err := reparseTag(path)
		if err != nil {
			return WindowsExtension{}, internal.IntoPathErr(op, name, err)
		}
		isLink := tag == windows.IO_REPARSE_TAG_SYMLINK || tag == windows.IO_REPARSE_TAG_MOUNT_POINT
		ext.DirectoryLink = isLink && d.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0
	}
	return ext, nil
}

// reparseTag returns the reparse tag of a reparse point. FindFirstFile
// reports it in the Reserved0 field.
func reparseTag(path *uint16) (uint32, error) {
	var fd windows.Win32finddata
	h, err := windows.FindFirstFile(path, &fd)
	if err != nil {
		return 0, err
	}
	_ = windows.FindClose(h)
	return fd.Reserved0, nil
}
