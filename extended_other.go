//go:build !windows

package fsattr

import (
	"errors"
	"io/fs"

	"github.com/gwangyi/fsattr/internal"
)

const windowsExtensionSupported = false

// ExtendWindows is unsupported outside Windows.
func (HostExtender) ExtendWindows(name string, _ fs.FileInfo, _ bool) (WindowsExtension, error) {
	return WindowsExtension{}, internal.IntoPathErr("windows extension", name, errors.ErrUnsupported)
}
