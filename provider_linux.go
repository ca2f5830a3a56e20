//go:build linux

package fsattr

import (
	"errors"
	"io/fs"
	"time"

	"golang.org/x/sys/unix"

	"github.com/gwangyi/fsattr/internal"
)

// BirthTime queries the creation time with statx. It fails with
// errors.ErrUnsupported when the kernel or filesystem does not report one.
func (HostProvider) BirthTime(name string, follow bool) (time.Time, error) {
	flags := 0
	if !follow {
		flags |= unix.AT_SYMLINK_NOFOLLOW
	}

	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, name, flags, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, internal.IntoPathErr("statx", name, err)
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, &fs.PathError{Op: "statx", Path: name, Err: errors.ErrUnsupported}
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
