//go:build darwin || freebsd || netbsd

package internal

import (
	"syscall"
	"time"
)

// decodeSys extracts the BSD-flavoured syscall.Stat_t structure, which also
// records the birth time.
func decodeSys(sys any) Sys {
	st, ok := sys.(*syscall.Stat_t)
	if !ok || st == nil {
		return Sys{}
	}
	u := &Unix{
		Dev:        uint64(st.Dev),
		Ino:        uint64(st.Ino),
		Rdev:       uint64(st.Rdev),
		Nlink:      uint64(st.Nlink),
		Mode:       uint32(st.Mode),
		Uid:        uint32(st.Uid),
		Gid:        uint32(st.Gid),
		AccessTime: time.Unix(st.Atimespec.Unix()),
		ChangeTime: time.Unix(st.Ctimespec.Unix()),
	}
	// Filesystems without a birth time report 0 or -1.
	if st.Birthtimespec.Sec > 0 {
		u.BirthTime = time.Unix(st.Birthtimespec.Unix())
	}
	return Sys{Unix: u}
}
