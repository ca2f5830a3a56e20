//go:build linux || openbsd || dragonfly || solaris || illumos

package internal

import (
	"syscall"
	"time"
)

// decodeSys extracts a syscall.Stat_t with Atim/Ctim timestamps. These stat
// results carry no birth time; on Linux callers query it separately with
// statx.
func decodeSys(sys any) Sys {
	st, ok := sys.(*syscall.Stat_t)
	if !ok || st == nil {
		return Sys{}
	}
	return Sys{Unix: &Unix{
		Dev:        uint64(st.Dev),
		Ino:        uint64(st.Ino),
		Rdev:       uint64(st.Rdev),
		Nlink:      uint64(st.Nlink),
		Mode:       uint32(st.Mode),
		Uid:        uint32(st.Uid),
		Gid:        uint32(st.Gid),
		AccessTime: time.Unix(st.Atim.Unix()),
		ChangeTime: time.Unix(st.Ctim.Unix()),
	}}
}
