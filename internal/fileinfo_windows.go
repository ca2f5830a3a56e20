//go:build windows

package internal

import (
	"syscall"
	"time"
)

// decodeSys extracts the syscall.Win32FileAttributeData structure that the os
// package returns from Stat and Lstat.
func decodeSys(sys any) Sys {
	st, ok := sys.(*syscall.Win32FileAttributeData)
	if !ok || st == nil {
		return Sys{}
	}
	return Sys{Windows: &Windows{
		FileAttributes: st.FileAttributes,
		CreationTime:   time.Unix(0, st.CreationTime.Nanoseconds()),
		AccessTime:     time.Unix(0, st.LastAccessTime.Nanoseconds()),
		WriteTime:      time.Unix(0, st.LastWriteTime.Nanoseconds()),
	}}
}
