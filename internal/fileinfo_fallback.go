//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris && !illumos && !windows

package internal

// decodeSys is the fallback for operating systems whose stat payload is not
// decoded. It always yields an empty Sys.
func decodeSys(sys any) Sys {
	return Sys{}
}
