package fsattr

import (
	"runtime"
	"strings"
)

// Platform describes the operating system family that attribute readers
// branch on. Only IsWindows selects between attribute views; IsLinux and
// IsMacOSX are informational.
type Platform struct {
	// Name is the operating system name the flags were derived from.
	Name      string
	IsWindows bool
	IsLinux   bool
	IsMacOSX  bool
}

// DetectPlatform classifies an operating system name. The comparison is
// case-insensitive: a name is Windows if it starts with "WINDOWS", Linux if it
// is not Windows and starts with "LINUX", and macOS if it is neither and
// starts with "MAC OS X".
func DetectPlatform(name string) Platform {
	upper := strings.ToUpper(name)
	p := Platform{Name: name}
	p.IsWindows = strings.HasPrefix(upper, "WINDOWS")
	p.IsLinux = !p.IsWindows && strings.HasPrefix(upper, "LINUX")
	p.IsMacOSX = !p.IsWindows && !p.IsLinux && strings.HasPrefix(upper, "MAC OS X")
	return p
}

// Host is the platform of the running process, detected once at startup.
var Host = DetectPlatform(hostName(runtime.GOOS))

// hostName maps a GOOS value to the conventional operating system name.
func hostName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "linux", "android":
		return "Linux"
	case "darwin":
		return "Mac OS X"
	}
	return goos
}
