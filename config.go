package fsattr

import (
	"github.com/gwangyi/fsattr/logging"
)

// Config specifies how attributes are read. The zero value reads host paths,
// follows symbolic links, branches on Host, and logs nothing.
type Config struct {
	// Provider performs the stat calls. If nil, HostProvider is used.
	Provider Provider
	// Platform overrides the detected host platform. If nil, Host is used.
	Platform *Platform
	// NoFollowLinks reads symbolic links themselves instead of their targets.
	NoFollowLinks bool
	// Logger receives fallback and downgrade events. If nil, nothing is
	// logged.
	Logger *logging.Logger

	// UnixExtender extracts the Unix extension for ReadPosix. If nil, the
	// host extender is used when the host supports it.
	UnixExtender UnixExtender
	// WindowsExtender extracts the Windows extension for ReadWindows. If nil,
	// the host extender is used when the host supports it and Provider reads
	// host paths.
	WindowsExtender WindowsExtender
}

func (c Config) provider() Provider {
	if c.Provider == nil {
		return HostProvider{}
	}
	return c.Provider
}

func (c Config) platform() Platform {
	if c.Platform == nil {
		return Host
	}
	return *c.Platform
}

func (c Config) logger() *logging.Logger {
	return c.Logger.Sublogger("fsattr")
}

// readsHostPaths reports whether names passed to the provider are host paths.
func (c Config) readsHostPaths() bool {
	switch c.Provider.(type) {
	case nil, HostProvider, *HostProvider:
		return true
	}
	return false
}
