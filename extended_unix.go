//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris || illumos

package fsattr

const unixExtensionSupported = true
