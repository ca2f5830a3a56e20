package fsattr_test

import (
	"runtime"
	"testing"

	"github.com/gwangyi/fsattr"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name                            string
		wantWindows, wantLinux, wantMac bool
	}{
		{"Windows 10", true, false, false},
		{"windows server 2022", true, false, false},
		{"Linux", false, true, false},
		{"LINUX", false, true, false},
		{"Mac OS X", false, false, true},
		{"mac os x 10.15", false, false, true},
		{"FreeBSD", false, false, false},
		{"", false, false, false},
		{" Linux", false, false, false},
		{"Darwin", false, false, false},
	}
	for _, tt := range tests {
		p := fsattr.DetectPlatform(tt.name)
		if p.Name != tt.name {
			t.Errorf("DetectPlatform(%q).Name = %q", tt.name, p.Name)
		}
		if p.IsWindows != tt.wantWindows || p.IsLinux != tt.wantLinux || p.IsMacOSX != tt.wantMac {
			t.Errorf("DetectPlatform(%q) = windows %v, linux %v, mac %v; want %v, %v, %v",
				tt.name, p.IsWindows, p.IsLinux, p.IsMacOSX, tt.wantWindows, tt.wantLinux, tt.wantMac)
		}
	}
}

func TestHost(t *testing.T) {
	if got, want := fsattr.Host.IsWindows, runtime.GOOS == "windows"; got != want {
		t.Errorf("Host.IsWindows = %v, want %v", got, want)
	}
	if got, want := fsattr.Host.IsLinux, runtime.GOOS == "linux" || runtime.GOOS == "android"; got != want {
		t.Errorf("Host.IsLinux = %v, want %v", got, want)
	}
	if got, want := fsattr.Host.IsMacOSX, runtime.GOOS == "darwin"; got != want {
		t.Errorf("Host.IsMacOSX = %v, want %v", got, want)
	}
}
