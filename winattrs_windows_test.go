//go:build windows

package fsattr_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/gwangyi/fsattr"
)

var epoch = time.Unix(1700000000, 0)

const hasWinData = true

func winData(attrs uint32) any {
	ft := syscall.NsecToFiletime(epoch.UnixNano())
	return &syscall.Win32FileAttributeData{
		FileAttributes: attrs,
		CreationTime:   ft,
		LastAccessTime: ft,
		LastWriteTime:  ft,
	}
}

func TestReadWindows_Host(t *testing.T) {
	if !fsattr.WindowsExtensionAvailable() {
		t.Skip("The Windows extension is unavailable on this host.")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	a := fsattr.ReadWindows(path)
	if msg, ok := a.ExtendedFailure(); ok {
		t.Fatalf("ExtendedFailure() = %q", msg)
	}
	if _, ok := a.VolumeSerialNumber(); !ok {
		t.Error("VolumeSerialNumber() absent")
	}
	if rp, ok := a.IsReparsePoint(); !ok || rp {
		t.Errorf("IsReparsePoint() = %v, %v; want false, true", rp, ok)
	}
	if _, ok := a.Dev(); ok {
		t.Error("Dev() present on Windows")
	}

	link := filepath.Join(dir, "link")
	if err := os.Symlink(dir, link); err != nil {
		t.Logf("creating a directory symlink: %v", err)
		return
	}
	l := fsattr.Config{NoFollowLinks: true}.ReadWindows(link)
	if dl, ok := l.IsDirectoryLink(); !ok || !dl {
		t.Errorf("IsDirectoryLink() = %v, %v; want true, true", dl, ok)
	}
}
