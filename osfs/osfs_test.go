package osfs_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gwangyi/fsattr"
	"github.com/gwangyi/fsattr/osfs"
)

func newFS(t *testing.T) (*osfs.FS, string) {
	t.Helper()
	dir := t.TempDir()
	fsys, err := osfs.New(dir)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { fsys.Close() })
	return fsys, dir
}

func TestNew_NotExist(t *testing.T) {
	if _, err := osfs.New(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("New() of a missing directory succeeded")
	}
}

func TestFS_ReadFile(t *testing.T) {
	fsys, dir := newFS(t)
	if err := os.WriteFile(filepath.Join(dir, "f"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := fs.ReadFile(fsys, "f")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "hello" {
		t.Errorf("ReadFile() = %q, want \"hello\"", b)
	}
}

// TestFS_Attributes verifies that entries read through the FS keep the host
// stat payload.
func TestFS_Attributes(t *testing.T) {
	fsys, dir := newFS(t)
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "f"), []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}

	a := fsattr.Stat(fsys, "sub/f")
	if msg, ok := a.FailureMessage(); ok {
		t.Fatalf("FailureMessage() = %q", msg)
	}
	if size, ok := a.Size(); !ok || size != 3 {
		t.Errorf("Size() = %d, %v; want 3, true", size, ok)
	}
	if runtime.GOOS == "windows" {
		if a.DosView() == nil {
			t.Error("DosView() = nil")
		}
		return
	}
	if a.PosixView() == nil {
		t.Fatal("PosixView() = nil")
	}
	if _, ok := a.Inode(); !ok {
		t.Error("Inode() absent")
	}

	host := fsattr.Read(filepath.Join(dir, "sub", "f"))
	if got, want := a.FileKey(), host.FileKey(); got != want {
		t.Errorf("FileKey() = %v, want %v as read from the host path", got, want)
	}
}

func TestFS_Escape(t *testing.T) {
	fsys, _ := newFS(t)

	a := fsattr.Stat(fsys, "../outside")
	if a.FileKeyAvailable() {
		t.Error("FileKeyAvailable() = true for a path outside the root")
	}
	if _, ok := a.FailureMessage(); !ok {
		t.Error("FailureMessage() absent")
	}
}

func TestFS_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Symbolic links need privileges on Windows; skipping TestFS_Symlink.")
	}
	fsys, dir := newFS(t)
	if err := os.WriteFile(filepath.Join(dir, "target"), []byte("1234"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink("target", filepath.Join(dir, "link")); err != nil {
		t.Fatal(err)
	}

	dest, err := fsys.ReadLink("link")
	if err != nil || dest != "target" {
		t.Errorf("ReadLink() = %q, %v; want \"target\", nil", dest, err)
	}

	l := fsattr.Lstat(fsys, "link")
	if sym, ok := l.IsSymbolicLink(); !ok || !sym {
		t.Errorf("IsSymbolicLink() = %v, %v; want true, true", sym, ok)
	}

	s := fsattr.Stat(fsys, "link")
	if size, ok := s.Size(); !ok || size != 4 {
		t.Errorf("Size() through the link = %d, %v; want 4, true", size, ok)
	}
}
