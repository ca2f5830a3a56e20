package fsattr_test

import (
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/gwangyi/fsattr"
)

func TestReadDeep_HostVariant(t *testing.T) {
	path := writeTempFile(t, "deep.txt", "deep", 0644)
	a := fsattr.ReadDeep(path)

	switch a.(type) {
	case *fsattr.WindowsAttributes:
		if runtime.GOOS != "windows" {
			t.Errorf("ReadDeep() returned *WindowsAttributes on %s", runtime.GOOS)
		}
	case *fsattr.PosixAttributes:
		if runtime.GOOS == "windows" {
			t.Error("ReadDeep() returned *PosixAttributes on windows")
		}
	default:
		t.Fatalf("ReadDeep() returned %T", a)
	}

	if size, ok := a.Size(); !ok || size != 4 {
		t.Errorf("Size() = %d, %v; want 4, true", size, ok)
	}
}

// TestReadDeep_ExclusiveFields verifies that a read populates the POSIX or
// the DOS attributes, never both.
func TestReadDeep_ExclusiveFields(t *testing.T) {
	path := writeTempFile(t, "x.txt", "", 0644)
	a := fsattr.ReadDeep(path)

	_, posix := a.PermissionsString()
	_, dos := a.IsReadOnly()
	if posix && dos {
		t.Fatal("both POSIX and DOS attributes present")
	}
	if (a.PosixView() != nil) != posix || (a.DosView() != nil) != dos {
		t.Errorf("views disagree with accessors: posix view %v, dos view %v", a.PosixView() != nil, a.DosView() != nil)
	}

	_, unixExt := a.Nlink()
	_, winExt := a.VolumeSerialNumber()
	if unixExt && winExt {
		t.Error("both Unix and Windows extensions present")
	}
	if unixExt && !posix {
		t.Error("Unix extension present without POSIX attributes")
	}
	if winExt && !dos {
		t.Error("Windows extension present without DOS attributes")
	}
}

func TestReadDeep_PlatformOverride(t *testing.T) {
	fsys := fstest.MapFS{"f": {Data: []byte("f")}}
	tests := []struct {
		name     string
		platform fsattr.Platform
		windows  bool
	}{
		{"windows", windows, true},
		{"linux", linux, false},
		{"unknown", fsattr.DetectPlatform("Plan 9"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fsattr.Config{Provider: fsattr.FSProvider{FS: fsys}, Platform: &tt.platform}.ReadDeep("f")
			_, isWindows := a.(*fsattr.WindowsAttributes)
			if isWindows != tt.windows {
				t.Errorf("ReadDeep() = %T", a)
			}
			if a.Platform() != tt.platform {
				t.Errorf("Platform() = %+v, want %+v", a.Platform(), tt.platform)
			}
			if _, ok := a.FailureMessage(); !ok {
				t.Error("FailureMessage() absent after reading a MapFS entry")
			}
			if !a.FileKeyAvailable() {
				t.Error("FileKeyAvailable() = false")
			}
			if a.AccessControlList() != nil {
				t.Error("AccessControlList() != nil")
			}
		})
	}
}

func TestStat(t *testing.T) {
	fsys := fstest.MapFS{
		"dir/file": {Data: []byte("hello"), Mode: 0600},
	}

	f := fsattr.Stat(fsys, "dir/file")
	if size, ok := f.Size(); !ok || size != 5 {
		t.Errorf("Size() = %d, %v; want 5, true", size, ok)
	}
	if reg, ok := f.IsRegularFile(); !ok || !reg {
		t.Errorf("IsRegularFile() = %v, %v; want true, true", reg, ok)
	}

	d := fsattr.Lstat(fsys, "dir")
	if dir, ok := d.IsDirectory(); !ok || !dir {
		t.Errorf("IsDirectory() = %v, %v; want true, true", dir, ok)
	}

	m := fsattr.Stat(fsys, "missing")
	if m.FileKeyAvailable() {
		t.Error("FileKeyAvailable() = true for a missing entry")
	}
	if _, ok := m.Size(); ok {
		t.Error("Size() present for a missing entry")
	}
}
