package fsattr

import (
	"sync"
	"testing"
)

type countingKey struct {
	s     string
	calls int
}

func (k *countingKey) String() string {
	k.calls++
	return k.s
}

func TestParseFileKey(t *testing.T) {
	tests := []struct {
		name    string
		key     FileKey
		wantDev string
		wantIno string
		wantOK  bool
	}{
		{"unix key", UnixFileKey{Dev: 0x803, Ino: 0x1f2e}, "803", "1f2e", true},
		{"zero key", UnixFileKey{}, "0", "0", true},
		{"plain string", &countingKey{s: "(dev=fd01,ino=42)"}, "fd01", "42", true},
		{"trailing text", &countingKey{s: "(dev=1,ino=2) "}, "", "", false},
		{"missing inode", &countingKey{s: "(dev=1)"}, "", "", false},
		{"windows path", &countingKey{s: `C:\file`}, "", "", false},
		{"nil key", nil, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Attributes{basic: &BasicView{FileKey: tt.key}}
			dev, ok := a.Dev()
			if dev != tt.wantDev || ok != tt.wantOK {
				t.Errorf("Dev() = %q, %v; want %q, %v", dev, ok, tt.wantDev, tt.wantOK)
			}
			ino, ok := a.Inode()
			if ino != tt.wantIno || ok != tt.wantOK {
				t.Errorf("Inode() = %q, %v; want %q, %v", ino, ok, tt.wantIno, tt.wantOK)
			}
		})
	}
}

func TestParseFileKey_Once(t *testing.T) {
	key := &countingKey{s: "(dev=a,ino=b)"}
	a := &Attributes{basic: &BasicView{FileKey: key}}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Dev()
			a.Inode()
		}()
	}
	wg.Wait()

	if key.calls != 1 {
		t.Errorf("String() called %d times, want 1", key.calls)
	}
	if dev, ok := a.Dev(); !ok || dev != "a" {
		t.Errorf("Dev() = %q, %v; want \"a\", true", dev, ok)
	}
}

func TestParseFileKey_NoView(t *testing.T) {
	a := &Attributes{}
	if _, ok := a.Dev(); ok {
		t.Error("Dev() present without a view")
	}
	if a.FileKey() != nil {
		t.Error("FileKey() != nil without a view")
	}
}

func TestHostName(t *testing.T) {
	tests := map[string]string{
		"windows": "Windows",
		"linux":   "Linux",
		"android": "Linux",
		"darwin":  "Mac OS X",
		"freebsd": "freebsd",
	}
	for goos, want := range tests {
		if got := hostName(goos); got != want {
			t.Errorf("hostName(%q) = %q, want %q", goos, got, want)
		}
	}
}

func TestConfigReadsHostPaths(t *testing.T) {
	tests := []struct {
		name string
		c    Config
		want bool
	}{
		{"default", Config{}, true},
		{"host provider", Config{Provider: HostProvider{}}, true},
		{"host provider pointer", Config{Provider: &HostProvider{}}, true},
		{"fs provider", Config{Provider: FSProvider{}}, false},
	}
	for _, tt := range tests {
		if got := tt.c.readsHostPaths(); got != tt.want {
			t.Errorf("%s: readsHostPaths() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
