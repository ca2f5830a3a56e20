package fsattr

import (
	"io/fs"
)

// Permissions holds the nine POSIX permission bits as flags.
type Permissions struct {
	OwnerRead     bool
	OwnerWrite    bool
	OwnerExecute  bool
	GroupRead     bool
	GroupWrite    bool
	GroupExecute  bool
	OthersRead    bool
	OthersWrite   bool
	OthersExecute bool
}

// PermissionsFromMode classifies each permission bit set in mode. Bits other
// than the nine permission bits are ignored.
func PermissionsFromMode(mode fs.FileMode) Permissions {
	var p Permissions
	for bit := fs.FileMode(0400); bit != 0; bit >>= 1 {
		if mode&bit == 0 {
			continue
		}
		switch bit {
		case 0400:
			p.OwnerRead = true
		case 0200:
			p.OwnerWrite = true
		case 0100:
			p.OwnerExecute = true
		case 0040:
			p.GroupRead = true
		case 0020:
			p.GroupWrite = true
		case 0010:
			p.GroupExecute = true
		case 0004:
			p.OthersRead = true
		case 0002:
			p.OthersWrite = true
		case 0001:
			p.OthersExecute = true
		}
	}
	return p
}

// flags returns the permissions in owner, group, others order, each triad
// ordered read, write, execute.
func (p Permissions) flags() [9]bool {
	return [9]bool{
		p.OwnerRead, p.OwnerWrite, p.OwnerExecute,
		p.GroupRead, p.GroupWrite, p.GroupExecute,
		p.OthersRead, p.OthersWrite, p.OthersExecute,
	}
}

// String renders the permissions symbolically, e.g. "rwxr-x---".
func (p Permissions) String() string {
	var b [9]byte
	for i, set := range p.flags() {
		if set {
			b[i] = "rwx"[i%3]
		} else {
			b[i] = '-'
		}
	}
	return string(b[:])
}

// Numeric renders the permissions as one octal digit per triad, e.g. "750".
func (p Permissions) Numeric() string {
	flags := p.flags()
	var b [3]byte
	for t := range b {
		digit := byte('0')
		if flags[3*t] {
			digit += 4
		}
		if flags[3*t+1] {
			digit += 2
		}
		if flags[3*t+2] {
			digit++
		}
		b[t] = digit
	}
	return string(b[:])
}

// Mode returns the permissions as permission bits of an fs.FileMode.
func (p Permissions) Mode() fs.FileMode {
	var mode fs.FileMode
	for i, set := range p.flags() {
		if set {
			mode |= fs.FileMode(0400) >> i
		}
	}
	return mode
}
