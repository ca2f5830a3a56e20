//go:build !linux

package fsattr

import (
	"errors"
	"io/fs"
	"time"
)

// BirthTime is unsupported outside Linux; other platforms either record the
// creation time in the stat result or not at all.
func (HostProvider) BirthTime(name string, follow bool) (time.Time, error) {
	return time.Time{}, &fs.PathError{Op: "birthtime", Path: name, Err: errors.ErrUnsupported}
}
