// Package fsattr reads file attributes through the host platform's stat
// APIs and exposes them as a read-only snapshot.
//
// A read tries the richest view for the platform first (DOS attributes on
// Windows, POSIX ownership and permissions elsewhere) and falls back to the
// attributes every platform provides when that view is unavailable. Failures
// never escape a reader: attributes that could not be read are reported as
// absent, and FailureMessage explains why.
//
// ReadPosix and ReadWindows additionally extract platform attributes that the
// views do not carry, such as the raw st_mode or the Windows file index.
// ReadDeep picks the variant for the running platform and returns it as a
// DeepAttributes, so callers can be written once for every platform.
package fsattr

//go:generate mockgen -destination mockfsattr/mockfsattr.go -package mockfsattr . FileInfo,Provider,UnixExtender,WindowsExtender

import (
	"io/fs"
)

// Stat reads the attributes of the named entry of fsys, following symbolic
// links. It wraps fs.Stat.
//
// Entries whose FileInfo carries no decodable Sys() value, such as those of
// testing/fstest.MapFS, yield only the basic attributes.
//
// Parameters:
//
//	fsys: The filesystem interface.
//	name: The path of the file.
//
// Returns:
//
//	DeepAttributes: The attributes of the entry. It is never nil; if the entry
//	                cannot be read, FileKeyAvailable is false and
//	                FailureMessage reports the error.
func Stat(fsys fs.FS, name string) DeepAttributes {
	return Config{Provider: FSProvider{FS: fsys}}.ReadDeep(name)
}

// Lstat reads the attributes of the named entry of fsys. If the entry is a
// symbolic link, the attributes describe the link itself. It wraps fs.Lstat,
// so fsys must implement fs.ReadLinkFS for links to be reported as such.
//
// Parameters:
//
//	fsys: The filesystem interface.
//	name: The path of the file.
//
// Returns:
//
//	DeepAttributes: The attributes of the entry. It is never nil.
func Lstat(fsys fs.FS, name string) DeepAttributes {
	return Config{Provider: FSProvider{FS: fsys}, NoFollowLinks: true}.ReadDeep(name)
}
