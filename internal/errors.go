package internal

import (
	"errors"
	"io/fs"
	"os"
)

func underlyingError(err error) error {
	switch e := err.(type) {
	case *fs.PathError:
		return e.Err
	case *os.LinkError:
		return e.Err
	case *os.SyscallError:
		return e.Err
	}
	return err
}

// IntoPathErr wraps the error into an fs.PathError using the provided
// operation and path, replacing any existing path, link or syscall wrapper.
func IntoPathErr(op, path string, err error) error {
	if err == nil {
		return nil
	}

	return &fs.PathError{Op: op, Path: path, Err: underlyingError(err)}
}

// IsUnsupported reports whether err reports a missing capability.
// syscall.Errno values such as ENOTSUP and ENOSYS match as well.
func IsUnsupported(err error) bool {
	return errors.Is(err, errors.ErrUnsupported)
}

// Recoverable reports whether a failed attribute read may be retried through
// a less specific view: unsupported operations and filesystem-level errors.
func Recoverable(err error) bool {
	if err == nil {
		return false
	}
	if IsUnsupported(err) {
		return true
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return true
	}
	var syscallErr *os.SyscallError
	return errors.As(err, &syscallErr)
}
