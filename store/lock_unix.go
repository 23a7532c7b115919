//go:build !windows

package store

import (
	"os"

	"golang.org/x/sys/unix"
)

// Advisory locks via flock(2). Calls block until the lock is granted.

func lockShared(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_SH)
}

func lockExclusive(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX)
}

func unlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
