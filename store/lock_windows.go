//go:build windows

package store

import (
	"os"

	"golang.org/x/sys/windows"
)

// Advisory locks via LockFileEx covering the whole file.

func lockRange(f *os.File, flags uint32) error {
	var ol windows.Overlapped
	return windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, ^uint32(0), ^uint32(0), &ol)
}

func lockShared(f *os.File) error {
	return lockRange(f, 0)
}

func lockExclusive(f *os.File) error {
	return lockRange(f, windows.LOCKFILE_EXCLUSIVE_LOCK)
}

func unlock(f *os.File) error {
	var ol windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, ^uint32(0), ^uint32(0), &ol)
}
